package creditrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/affilink/creditmarket/internal/domain"
	"github.com/affilink/creditmarket/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// LockUser takes the per-user ledger lock for the lifetime of the current
// transaction. Every read-latest-then-insert sequence must run under it.
func (r *Repository) LockUser(ctx context.Context, userID int) error {
	query := `
        SELECT id
        FROM users
        WHERE id = $1
        FOR UPDATE
    `
	var id int
	err := r.db.QueryRow(ctx, query, userID).Scan(&id)
	if err != nil {
		zap.L().Error("failed to lock user ledger", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) GetLatest(ctx context.Context, userID int) (*domain.CreditTransaction, error) {
	query := `
        SELECT id, user_id, delta, balance_after, type, description, related_reveal_id, created_at
        FROM credits
        WHERE user_id = $1
        ORDER BY created_at DESC, id DESC
        LIMIT 1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var txn domain.CreditTransaction
	err := row.Scan(&txn.ID, &txn.UserID, &txn.Delta, &txn.BalanceAfter, &txn.Type, &txn.Description, &txn.RelatedRevealID, &txn.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get latest credit transaction", zap.Error(err))
		return nil, err
	}
	return &txn, nil
}

func (r *Repository) Insert(ctx context.Context, txn *domain.CreditTransaction) (*domain.CreditTransaction, error) {
	query := `
        INSERT INTO credits (user_id, delta, balance_after, type, description, related_reveal_id, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, txn.UserID, txn.Delta, txn.BalanceAfter, txn.Type, txn.Description, txn.RelatedRevealID, txn.CreatedAt).Scan(&txn.ID)
	if err != nil {
		zap.L().Error("can't save credit transaction", zap.Error(err))
		return nil, err
	}
	return txn, nil
}

func (r *Repository) ListByUserID(ctx context.Context, userID int) ([]domain.CreditTransaction, error) {
	query := `
        SELECT id, user_id, delta, balance_after, type, description, related_reveal_id, created_at
        FROM credits
        WHERE user_id = $1
        ORDER BY created_at DESC, id DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch credit transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txns []domain.CreditTransaction
	for rows.Next() {
		var txn domain.CreditTransaction
		err := rows.Scan(&txn.ID, &txn.UserID, &txn.Delta, &txn.BalanceAfter, &txn.Type, &txn.Description, &txn.RelatedRevealID, &txn.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan credit transaction row", zap.Error(err))
			return nil, err
		}
		txns = append(txns, txn)
	}

	return txns, nil
}

// DailyRevealSpend sums the credits spent on reveals since the given instant.
func (r *Repository) DailyRevealSpend(ctx context.Context, userID int, since time.Time) (int, error) {
	query := `
        SELECT COALESCE(SUM(-delta), 0)
        FROM credits
        WHERE user_id = $1 AND type = $2 AND delta < 0 AND created_at >= $3
    `
	var spent int
	err := r.db.QueryRow(ctx, query, userID, domain.TxTypeReveal, since).Scan(&spent)
	if err != nil {
		zap.L().Error("failed to get daily reveal spend", zap.Error(err))
		return 0, err
	}
	return spent, nil
}

// LastRefresh returns the time of the newest daily_refresh transaction, or nil.
func (r *Repository) LastRefresh(ctx context.Context, userID int) (*time.Time, error) {
	query := `
        SELECT created_at
        FROM credits
        WHERE user_id = $1 AND type = $2
        ORDER BY created_at DESC, id DESC
        LIMIT 1
    `
	var refreshedAt time.Time
	err := r.db.QueryRow(ctx, query, userID, domain.TxTypeDailyRefresh).Scan(&refreshedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get last daily refresh", zap.Error(err))
		return nil, err
	}
	return &refreshedAt, nil
}
