package purchaserepo

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

func (r *Repository) Create(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error) {
	query := `
        INSERT INTO purchases (user_id, order_number, amount, status, created_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, purchase.UserID, purchase.OrderNumber, purchase.Amount, purchase.Status, purchase.CreatedAt).Scan(&purchase.ID)
	if err != nil {
		zap.L().Error("can't save purchase", zap.Error(err))
		return nil, err
	}
	return purchase, nil
}

func (r *Repository) FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Purchase, error) {
	query := `
        SELECT id, user_id, order_number, amount, status, created_at, settled_at
        FROM purchases
        WHERE order_number = $1
    `
	row := r.db.QueryRow(ctx, query, orderNumber)
	var purchase domain.Purchase
	err := row.Scan(&purchase.ID, &purchase.UserID, &purchase.OrderNumber, &purchase.Amount, &purchase.Status, &purchase.CreatedAt, &purchase.SettledAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find purchase", zap.Error(err))
		return nil, err
	}
	return &purchase, nil
}

func (r *Repository) ListByUserID(ctx context.Context, userID int) ([]domain.Purchase, error) {
	query := `
        SELECT id, user_id, order_number, amount, status, created_at, settled_at
        FROM purchases
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get purchases", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var purchases []domain.Purchase
	for rows.Next() {
		var purchase domain.Purchase
		err := rows.Scan(&purchase.ID, &purchase.UserID, &purchase.OrderNumber, &purchase.Amount, &purchase.Status, &purchase.CreatedAt, &purchase.SettledAt)
		if err != nil {
			zap.L().Error("can't scan purchase row", zap.Error(err))
			return nil, err
		}
		purchases = append(purchases, purchase)
	}
	return purchases, nil
}

func (r *Repository) FindForProcessing(ctx context.Context, limit uint32) ([]domain.Purchase, error) {
	query := `
        SELECT id, user_id, order_number, amount, status, created_at, settled_at
        FROM purchases
        WHERE status = 'NEW' OR status = 'PROCESSING'
        ORDER BY created_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get purchases for processing", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var purchases []domain.Purchase
	for rows.Next() {
		var purchase domain.Purchase
		err := rows.Scan(&purchase.ID, &purchase.UserID, &purchase.OrderNumber, &purchase.Amount, &purchase.Status, &purchase.CreatedAt, &purchase.SettledAt)
		if err != nil {
			zap.L().Error("can't scan purchase row for processing", zap.Error(err))
			return nil, err
		}
		purchases = append(purchases, purchase)
	}
	return purchases, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status string) error {
	query := `
        UPDATE purchases
        SET status = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		zap.L().Error("failed to update purchase status", zap.Error(err))
		return err
	}
	return nil
}

// MarkSettled flips a pending purchase to PROCESSED exactly once. It reports
// false when the purchase was already settled or invalidated, so a retried
// settlement never credits the ledger twice.
func (r *Repository) MarkSettled(ctx context.Context, id int, settledAt time.Time) (bool, error) {
	query := `
        UPDATE purchases
        SET status = $1, settled_at = $2
        WHERE id = $3 AND (status = 'NEW' OR status = 'PROCESSING')
    `
	tag, err := r.db.Exec(ctx, query, domain.PurchaseStatusProcessed, settledAt, id)
	if err != nil {
		zap.L().Error("failed to mark purchase settled", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
