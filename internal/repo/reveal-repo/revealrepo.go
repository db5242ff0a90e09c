package revealrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/affilink/creditmarket/internal/domain"
	"github.com/affilink/creditmarket/internal/pg"
	"go.uber.org/zap"
)

// ErrDuplicatePair is returned when a reveal record for the same
// (revealer, target) pair already exists. The unique constraint is the
// race guard: a concurrent double insert surfaces here, not as a second row.
var ErrDuplicatePair = errors.New("reveal record already exists for pair")

const uniqueViolationCode = "23505"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Insert(ctx context.Context, record *domain.RevealRecord) (*domain.RevealRecord, error) {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	query := `
        INSERT INTO reveal_logs (id, revealer_id, target_id, cost_credits, revealed_at)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := r.db.Exec(ctx, query, record.ID, record.RevealerID, record.TargetID, record.CostCredits, record.RevealedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, ErrDuplicatePair
		}
		zap.L().Error("can't save reveal record", zap.Error(err))
		return nil, err
	}
	return record, nil
}

func (r *Repository) FindByPair(ctx context.Context, revealerID, targetID int) (*domain.RevealRecord, error) {
	query := `
        SELECT id, revealer_id, target_id, cost_credits, revealed_at
        FROM reveal_logs
        WHERE revealer_id = $1 AND target_id = $2
    `
	row := r.db.QueryRow(ctx, query, revealerID, targetID)
	var record domain.RevealRecord
	err := row.Scan(&record.ID, &record.RevealerID, &record.TargetID, &record.CostCredits, &record.RevealedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find reveal record", zap.Error(err))
		return nil, err
	}
	return &record, nil
}

func (r *Repository) ListByRevealer(ctx context.Context, revealerID int) ([]domain.RevealRecord, error) {
	query := `
        SELECT id, revealer_id, target_id, cost_credits, revealed_at
        FROM reveal_logs
        WHERE revealer_id = $1
        ORDER BY revealed_at DESC
    `
	rows, err := r.db.Query(ctx, query, revealerID)
	if err != nil {
		zap.L().Error("failed to fetch reveal records", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var records []domain.RevealRecord
	for rows.Next() {
		var record domain.RevealRecord
		err := rows.Scan(&record.ID, &record.RevealerID, &record.TargetID, &record.CostCredits, &record.RevealedAt)
		if err != nil {
			zap.L().Error("failed to scan reveal record row", zap.Error(err))
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
