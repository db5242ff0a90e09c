package ratelimitrepo

import (
	"context"
	"time"

	"github.com/affilink/creditmarket/internal/pg"
	"go.uber.org/zap"
)

// Repository keeps per-user, per-action attempt counters in the database so
// rate limiting survives restarts and holds across server instances.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Bump increments the counter for (userID, action) and returns its new value.
// Counters older than the window are reset before incrementing.
func (r *Repository) Bump(ctx context.Context, userID int, action string, now time.Time, window time.Duration) (int, error) {
	query := `
        INSERT INTO rate_limits (user_id, action, window_start, count)
        VALUES ($1, $2, $3, 1)
        ON CONFLICT (user_id, action) DO UPDATE SET
            count = CASE WHEN rate_limits.window_start < $4 THEN 1 ELSE rate_limits.count + 1 END,
            window_start = CASE WHEN rate_limits.window_start < $4 THEN $3 ELSE rate_limits.window_start END
        RETURNING count
    `
	var count int
	err := r.db.QueryRow(ctx, query, userID, action, now, now.Add(-window)).Scan(&count)
	if err != nil {
		zap.L().Error("failed to bump rate limit counter", zap.Error(err))
		return 0, err
	}
	return count, nil
}
