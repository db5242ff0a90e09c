package purchaserepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/affilink/creditmarket/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	purchase := &domain.Purchase{
		UserID:      1,
		OrderNumber: "79927398713",
		Amount:      20,
		Status:      domain.PurchaseStatusNew,
		CreatedAt:   now,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Purchase created",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id"}).AddRow(10)
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO purchases`)).
					WithArgs(1, "79927398713", 20, domain.PurchaseStatusNew, now).
					WillReturnRows(rows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO purchases`)).
					WithArgs(1, "79927398713", 20, domain.PurchaseStatusNew, now).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), purchase)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 10, result.ID)
			}
		})
	}
}

func TestRepository_FindByOrderNumber(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Purchase
	}{
		{
			name: "Purchase found",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "order_number", "amount", "status", "created_at", "settled_at"}).
					AddRow(10, 1, "79927398713", 20, domain.PurchaseStatusNew, now, (*time.Time)(nil))
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE order_number = $1`)).
					WithArgs("79927398713").
					WillReturnRows(rows)
			},
			result: &domain.Purchase{
				ID:          10,
				UserID:      1,
				OrderNumber: "79927398713",
				Amount:      20,
				Status:      domain.PurchaseStatusNew,
				CreatedAt:   now,
			},
		},
		{
			name: "Unknown order returns nil",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE order_number = $1`)).
					WithArgs("79927398713").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE order_number = $1`)).
					WithArgs("79927398713").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByOrderNumber(context.Background(), "79927398713")

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_FindForProcessing(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		count     int
	}{
		{
			name: "Pending purchases returned",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "order_number", "amount", "status", "created_at", "settled_at"}).
					AddRow(10, 1, "79927398713", 20, domain.PurchaseStatusNew, now, (*time.Time)(nil)).
					AddRow(11, 2, "49927398716", 50, domain.PurchaseStatusProcessing, now, (*time.Time)(nil))
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE status = 'NEW' OR status = 'PROCESSING'`)).
					WithArgs(100).
					WillReturnRows(rows)
			},
			count: 2,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE status = 'NEW' OR status = 'PROCESSING'`)).
					WithArgs(100).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			purchases, err := repo.FindForProcessing(context.Background(), 100)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, purchases, tt.count)
			}
		})
	}
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Status updated",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE purchases`)).
					WithArgs(domain.PurchaseStatusProcessing, 10).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE purchases`)).
					WithArgs(domain.PurchaseStatusProcessing, 10).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.UpdateStatus(context.Background(), 10, domain.PurchaseStatusProcessing)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_MarkSettled(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		settled   bool
	}{
		{
			name: "Pending purchase settled",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`settled_at = $2`)).
					WithArgs(domain.PurchaseStatusProcessed, now, 10).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			settled: true,
		},
		{
			name: "Already settled purchase is untouched",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`settled_at = $2`)).
					WithArgs(domain.PurchaseStatusProcessed, now, 10).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			settled: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`settled_at = $2`)).
					WithArgs(domain.PurchaseStatusProcessed, now, 10).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			settled, err := repo.MarkSettled(context.Background(), 10, now)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.settled, settled)
			}
		})
	}
}
