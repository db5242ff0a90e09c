package creditservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/affilink/creditmarket/internal/domain"
	"github.com/affilink/creditmarket/internal/pg"
)

func NewMock(t *testing.T) (*Service, *MockCreditRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	creditRepo := NewMockCreditRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(creditRepo, txManager)
	defer ctrl.Finish()
	return service, creditRepo, txManager
}

func passthroughTx(tx *pg.MockTXManager) {
	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
}

func echoInsert(repo *MockCreditRepo) {
	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, txn *domain.CreditTransaction) (*domain.CreditTransaction, error) {
		return txn, nil
	})
}

func TestGetBalance(t *testing.T) {
	service, creditRepo, _ := NewMock(t)
	now := time.Now()

	tests := []struct {
		name            string
		userID          int
		prepareMock     func()
		expectedBalance *domain.Balance
		expectedError   error
	}{
		{
			name:   "No history yields untouched virtual balance",
			userID: 1,
			prepareMock: func() {
				creditRepo.EXPECT().GetLatest(gomock.Any(), 1).Return(nil, nil)
			},
			expectedBalance: &domain.Balance{
				Total:          domain.InitialBonus,
				DailyUsed:      0,
				DailyRemaining: domain.DailyLimit,
			},
		},
		{
			name:   "Balance from newest ledger entry",
			userID: 1,
			prepareMock: func() {
				creditRepo.EXPECT().GetLatest(gomock.Any(), 1).Return(&domain.CreditTransaction{
					UserID:       1,
					Delta:        -1,
					BalanceAfter: 7,
				}, nil)
				creditRepo.EXPECT().DailyRevealSpend(gomock.Any(), 1, gomock.Any()).Return(2, nil)
				creditRepo.EXPECT().LastRefresh(gomock.Any(), 1).Return(&now, nil)
			},
			expectedBalance: &domain.Balance{
				Total:            7,
				DailyUsed:        2,
				DailyRemaining:   3,
				LastDailyRefresh: &now,
			},
		},
		{
			name:   "Daily remaining never below zero",
			userID: 1,
			prepareMock: func() {
				creditRepo.EXPECT().GetLatest(gomock.Any(), 1).Return(&domain.CreditTransaction{
					UserID:       1,
					BalanceAfter: 12,
				}, nil)
				creditRepo.EXPECT().DailyRevealSpend(gomock.Any(), 1, gomock.Any()).Return(8, nil)
				creditRepo.EXPECT().LastRefresh(gomock.Any(), 1).Return(nil, nil)
			},
			expectedBalance: &domain.Balance{
				Total:          12,
				DailyUsed:      8,
				DailyRemaining: 0,
			},
		},
		{
			name:   "Error fetching latest transaction",
			userID: 1,
			prepareMock: func() {
				creditRepo.EXPECT().GetLatest(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
		{
			name:   "Error fetching daily spend",
			userID: 1,
			prepareMock: func() {
				creditRepo.EXPECT().GetLatest(gomock.Any(), 1).Return(&domain.CreditTransaction{BalanceAfter: 5}, nil)
				creditRepo.EXPECT().DailyRevealSpend(gomock.Any(), 1, gomock.Any()).Return(0, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			balance, err := service.GetBalance(context.Background(), tt.userID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBalance, balance)
			}
		})
	}
}

func TestGrantDaily(t *testing.T) {
	service, creditRepo, txManager := NewMock(t)
	yesterday := time.Now().AddDate(0, 0, -1)
	today := time.Now()

	tests := []struct {
		name            string
		userID          int
		prepareMock     func()
		expectedBalance int
		expectedError   error
	}{
		{
			name:   "First ever grant materializes the welcome bonus",
			userID: 1,
			prepareMock: func() {
				passthroughTx(txManager)
				creditRepo.EXPECT().LockUser(gomock.Any(), 1).Return(nil)
				creditRepo.EXPECT().LastRefresh(gomock.Any(), 1).Return(nil, nil)
				creditRepo.EXPECT().GetLatest(gomock.Any(), 1).Return(nil, nil)
				echoInsert(creditRepo)
				echoInsert(creditRepo)
			},
			expectedBalance: domain.InitialBonus + domain.DailyLimit,
		},
		{
			name:   "Grant on top of existing history",
			userID: 1,
			prepareMock: func() {
				passthroughTx(txManager)
				creditRepo.EXPECT().LockUser(gomock.Any(), 1).Return(nil)
				creditRepo.EXPECT().LastRefresh(gomock.Any(), 1).Return(&yesterday, nil)
				creditRepo.EXPECT().GetLatest(gomock.Any(), 1).Return(&domain.CreditTransaction{BalanceAfter: 3}, nil)
				echoInsert(creditRepo)
			},
			expectedBalance: 3 + domain.DailyLimit,
		},
		{
			name:   "Already granted today",
			userID: 1,
			prepareMock: func() {
				passthroughTx(txManager)
				creditRepo.EXPECT().LockUser(gomock.Any(), 1).Return(nil)
				creditRepo.EXPECT().LastRefresh(gomock.Any(), 1).Return(&today, nil)
			},
			expectedError: ErrAlreadyGranted,
		},
		{
			name:   "Error taking the ledger lock",
			userID: 1,
			prepareMock: func() {
				passthroughTx(txManager)
				creditRepo.EXPECT().LockUser(gomock.Any(), 1).Return(errors.New("lock error"))
			},
			expectedError: errors.New("lock error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			granted, err := service.GrantDaily(context.Background(), tt.userID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.TxTypeDailyRefresh, granted.Type)
				assert.Equal(t, domain.DailyLimit, granted.Delta)
				assert.Equal(t, tt.expectedBalance, granted.BalanceAfter)
			}
		})
	}
}

func TestDebit(t *testing.T) {
	service, creditRepo, txManager := NewMock(t)

	tests := []struct {
		name            string
		userID          int
		amount          int
		prepareMock     func()
		expectedBalance int
		expectedError   string
	}{
		{
			name:   "Debit against existing history",
			userID: 1,
			amount: 2,
			prepareMock: func() {
				passthroughTx(txManager)
				creditRepo.EXPECT().LockUser(gomock.Any(), 1).Return(nil)
				creditRepo.EXPECT().GetLatest(gomock.Any(), 1).Return(&domain.CreditTransaction{BalanceAfter: 5}, nil)
				echoInsert(creditRepo)
			},
			expectedBalance: 3,
		},
		{
			name:   "First debit materializes the welcome bonus",
			userID: 1,
			amount: 1,
			prepareMock: func() {
				passthroughTx(txManager)
				creditRepo.EXPECT().LockUser(gomock.Any(), 1).Return(nil)
				creditRepo.EXPECT().GetLatest(gomock.Any(), 1).Return(nil, nil)
				echoInsert(creditRepo)
				echoInsert(creditRepo)
			},
			expectedBalance: domain.InitialBonus - 1,
		},
		{
			name:   "Insufficient credits",
			userID: 1,
			amount: 10,
			prepareMock: func() {
				passthroughTx(txManager)
				creditRepo.EXPECT().LockUser(gomock.Any(), 1).Return(nil)
				creditRepo.EXPECT().GetLatest(gomock.Any(), 1).Return(&domain.CreditTransaction{BalanceAfter: 5}, nil)
			},
			expectedError: ErrInsufficientCredits.Error(),
		},
		{
			name:          "Rejects non-positive amount",
			userID:        1,
			amount:        0,
			expectedError: "debit amount must be positive, got 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			debited, err := service.Debit(context.Background(), tt.userID, tt.amount, domain.TxTypeReveal, "contact reveal", nil)
			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, -tt.amount, debited.Delta)
				assert.Equal(t, tt.expectedBalance, debited.BalanceAfter)
			}
		})
	}
}

func TestCredit(t *testing.T) {
	service, creditRepo, txManager := NewMock(t)

	tests := []struct {
		name            string
		userID          int
		amount          int
		prepareMock     func()
		expectedBalance int
		expectedError   string
	}{
		{
			name:   "Credit against existing history",
			userID: 1,
			amount: 20,
			prepareMock: func() {
				passthroughTx(txManager)
				creditRepo.EXPECT().LockUser(gomock.Any(), 1).Return(nil)
				creditRepo.EXPECT().GetLatest(gomock.Any(), 1).Return(&domain.CreditTransaction{BalanceAfter: 2}, nil)
				echoInsert(creditRepo)
			},
			expectedBalance: 22,
		},
		{
			name:   "First credit materializes the welcome bonus",
			userID: 1,
			amount: 10,
			prepareMock: func() {
				passthroughTx(txManager)
				creditRepo.EXPECT().LockUser(gomock.Any(), 1).Return(nil)
				creditRepo.EXPECT().GetLatest(gomock.Any(), 1).Return(nil, nil)
				echoInsert(creditRepo)
				echoInsert(creditRepo)
			},
			expectedBalance: domain.InitialBonus + 10,
		},
		{
			name:          "Rejects non-positive amount",
			userID:        1,
			amount:        -5,
			expectedError: "credit amount must be positive, got -5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			credited, err := service.Credit(context.Background(), tt.userID, tt.amount, domain.TxTypePurchase, "credit pack")
			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.amount, credited.Delta)
				assert.Equal(t, tt.expectedBalance, credited.BalanceAfter)
			}
		})
	}
}

func TestGetHistory(t *testing.T) {
	service, creditRepo, _ := NewMock(t)

	tests := []struct {
		name          string
		userID        int
		prepareMock   func()
		expectedTxns  []domain.CreditTransaction
		expectedError error
	}{
		{
			name:   "History returned newest first",
			userID: 1,
			prepareMock: func() {
				creditRepo.EXPECT().ListByUserID(gomock.Any(), 1).Return([]domain.CreditTransaction{
					{ID: 2, Delta: -1, BalanceAfter: 4},
					{ID: 1, Delta: 5, BalanceAfter: 5},
				}, nil)
			},
			expectedTxns: []domain.CreditTransaction{
				{ID: 2, Delta: -1, BalanceAfter: 4},
				{ID: 1, Delta: 5, BalanceAfter: 5},
			},
		},
		{
			name:   "Error fetching history",
			userID: 1,
			prepareMock: func() {
				creditRepo.EXPECT().ListByUserID(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			txns, err := service.GetHistory(context.Background(), tt.userID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedTxns, txns)
			}
		})
	}
}

func TestAudit(t *testing.T) {
	service, creditRepo, _ := NewMock(t)

	tests := []struct {
		name          string
		userID        int
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Consistent chain passes",
			userID: 1,
			prepareMock: func() {
				creditRepo.EXPECT().ListByUserID(gomock.Any(), 1).Return([]domain.CreditTransaction{
					{ID: 3, Delta: 5, BalanceAfter: 9},
					{ID: 2, Delta: -1, BalanceAfter: 4},
					{ID: 1, Delta: 5, BalanceAfter: 5},
				}, nil)
			},
		},
		{
			name:   "Empty ledger passes",
			userID: 1,
			prepareMock: func() {
				creditRepo.EXPECT().ListByUserID(gomock.Any(), 1).Return(nil, nil)
			},
		},
		{
			name:   "Broken snapshot link is reported",
			userID: 1,
			prepareMock: func() {
				creditRepo.EXPECT().ListByUserID(gomock.Any(), 1).Return([]domain.CreditTransaction{
					{ID: 2, Delta: -1, BalanceAfter: 3},
					{ID: 1, Delta: 5, BalanceAfter: 5},
				}, nil)
			},
			expectedError: ErrInconsistentState,
		},
		{
			name:   "Error fetching transactions",
			userID: 1,
			prepareMock: func() {
				creditRepo.EXPECT().ListByUserID(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			err := service.Audit(context.Background(), tt.userID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectedError, ErrInconsistentState) {
					assert.ErrorIs(t, err, ErrInconsistentState)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
