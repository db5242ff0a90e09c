package revealservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/affilink/creditmarket/internal/domain"
	"github.com/affilink/creditmarket/internal/pg"
	revealrepo "github.com/affilink/creditmarket/internal/repo/reveal-repo"
	"github.com/affilink/creditmarket/internal/service/creditservice"
)

func NewMock(t *testing.T) (*Service, *MockRevealRepo, *MockUserRepo, *MockRateLimitRepo, *MockLedger, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	revealRepo := NewMockRevealRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	rateRepo := NewMockRateLimitRepo(ctrl)
	ledger := NewMockLedger(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(revealRepo, userRepo, rateRepo, ledger, txManager)
	defer ctrl.Finish()
	return service, revealRepo, userRepo, rateRepo, ledger, txManager
}

var (
	operator = &domain.User{
		ID:              1,
		Login:           "acme-operator",
		Role:            domain.RoleOperator,
		ContactEmail:    "ops@acme.example",
		ContactPhone:    "+15550100",
		ContactTelegram: "@acmeops",
	}
	affiliate = &domain.User{
		ID:              2,
		Login:           "traffic-pro",
		Role:            domain.RoleAffiliate,
		ContactEmail:    "deals@traffic.example",
		ContactPhone:    "+15550200",
		ContactTelegram: "@trafficpro",
	}
	admin = &domain.User{
		ID:    9,
		Login: "root",
		Role:  domain.RoleAdmin,
	}
)

func TestRequestReveal(t *testing.T) {
	service, revealRepo, userRepo, rateRepo, ledger, txManager := NewMock(t)

	existing := &domain.RevealRecord{
		ID:          "a3f1c2d4-0000-0000-0000-000000000001",
		RevealerID:  operator.ID,
		TargetID:    affiliate.ID,
		CostCredits: domain.RevealCost,
	}

	tests := []struct {
		name            string
		revealerID      int
		targetID        int
		prepareMock     func()
		expectedError   error
		alreadyRevealed bool
		wantRecord      bool
	}{
		{
			name:       "Operator pays one credit to reveal affiliate",
			revealerID: operator.ID,
			targetID:   affiliate.ID,
			prepareMock: func() {
				rateRepo.EXPECT().Bump(gomock.Any(), operator.ID, "reveal", gomock.Any(), gomock.Any()).Return(1, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), operator.ID).Return(operator, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), affiliate.ID).Return(affiliate, nil)
				revealRepo.EXPECT().FindByPair(gomock.Any(), operator.ID, affiliate.ID).Return(nil, nil)
				ledger.EXPECT().GetBalance(gomock.Any(), operator.ID).Return(&domain.Balance{Total: 5}, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					return fn(ctx)
				})
				revealRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, record *domain.RevealRecord) (*domain.RevealRecord, error) {
					record.ID = "a3f1c2d4-0000-0000-0000-000000000002"
					return record, nil
				})
				ledger.EXPECT().Debit(gomock.Any(), operator.ID, domain.RevealCost, domain.TxTypeReveal, gomock.Any(), gomock.Any()).
					Return(&domain.CreditTransaction{Delta: -1, BalanceAfter: 4}, nil)
			},
			wantRecord: true,
		},
		{
			name:       "Repeat request is free",
			revealerID: operator.ID,
			targetID:   affiliate.ID,
			prepareMock: func() {
				rateRepo.EXPECT().Bump(gomock.Any(), operator.ID, "reveal", gomock.Any(), gomock.Any()).Return(2, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), operator.ID).Return(operator, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), affiliate.ID).Return(affiliate, nil)
				revealRepo.EXPECT().FindByPair(gomock.Any(), operator.ID, affiliate.ID).Return(existing, nil)
			},
			alreadyRevealed: true,
			wantRecord:      true,
		},
		{
			name:       "Concurrent duplicate resolves to already revealed",
			revealerID: operator.ID,
			targetID:   affiliate.ID,
			prepareMock: func() {
				rateRepo.EXPECT().Bump(gomock.Any(), operator.ID, "reveal", gomock.Any(), gomock.Any()).Return(3, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), operator.ID).Return(operator, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), affiliate.ID).Return(affiliate, nil)
				revealRepo.EXPECT().FindByPair(gomock.Any(), operator.ID, affiliate.ID).Return(nil, nil)
				ledger.EXPECT().GetBalance(gomock.Any(), operator.ID).Return(&domain.Balance{Total: 5}, nil)
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).Return(revealrepo.ErrDuplicatePair)
				revealRepo.EXPECT().FindByPair(gomock.Any(), operator.ID, affiliate.ID).Return(existing, nil)
			},
			alreadyRevealed: true,
			wantRecord:      true,
		},
		{
			name:       "Self view spends nothing",
			revealerID: affiliate.ID,
			targetID:   affiliate.ID,
			prepareMock: func() {
				rateRepo.EXPECT().Bump(gomock.Any(), affiliate.ID, "reveal", gomock.Any(), gomock.Any()).Return(1, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), affiliate.ID).Return(affiliate, nil).Times(2)
			},
			alreadyRevealed: true,
		},
		{
			name:       "Admin sees everyone for free",
			revealerID: admin.ID,
			targetID:   affiliate.ID,
			prepareMock: func() {
				rateRepo.EXPECT().Bump(gomock.Any(), admin.ID, "reveal", gomock.Any(), gomock.Any()).Return(1, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), admin.ID).Return(admin, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), affiliate.ID).Return(affiliate, nil)
			},
			alreadyRevealed: true,
		},
		{
			name:       "Same role denied",
			revealerID: operator.ID,
			targetID:   3,
			prepareMock: func() {
				rateRepo.EXPECT().Bump(gomock.Any(), operator.ID, "reveal", gomock.Any(), gomock.Any()).Return(1, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), operator.ID).Return(operator, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 3).Return(&domain.User{ID: 3, Role: domain.RoleOperator}, nil)
			},
			expectedError: ErrSameRole,
		},
		{
			name:       "Missing target denied",
			revealerID: operator.ID,
			targetID:   404,
			prepareMock: func() {
				rateRepo.EXPECT().Bump(gomock.Any(), operator.ID, "reveal", gomock.Any(), gomock.Any()).Return(1, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), operator.ID).Return(operator, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), 404).Return(nil, nil)
			},
			expectedError: ErrInvalidRoles,
		},
		{
			name:       "Insufficient credits",
			revealerID: operator.ID,
			targetID:   affiliate.ID,
			prepareMock: func() {
				rateRepo.EXPECT().Bump(gomock.Any(), operator.ID, "reveal", gomock.Any(), gomock.Any()).Return(4, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), operator.ID).Return(operator, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), affiliate.ID).Return(affiliate, nil)
				revealRepo.EXPECT().FindByPair(gomock.Any(), operator.ID, affiliate.ID).Return(nil, nil)
				ledger.EXPECT().GetBalance(gomock.Any(), operator.ID).Return(&domain.Balance{Total: 0}, nil)
			},
			expectedError: creditservice.ErrInsufficientCredits,
		},
		{
			name:       "Rate limited",
			revealerID: operator.ID,
			targetID:   affiliate.ID,
			prepareMock: func() {
				rateRepo.EXPECT().Bump(gomock.Any(), operator.ID, "reveal", gomock.Any(), gomock.Any()).Return(rateLimitMax+1, nil)
			},
			expectedError: ErrRateLimited,
		},
		{
			name:       "Error loading revealer",
			revealerID: operator.ID,
			targetID:   affiliate.ID,
			prepareMock: func() {
				rateRepo.EXPECT().Bump(gomock.Any(), operator.ID, "reveal", gomock.Any(), gomock.Any()).Return(1, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), operator.ID).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			result, err := service.RequestReveal(context.Background(), tt.revealerID, tt.targetID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.alreadyRevealed, result.AlreadyRevealed)
			if tt.wantRecord {
				assert.NotNil(t, result.Record)
				assert.NotEmpty(t, result.Record.ID)
			}
			assert.NotNil(t, result.Contact)
		})
	}
}

func TestCheckRevealed(t *testing.T) {
	service, revealRepo, userRepo, _, _, _ := NewMock(t)

	tests := []struct {
		name            string
		revealerID      int
		targetID        int
		prepareMock     func()
		expectedOK      bool
		expectedContact *domain.Contact
		expectedError   error
	}{
		{
			name:       "Paid pair gets full contacts",
			revealerID: operator.ID,
			targetID:   affiliate.ID,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), affiliate.ID).Return(affiliate, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), operator.ID).Return(operator, nil)
				revealRepo.EXPECT().FindByPair(gomock.Any(), operator.ID, affiliate.ID).Return(&domain.RevealRecord{ID: "r1"}, nil)
			},
			expectedOK: true,
			expectedContact: &domain.Contact{
				UserID:   affiliate.ID,
				Email:    "deals@traffic.example",
				Phone:    "+15550200",
				Telegram: "@trafficpro",
			},
		},
		{
			name:       "Unpaid pair gets masked contacts",
			revealerID: operator.ID,
			targetID:   affiliate.ID,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), affiliate.ID).Return(affiliate, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), operator.ID).Return(operator, nil)
				revealRepo.EXPECT().FindByPair(gomock.Any(), operator.ID, affiliate.ID).Return(nil, nil)
			},
			expectedOK: false,
			expectedContact: &domain.Contact{
				UserID:   affiliate.ID,
				Email:    "d****@traffic.example",
				Phone:    "+1*******",
				Telegram: "@t*********",
			},
		},
		{
			name:       "Self always sees own contacts",
			revealerID: affiliate.ID,
			targetID:   affiliate.ID,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), affiliate.ID).Return(affiliate, nil)
			},
			expectedOK: true,
			expectedContact: &domain.Contact{
				UserID:   affiliate.ID,
				Email:    "deals@traffic.example",
				Phone:    "+15550200",
				Telegram: "@trafficpro",
			},
		},
		{
			name:       "Admin always sees contacts",
			revealerID: admin.ID,
			targetID:   affiliate.ID,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), affiliate.ID).Return(affiliate, nil)
				userRepo.EXPECT().FindByID(gomock.Any(), admin.ID).Return(admin, nil)
			},
			expectedOK: true,
			expectedContact: &domain.Contact{
				UserID:   affiliate.ID,
				Email:    "deals@traffic.example",
				Phone:    "+15550200",
				Telegram: "@trafficpro",
			},
		},
		{
			name:       "Unknown target",
			revealerID: operator.ID,
			targetID:   404,
			prepareMock: func() {
				userRepo.EXPECT().FindByID(gomock.Any(), 404).Return(nil, nil)
			},
			expectedError: ErrTargetNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			ok, contact, err := service.CheckRevealed(context.Background(), tt.revealerID, tt.targetID)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.expectedContact, contact)
		})
	}
}

func TestGetReveals(t *testing.T) {
	service, revealRepo, _, _, _, _ := NewMock(t)

	tests := []struct {
		name            string
		revealerID      int
		prepareMock     func()
		expectedRecords []domain.RevealRecord
		expectedError   error
	}{
		{
			name:       "Reveal history returned",
			revealerID: 1,
			prepareMock: func() {
				revealRepo.EXPECT().ListByRevealer(gomock.Any(), 1).Return([]domain.RevealRecord{
					{ID: "r1", RevealerID: 1, TargetID: 2},
				}, nil)
			},
			expectedRecords: []domain.RevealRecord{
				{ID: "r1", RevealerID: 1, TargetID: 2},
			},
		},
		{
			name:       "Error fetching history",
			revealerID: 1,
			prepareMock: func() {
				revealRepo.EXPECT().ListByRevealer(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			records, err := service.GetReveals(context.Background(), tt.revealerID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedRecords, records)
			}
		})
	}
}

func TestMaskContact(t *testing.T) {
	masked := maskContact(&domain.Contact{
		UserID:   7,
		Email:    "ab@x.io",
		Phone:    "79",
		Telegram: "@handle",
	})
	assert.Equal(t, 7, masked.UserID)
	assert.Equal(t, "a*@x.io", masked.Email)
	assert.Equal(t, "**", masked.Phone)
	assert.Equal(t, "@h*****", masked.Telegram)
}
