package creditservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/affilink/creditmarket/internal/domain"
	"github.com/affilink/creditmarket/internal/pg"
	"go.uber.org/zap"
)

type CreditRepo interface {
	LockUser(ctx context.Context, userID int) error
	GetLatest(ctx context.Context, userID int) (*domain.CreditTransaction, error)
	Insert(ctx context.Context, txn *domain.CreditTransaction) (*domain.CreditTransaction, error)
	ListByUserID(ctx context.Context, userID int) ([]domain.CreditTransaction, error)
	DailyRevealSpend(ctx context.Context, userID int, since time.Time) (int, error)
	LastRefresh(ctx context.Context, userID int) (*time.Time, error)
}

// Service is the credit ledger: the single source of truth for spendable
// balances, derived from the append-only transaction log. Every write runs
// inside a transaction holding the per-user ledger lock, so two concurrent
// debits can never both read the same stale balance.
type Service struct {
	creditRepo CreditRepo
	txManager  pg.TXManager
}

func New(creditRepo CreditRepo, txManager pg.TXManager) *Service {
	return &Service{
		creditRepo: creditRepo,
		txManager:  txManager,
	}
}

var (
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrAlreadyGranted      = errors.New("daily credits already granted today")
	ErrInconsistentState   = errors.New("credit ledger is inconsistent")
)

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// GetBalance derives the balance view from the newest ledger entry. A user
// with no history gets a virtual untouched balance; nothing is written until
// the first debit or grant materializes it.
func (s *Service) GetBalance(ctx context.Context, userID int) (*domain.Balance, error) {
	latest, err := s.creditRepo.GetLatest(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get latest transaction", zap.Error(err))
		return nil, err
	}
	if latest == nil {
		return &domain.Balance{
			Total:          domain.InitialBonus,
			DailyUsed:      0,
			DailyRemaining: domain.DailyLimit,
		}, nil
	}

	dailyUsed, err := s.creditRepo.DailyRevealSpend(ctx, userID, startOfDay(time.Now()))
	if err != nil {
		zap.L().Error("failed to get daily reveal spend", zap.Error(err))
		return nil, err
	}
	dailyRemaining := domain.DailyLimit - dailyUsed
	if dailyRemaining < 0 {
		dailyRemaining = 0
	}

	lastRefresh, err := s.creditRepo.LastRefresh(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get last daily refresh", zap.Error(err))
		return nil, err
	}

	return &domain.Balance{
		Total:            latest.BalanceAfter,
		DailyUsed:        dailyUsed,
		DailyRemaining:   dailyRemaining,
		LastDailyRefresh: lastRefresh,
	}, nil
}

// GrantDaily issues the free daily credits, at most once per calendar day.
func (s *Service) GrantDaily(ctx context.Context, userID int) (*domain.CreditTransaction, error) {
	var granted *domain.CreditTransaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.creditRepo.LockUser(ctx, userID); err != nil {
			return err
		}

		lastRefresh, err := s.creditRepo.LastRefresh(ctx, userID)
		if err != nil {
			return err
		}
		if lastRefresh != nil && !lastRefresh.Before(startOfDay(time.Now())) {
			return ErrAlreadyGranted
		}

		current, err := s.materialize(ctx, userID)
		if err != nil {
			return err
		}

		granted, err = s.creditRepo.Insert(ctx, &domain.CreditTransaction{
			UserID:       userID,
			Delta:        domain.DailyLimit,
			BalanceAfter: current + domain.DailyLimit,
			Type:         domain.TxTypeDailyRefresh,
			Description:  "daily credit refresh",
			CreatedAt:    time.Now(),
		})
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrAlreadyGranted) {
			zap.L().Error("failed to grant daily credits", zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("daily credits granted", zap.Int("userID", userID), zap.Int("balance", granted.BalanceAfter))
	return granted, nil
}

// Debit spends credits. The whole check-and-insert runs under the per-user
// ledger lock; joining an outer transaction keeps a reveal record and its
// debit atomic.
func (s *Service) Debit(ctx context.Context, userID, amount int, txType, description string, relatedRevealID *string) (*domain.CreditTransaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("debit amount must be positive, got %d", amount)
	}
	var debited *domain.CreditTransaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.creditRepo.LockUser(ctx, userID); err != nil {
			return err
		}

		current, err := s.materialize(ctx, userID)
		if err != nil {
			return err
		}
		if current < amount {
			return ErrInsufficientCredits
		}

		debited, err = s.creditRepo.Insert(ctx, &domain.CreditTransaction{
			UserID:          userID,
			Delta:           -amount,
			BalanceAfter:    current - amount,
			Type:            txType,
			Description:     description,
			RelatedRevealID: relatedRevealID,
			CreatedAt:       time.Now(),
		})
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientCredits) {
			zap.L().Error("failed to debit credits", zap.Error(err))
		}
		return nil, err
	}
	return debited, nil
}

// Credit adds credits (purchases, refunds, admin grants).
func (s *Service) Credit(ctx context.Context, userID, amount int, txType, description string) (*domain.CreditTransaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("credit amount must be positive, got %d", amount)
	}
	var credited *domain.CreditTransaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.creditRepo.LockUser(ctx, userID); err != nil {
			return err
		}

		current, err := s.materialize(ctx, userID)
		if err != nil {
			return err
		}

		credited, err = s.creditRepo.Insert(ctx, &domain.CreditTransaction{
			UserID:       userID,
			Delta:        amount,
			BalanceAfter: current + amount,
			Type:         txType,
			Description:  description,
			CreatedAt:    time.Now(),
		})
		return err
	})
	if err != nil {
		zap.L().Error("failed to credit ledger", zap.Error(err))
		return nil, err
	}
	return credited, nil
}

func (s *Service) GetHistory(ctx context.Context, userID int) ([]domain.CreditTransaction, error) {
	txns, err := s.creditRepo.ListByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch credit history", zap.Error(err))
		return nil, err
	}
	return txns, nil
}

// materialize returns the current balance, writing the first-use initial
// bonus when the user has no ledger history. Must be called with the
// per-user lock held.
func (s *Service) materialize(ctx context.Context, userID int) (int, error) {
	latest, err := s.creditRepo.GetLatest(ctx, userID)
	if err != nil {
		return 0, err
	}
	if latest != nil {
		return latest.BalanceAfter, nil
	}

	bonus, err := s.creditRepo.Insert(ctx, &domain.CreditTransaction{
		UserID:       userID,
		Delta:        domain.InitialBonus,
		BalanceAfter: domain.InitialBonus,
		Type:         domain.TxTypeInitialBonus,
		Description:  "welcome bonus",
		CreatedAt:    time.Now(),
	})
	if err != nil {
		return 0, err
	}
	zap.L().Info("initial bonus materialized", zap.Int("userID", userID))
	return bonus.BalanceAfter, nil
}

// Audit re-folds the full transaction log and verifies every balance_after
// link. A mismatch is never corrected here; it is surfaced for manual
// reconciliation.
func (s *Service) Audit(ctx context.Context, userID int) error {
	txns, err := s.creditRepo.ListByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch transactions for audit", zap.Error(err))
		return err
	}

	running := 0
	for i := len(txns) - 1; i >= 0; i-- {
		txn := txns[i]
		running += txn.Delta
		if txn.BalanceAfter != running {
			zap.L().Error("ledger chain broken",
				zap.Int("userID", userID),
				zap.Int64("txID", txn.ID),
				zap.Int("balanceAfter", txn.BalanceAfter),
				zap.Int("expected", running),
			)
			return fmt.Errorf("%w: transaction %d has balance_after=%d, fold gives %d",
				ErrInconsistentState, txn.ID, txn.BalanceAfter, running)
		}
	}
	return nil
}
