package revealservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/affilink/creditmarket/internal/domain"
	"github.com/affilink/creditmarket/internal/pg"
	revealrepo "github.com/affilink/creditmarket/internal/repo/reveal-repo"
	"github.com/affilink/creditmarket/internal/service/creditservice"
	"go.uber.org/zap"
)

type RevealRepo interface {
	Insert(ctx context.Context, record *domain.RevealRecord) (*domain.RevealRecord, error)
	FindByPair(ctx context.Context, revealerID, targetID int) (*domain.RevealRecord, error)
	ListByRevealer(ctx context.Context, revealerID int) ([]domain.RevealRecord, error)
}

type UserRepo interface {
	FindByID(ctx context.Context, userID int) (*domain.User, error)
}

type RateLimitRepo interface {
	Bump(ctx context.Context, userID int, action string, now time.Time, window time.Duration) (int, error)
}

// Ledger is the slice of the credit service the authorizer drives.
type Ledger interface {
	GetBalance(ctx context.Context, userID int) (*domain.Balance, error)
	Debit(ctx context.Context, userID, amount int, txType, description string, relatedRevealID *string) (*domain.CreditTransaction, error)
}

var (
	ErrRateLimited    = errors.New("too many reveal attempts")
	ErrTargetNotFound = errors.New("target user not found")
)

const (
	rateLimitAction = "reveal"
	rateLimitMax    = 30
	rateLimitWindow = time.Hour
)

// RevealResult is the successful outcome of a reveal request. Already
// revealed pairs are a success, not an error: the cost is paid exactly once
// per pair no matter how often the request is repeated.
type RevealResult struct {
	AlreadyRevealed bool
	Record          *domain.RevealRecord
	Contact         *domain.Contact
}

// Service authorizes contact reveals: role policy, at-most-once bookkeeping
// per (revealer, target) pair, and the one-credit debit.
type Service struct {
	revealRepo RevealRepo
	userRepo   UserRepo
	rateRepo   RateLimitRepo
	ledger     Ledger
	txManager  pg.TXManager
}

func New(revealRepo RevealRepo, userRepo UserRepo, rateRepo RateLimitRepo, ledger Ledger, txManager pg.TXManager) *Service {
	return &Service{
		revealRepo: revealRepo,
		userRepo:   userRepo,
		rateRepo:   rateRepo,
		ledger:     ledger,
		txManager:  txManager,
	}
}

func (s *Service) RequestReveal(ctx context.Context, revealerID, targetID int) (*RevealResult, error) {
	count, err := s.rateRepo.Bump(ctx, revealerID, rateLimitAction, time.Now(), rateLimitWindow)
	if err != nil {
		return nil, err
	}
	if count > rateLimitMax {
		zap.L().Warn("reveal rate limit exceeded", zap.Int("revealerID", revealerID), zap.Int("count", count))
		return nil, ErrRateLimited
	}

	revealer, err := s.userRepo.FindByID(ctx, revealerID)
	if err != nil {
		return nil, err
	}
	target, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if revealer == nil || target == nil {
		return nil, ErrInvalidRoles
	}

	if err := CanReveal(revealer.Role, target.Role, revealerID, targetID); err != nil {
		zap.L().Info("reveal denied by policy",
			zap.Int("revealerID", revealerID),
			zap.Int("targetID", targetID),
			zap.String("reason", err.Error()),
		)
		return nil, err
	}

	// Self-views and admins never consume credits or leave records.
	if revealerID == targetID || revealer.Role == domain.RoleAdmin {
		return &RevealResult{AlreadyRevealed: true, Contact: contactOf(target)}, nil
	}

	existing, err := s.revealRepo.FindByPair(ctx, revealerID, targetID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &RevealResult{AlreadyRevealed: true, Record: existing, Contact: contactOf(target)}, nil
	}

	balance, err := s.ledger.GetBalance(ctx, revealerID)
	if err != nil {
		return nil, err
	}
	if balance.Total < domain.RevealCost {
		return nil, creditservice.ErrInsufficientCredits
	}

	// The record insert and the debit commit or roll back together. The
	// unique pair constraint turns a concurrent double request into
	// ErrDuplicatePair, which reads back as AlreadyRevealed below.
	var record *domain.RevealRecord
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		record, err = s.revealRepo.Insert(ctx, &domain.RevealRecord{
			RevealerID:  revealerID,
			TargetID:    targetID,
			CostCredits: domain.RevealCost,
			RevealedAt:  time.Now(),
		})
		if err != nil {
			return err
		}
		_, err = s.ledger.Debit(ctx, revealerID, domain.RevealCost, domain.TxTypeReveal,
			fmt.Sprintf("contact reveal for user %d", targetID), &record.ID)
		return err
	})
	if err != nil {
		if errors.Is(err, revealrepo.ErrDuplicatePair) {
			existing, ferr := s.revealRepo.FindByPair(ctx, revealerID, targetID)
			if ferr != nil {
				return nil, ferr
			}
			return &RevealResult{AlreadyRevealed: true, Record: existing, Contact: contactOf(target)}, nil
		}
		if !errors.Is(err, creditservice.ErrInsufficientCredits) {
			zap.L().Error("failed to process reveal", zap.Error(err))
		}
		return nil, err
	}

	zap.L().Info("contact revealed",
		zap.Int("revealerID", revealerID),
		zap.Int("targetID", targetID),
		zap.String("revealID", record.ID),
	)
	return &RevealResult{Record: record, Contact: contactOf(target)}, nil
}

// CheckRevealed reports whether the pair is already unlocked and returns the
// target's contacts, masked unless the reveal has been paid for.
func (s *Service) CheckRevealed(ctx context.Context, revealerID, targetID int) (bool, *domain.Contact, error) {
	target, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		return false, nil, err
	}
	if target == nil {
		return false, nil, ErrTargetNotFound
	}

	if revealerID == targetID {
		return true, contactOf(target), nil
	}

	revealer, err := s.userRepo.FindByID(ctx, revealerID)
	if err != nil {
		return false, nil, err
	}
	if revealer != nil && revealer.Role == domain.RoleAdmin {
		return true, contactOf(target), nil
	}

	existing, err := s.revealRepo.FindByPair(ctx, revealerID, targetID)
	if err != nil {
		return false, nil, err
	}
	if existing == nil {
		return false, maskContact(contactOf(target)), nil
	}
	return true, contactOf(target), nil
}

func (s *Service) GetReveals(ctx context.Context, revealerID int) ([]domain.RevealRecord, error) {
	records, err := s.revealRepo.ListByRevealer(ctx, revealerID)
	if err != nil {
		zap.L().Error("failed to fetch reveal history", zap.Error(err))
		return nil, err
	}
	return records, nil
}

func contactOf(u *domain.User) *domain.Contact {
	return &domain.Contact{
		UserID:   u.ID,
		Email:    u.ContactEmail,
		Phone:    u.ContactPhone,
		Telegram: u.ContactTelegram,
	}
}

func maskContact(c *domain.Contact) *domain.Contact {
	return &domain.Contact{
		UserID:   c.UserID,
		Email:    maskEmail(c.Email),
		Phone:    maskTail(c.Phone),
		Telegram: maskTail(c.Telegram),
	}
}

func maskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at <= 1 {
		return maskTail(email)
	}
	return email[:1] + strings.Repeat("*", at-1) + email[at:]
}

func maskTail(s string) string {
	if len(s) <= 2 {
		return strings.Repeat("*", len(s))
	}
	return s[:2] + strings.Repeat("*", len(s)-2)
}
