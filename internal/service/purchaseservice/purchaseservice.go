package purchaseservice

import (
	"context"
	"errors"
	"time"

	"github.com/affilink/creditmarket/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	Create(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Purchase, error)
	ListByUserID(ctx context.Context, userID int) ([]domain.Purchase, error)
}

// Service accepts credit top-up orders. Settlement is asynchronous: the
// billing poller confirms the payment and credits the ledger.
type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var (
	ErrPurchaseAlreadyExistsByUser = errors.New("purchase already exists by user")
	ErrPurchaseAlreadyExists       = errors.New("purchase already exists")
)

func (s *Service) CreatePurchase(ctx context.Context, userID int, orderNumber string, amount int) (*domain.Purchase, error) {
	existing, err := s.repo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.UserID == userID {
			zap.L().Info("purchase already exists by user", zap.String("order_number", orderNumber))
			return nil, ErrPurchaseAlreadyExistsByUser
		}
		zap.L().Info("purchase already exists", zap.String("order_number", orderNumber))
		return nil, ErrPurchaseAlreadyExists
	}

	purchase := &domain.Purchase{
		UserID:      userID,
		OrderNumber: orderNumber,
		Amount:      amount,
		Status:      domain.PurchaseStatusNew,
		CreatedAt:   time.Now(),
	}

	purchase, err = s.repo.Create(ctx, purchase)
	if err != nil {
		zap.L().Error("can't save purchase: ", zap.Error(err))
		return nil, err
	}

	return purchase, nil
}

func (s *Service) GetPurchases(ctx context.Context, userID int) ([]domain.Purchase, error) {
	purchases, err := s.repo.ListByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get purchases", zap.Error(err))
		return nil, err
	}
	return purchases, nil
}
