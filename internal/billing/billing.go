package billing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/affilink/creditmarket/internal/config"
	"github.com/affilink/creditmarket/internal/domain"
	"github.com/affilink/creditmarket/internal/pg"
	"github.com/affilink/creditmarket/pkg/metrics"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/affilink/creditmarket/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var processingPurchases sync.Map

// Response is the billing system's payment status payload.
type Response struct {
	Order  string `json:"order"`
	Status string `json:"status"`
	Amount int    `json:"amount,omitempty"`
}

type PurchaseRepo interface {
	FindForProcessing(ctx context.Context, limit uint32) ([]domain.Purchase, error)
	UpdateStatus(ctx context.Context, id int, status string) error
	MarkSettled(ctx context.Context, id int, settledAt time.Time) (bool, error)
}

// Ledger is the slice of the credit service the settlement path drives.
type Ledger interface {
	Credit(ctx context.Context, userID, amount int, txType, description string) (*domain.CreditTransaction, error)
}

// Service polls the external billing system for pending credit purchases and
// credits the ledger once a payment is confirmed.
type Service struct {
	url            string
	purchaseRepo   PurchaseRepo
	ledger         Ledger
	txManager      pg.TXManager
	client         clients.HTTPClientI
	limit          uint32
	workerPool     WorkerPoolI
	updateInterval time.Duration
}

func New(cfg *config.Config, purchaseRepo PurchaseRepo, ledger Ledger, txManager pg.TXManager, client clients.HTTPClientI) *Service {
	return &Service{
		url:            cfg.BillingAddress,
		purchaseRepo:   purchaseRepo,
		ledger:         ledger,
		txManager:      txManager,
		client:         client,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		updateInterval: time.Second * 5,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Billing settlement service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.updateInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping billing service")
			return
		case <-ticker.C:
			s.processPurchases(ctx)
		}
	}
}

func (s *Service) processPurchases(ctx context.Context) {
	purchases, err := s.purchaseRepo.FindForProcessing(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch purchases for processing", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, purchase := range purchases {
		purchase := purchase

		if _, loaded := processingPurchases.LoadOrStore(purchase.OrderNumber, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer processingPurchases.Delete(purchase.OrderNumber)
				return s.handlePurchase(ctx, purchase)
			})
			if err != nil {
				processingPurchases.Delete(purchase.OrderNumber)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error processing purchases", zap.Error(err))
	}
}

func (s *Service) handlePurchase(ctx context.Context, purchase domain.Purchase) error {
	url := s.url + "/api/payments/" + purchase.OrderNumber
	var err error
	var statusCode int
	var respBody []byte
	var respHeaders http.Header

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, respBody, respHeaders, err = s.client.Get(url, nil)
			if err != nil {
				if attempt < maxRetries {
					retryAfter := retryInterval * time.Duration(attempt)
					time.Sleep(retryAfter)
					continue
				}
				return fmt.Errorf("failed to process purchase %s after %d retries: %w", purchase.OrderNumber, maxRetries, err)
			}

			switch statusCode {
			case http.StatusTooManyRequests:
				return s.handleRateLimit(purchase, respHeaders, attempt)
			case http.StatusNoContent:
				zap.L().Warn("Payment not found in billing system, retrying", zap.String("orderNumber", purchase.OrderNumber), zap.Int("attempt", attempt))
				if attempt < maxRetries {
					retryAfter := retryInterval * time.Duration(attempt)
					time.Sleep(retryAfter)
					continue
				}
				return fmt.Errorf("failed to process not found payment %s after %d retries", purchase.OrderNumber, maxRetries)

			case http.StatusOK:
				return s.processPayment(ctx, purchase, respBody)

			default:
				zap.L().Error("Unexpected status code", zap.Int("status", statusCode), zap.String("orderNumber", purchase.OrderNumber))
				return errors.New("unexpected status code")
			}
		}
	}
	return nil
}

func (s *Service) processPayment(ctx context.Context, purchase domain.Purchase, respBody []byte) error {
	var response Response
	if err := json.Unmarshal(respBody, &response); err != nil {
		return fmt.Errorf("failed to parse response body: %w", err)
	}

	if response.Order != purchase.OrderNumber {
		return fmt.Errorf("order number mismatch: expected %s, got %s", purchase.OrderNumber, response.Order)
	}

	switch response.Status {
	case domain.PurchaseStatusProcessed:
		return s.settlePurchase(ctx, purchase)
	case domain.PurchaseStatusProcessing:
		if purchase.Status != domain.PurchaseStatusProcessing {
			return s.purchaseRepo.UpdateStatus(ctx, purchase.ID, domain.PurchaseStatusProcessing)
		}
	case domain.PurchaseStatusInvalid:
		zap.L().Info("Payment is invalid and will not be credited", zap.String("orderNumber", purchase.OrderNumber))
		return s.purchaseRepo.UpdateStatus(ctx, purchase.ID, domain.PurchaseStatusInvalid)
	default:
		zap.L().Warn("Unrecognized status received", zap.String("orderNumber", purchase.OrderNumber), zap.String("status", response.Status))
	}
	return nil
}

// settlePurchase marks the purchase settled and credits the ledger in one
// transaction. The settled-once status guard keeps a retried confirmation
// from crediting twice.
func (s *Service) settlePurchase(ctx context.Context, purchase domain.Purchase) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		settled, err := s.purchaseRepo.MarkSettled(ctx, purchase.ID, time.Now())
		if err != nil {
			return err
		}
		if !settled {
			zap.L().Info("Purchase already settled", zap.String("orderNumber", purchase.OrderNumber))
			return nil
		}
		_, err = s.ledger.Credit(ctx, purchase.UserID, purchase.Amount, domain.TxTypePurchase,
			"credit purchase "+purchase.OrderNumber)
		if err != nil {
			return fmt.Errorf("failed to credit user %d: %w", purchase.UserID, err)
		}
		metrics.PurchasesSettled.Inc()
		metrics.Transactions.WithLabelValues(domain.TxTypePurchase).Inc()
		return nil
	})
	if err != nil {
		return err
	}

	zap.L().Info("Purchase settled", zap.String("orderNumber", purchase.OrderNumber), zap.Int("amount", purchase.Amount))
	return nil
}

func (s *Service) handleRateLimit(purchase domain.Purchase, respHeaders http.Header, attempt int) error {
	retryAfterHeader := respHeaders.Get("Retry-After")
	retryAfter := retryInterval * time.Duration(attempt)

	if retryAfterHeader != "" {
		if seconds, err := strconv.Atoi(retryAfterHeader); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn(
		"Rate limit detected, retrying",
		zap.String("orderNumber", purchase.OrderNumber),
		zap.Int("attempt", attempt),
		zap.Duration("retryAfter", retryAfter),
	)
	time.Sleep(retryAfter)
	return nil
}
