package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/apperr"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/models"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/payments"
	"github.com/Mdnajimuddinhelal70/medicine-management-server/internal/repository"
)

const intentCurrency = "usd"

// PaymentService coordinates intent creation with the provider and the
// settlement of recorded payments against the cart collection.
type PaymentService struct {
	payments repository.PaymentStore
	settler  repository.Settler
	provider payments.Provider
	log      *zap.SugaredLogger
}

func NewPaymentService(store repository.PaymentStore, settler repository.Settler, provider payments.Provider, log *zap.SugaredLogger) *PaymentService {
	return &PaymentService{payments: store, settler: settler, provider: provider, log: log}
}

// MinorUnits converts a major-unit amount to minor units, rounding to the
// nearest integer. Non-positive and non-finite amounts are rejected.
func MinorUnits(price float64) (int64, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return 0, fmt.Errorf("%w: invalid price value", apperr.ErrInvalidArgument)
	}
	return int64(math.Round(price * 100)), nil
}

// CreateIntent validates the amount and requests a card charge intent. The
// provider is never called for an invalid amount.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount, err := MinorUnits(price)
	if err != nil {
		return "", err
	}
	secret, err := s.provider.CreateIntent(ctx, amount, intentCurrency)
	if err != nil {
		s.log.Errorw("payment intent failed", "amount", amount, "error", err)
		return "", err
	}
	return secret, nil
}

// Settle persists the payment record and deletes the cart items it names.
// There is deliberately no idempotence guard: settling the same cart ids
// twice inserts a second record and deletes nothing.
func (s *PaymentService) Settle(ctx context.Context, p models.Payment) (repository.SettlementResult, error) {
	if p.Email == "" {
		return repository.SettlementResult{}, fmt.Errorf("%w: payer email is required", apperr.ErrInvalidArgument)
	}
	if p.Status == "" {
		p.Status = models.StatusPending
	}
	if p.TransactionID == "" {
		p.TransactionID = uuid.NewString()
	}
	p.CreatedAt = time.Now()

	result, err := s.settler.Settle(ctx, p)
	if err != nil {
		return repository.SettlementResult{}, err
	}
	s.log.Infow("payment settled",
		"payment_id", result.PaymentID,
		"carts_deleted", result.DeletedCarts,
		"status", p.Status)
	return result, nil
}

// MarkPaid moves a payment's status to paid. Applying it twice is a no-op
// in effect.
func (s *PaymentService) MarkPaid(ctx context.Context, id string) (int64, error) {
	return s.payments.MarkPaid(ctx, id)
}

func (s *PaymentService) List(ctx context.Context) ([]models.Payment, error) {
	return s.payments.List(ctx)
}

func (s *PaymentService) ListByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	return s.payments.ListByEmail(ctx, email)
}
