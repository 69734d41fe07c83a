package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ZheltovAS/RR-test-task/internal/apperrors"
	"github.com/ZheltovAS/RR-test-task/internal/core/domain"
	portsrepo "github.com/ZheltovAS/RR-test-task/internal/core/ports/repositories"
	portssvc "github.com/ZheltovAS/RR-test-task/internal/core/ports/services"
	"github.com/ZheltovAS/RR-test-task/internal/dto"
	"github.com/ZheltovAS/RR-test-task/internal/middleware"
	"github.com/shopspring/decimal"
)

var ErrAmountPrecision = errors.New("payment amount must fit 12 digits with at most 2 decimal places")

// maxPaymentAmount bounds the absolute amount at NUMERIC(12,2): up to ten
// integer digits once the two fractional digits are accounted for.
var maxPaymentAmount = decimal.New(1, 10)

// paymentService implements the webhook intake and orchestrates the atomic
// credit performed by the payment repository.
type paymentService struct {
	paymentRepo portsrepo.PaymentRepositoryFacade
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryFacade) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo: paymentRepo,
	}
}

// Ensure paymentService implements the portssvc.PaymentSvcFacade interface
var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// validateAmount enforces the fixed-point shape of a payment amount.
// Sign and zero are not restricted: a negative amount is a correction and a
// zero amount is recorded as a no-op credit.
func (s *paymentService) validateAmount(amount decimal.Decimal) error {
	if amount.Exponent() < -2 {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrAmountPrecision)
	}
	if amount.Abs().GreaterThanOrEqual(maxPaymentAmount) {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrAmountPrecision)
	}
	return nil
}

// ProcessWebhook validates a payment notification, deduplicates it by
// operation id, and credits the payer organization exactly once.
//
// The existence pre-check is only a fast path for retried deliveries; the
// UNIQUE constraint enforced inside SavePayment is what guarantees a single
// committed credit under concurrency, and a constraint hit is translated to
// the same duplicate no-op here.
func (s *paymentService) ProcessWebhook(ctx context.Context, req dto.BankWebhookRequest) (domain.ProcessOutcome, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.validateAmount(req.Amount); err != nil {
		return "", err
	}

	exists, err := s.paymentRepo.ExistsByOperationID(ctx, req.OperationID)
	if err != nil {
		logger.Error("Failed to check for duplicate operation", slog.String("operation_id", req.OperationID.String()), slog.String("error", err.Error()))
		return "", err
	}
	if exists {
		logger.Info("Duplicate operation received", slog.String("operation_id", req.OperationID.String()))
		return domain.OutcomeDuplicate, nil
	}

	payment := domain.Payment{
		PaymentID:      uuid.NewString(),
		OperationID:    req.OperationID,
		Amount:         req.Amount,
		PayerINN:       req.PayerINN,
		DocumentNumber: req.DocumentNumber,
		DocumentDate:   req.DocumentDate,
		CreatedAt:      time.Now().UTC(),
	}

	balanceLog, err := s.paymentRepo.SavePayment(ctx, payment)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// A concurrent delivery of the same operation id committed first.
			logger.Info("Duplicate operation detected on insert", slog.String("operation_id", req.OperationID.String()))
			return domain.OutcomeDuplicate, nil
		}
		logger.Error("Failed to process payment",
			slog.String("operation_id", req.OperationID.String()),
			slog.String("error", err.Error()),
		)
		return "", err
	}

	logger.Info("Payment credited",
		slog.String("operation_id", req.OperationID.String()),
		slog.String("payer_inn", req.PayerINN),
		slog.String("amount", payment.Amount.String()),
		slog.String("new_balance", balanceLog.NewBalance.String()),
	)
	return domain.OutcomeCreated, nil
}
