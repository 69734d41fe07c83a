package services

import (
	"context"

	"github.com/ZheltovAS/RR-test-task/internal/core/domain"
	"github.com/ZheltovAS/RR-test-task/internal/dto"
)

// PaymentSvcFacade processes inbound bank payment notifications.
type PaymentSvcFacade interface {
	// ProcessWebhook validates the notification, deduplicates it by operation
	// id and, for a first delivery, credits the payer organization atomically.
	// OutcomeDuplicate with a nil error means an idempotent no-op; validation
	// failures wrap apperrors.ErrValidation, storage failures are wrapped
	// server-side errors.
	ProcessWebhook(ctx context.Context, req dto.BankWebhookRequest) (domain.ProcessOutcome, error)
}
