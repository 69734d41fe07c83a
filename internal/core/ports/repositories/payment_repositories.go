package repositories

import (
	"context"

	"github.com/ZheltovAS/RR-test-task/internal/core/domain"
	"github.com/google/uuid"
)

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	// ExistsByOperationID reports whether a payment with the given bank
	// operation id has already been recorded.
	ExistsByOperationID(ctx context.Context, operationID uuid.UUID) (bool, error)
}

// PaymentWriter defines write operations for payment data
type PaymentWriter interface {
	// SavePayment performs the whole credit as one transaction: organization
	// upsert with row lock, payment insert, atomic balance increment and the
	// audit log append. Returns the created audit entry.
	// A concurrent delivery of the same operation id surfaces as
	// apperrors.ErrDuplicate with nothing committed.
	SavePayment(ctx context.Context, payment domain.Payment) (*domain.BalanceLog, error)
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}

// PaymentRepositoryWithTx extends PaymentRepositoryFacade with transaction capabilities
type PaymentRepositoryWithTx interface {
	PaymentRepositoryFacade
	TransactionManager
}
