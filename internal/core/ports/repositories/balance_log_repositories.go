package repositories

import (
	"context"

	"github.com/ZheltovAS/RR-test-task/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// BalanceLogReader defines read operations for balance audit entries
type BalanceLogReader interface {
	// ListByOrganizationID retrieves a newest-first page of audit entries.
	ListByOrganizationID(ctx context.Context, organizationID string, limit int, offset int) ([]domain.BalanceLog, error)
}

// BalanceLogTransactionSupport defines operations used inside the payment transaction
type BalanceLogTransactionSupport interface {
	// SaveBalanceLogInTx appends one audit entry within tx.
	SaveBalanceLogInTx(ctx context.Context, tx pgx.Tx, log domain.BalanceLog) error
}

// BalanceLogRepositoryFacade combines all balance-log repository interfaces
type BalanceLogRepositoryFacade interface {
	BalanceLogReader
	BalanceLogTransactionSupport
}
