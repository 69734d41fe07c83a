package repositories

import (
	"context"
	"time"

	"github.com/ZheltovAS/RR-test-task/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// OrganizationReader defines read operations for organization data
type OrganizationReader interface {
	// FindByINN retrieves an organization by its tax identifier.
	// Returns apperrors.ErrNotFound when no organization exists for the INN.
	FindByINN(ctx context.Context, inn string) (*domain.Organization, error)
}

// OrganizationTransactionSupport defines operations used inside the payment transaction
type OrganizationTransactionSupport interface {
	// GetOrCreateForUpdate upserts the organization for the given INN (balance
	// zero on first sight) and returns the row locked for the duration of tx.
	GetOrCreateForUpdate(ctx context.Context, tx pgx.Tx, inn string, now time.Time) (*domain.Organization, error)

	// IncrementBalanceInTx atomically adds delta to the organization's balance
	// within tx and returns the resulting balance.
	IncrementBalanceInTx(ctx context.Context, tx pgx.Tx, organizationID string, delta decimal.Decimal, now time.Time) (decimal.Decimal, error)
}

// OrganizationRepositoryFacade combines all organization-related repository interfaces
type OrganizationRepositoryFacade interface {
	OrganizationReader
	OrganizationTransactionSupport
}
