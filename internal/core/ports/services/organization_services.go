package services

import (
	"context"

	"github.com/ZheltovAS/RR-test-task/internal/core/domain"
)

// OrganizationSvcFacade exposes read-only organization state.
type OrganizationSvcFacade interface {
	// GetBalanceByINN returns the organization for the given tax identifier.
	// Unknown INNs yield apperrors.ErrNotFound; this path never creates rows.
	GetBalanceByINN(ctx context.Context, inn string) (*domain.Organization, error)

	// ListBalanceLogs returns a newest-first page of the organization's audit
	// trail. Unknown INNs yield apperrors.ErrNotFound.
	ListBalanceLogs(ctx context.Context, inn string, limit int, offset int) ([]domain.BalanceLog, error)
}
