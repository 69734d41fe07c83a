package services

import (
	"context"
	"log/slog"

	"github.com/ZheltovAS/RR-test-task/internal/core/domain"
	portsrepo "github.com/ZheltovAS/RR-test-task/internal/core/ports/repositories"
	portssvc "github.com/ZheltovAS/RR-test-task/internal/core/ports/services"
	"github.com/ZheltovAS/RR-test-task/internal/middleware"
)

// organizationService provides read-only access to organization balances and
// their audit trail.
type organizationService struct {
	organizationRepo portsrepo.OrganizationRepositoryFacade
	balanceLogRepo   portsrepo.BalanceLogRepositoryFacade
}

// NewOrganizationService creates a new OrganizationService.
func NewOrganizationService(organizationRepo portsrepo.OrganizationRepositoryFacade, balanceLogRepo portsrepo.BalanceLogRepositoryFacade) portssvc.OrganizationSvcFacade {
	return &organizationService{
		organizationRepo: organizationRepo,
		balanceLogRepo:   balanceLogRepo,
	}
}

// Ensure organizationService implements the portssvc.OrganizationSvcFacade interface
var _ portssvc.OrganizationSvcFacade = (*organizationService)(nil)

// GetBalanceByINN returns the organization for the given tax identifier.
// An unknown INN propagates apperrors.ErrNotFound; no row is created here.
func (s *organizationService) GetBalanceByINN(ctx context.Context, inn string) (*domain.Organization, error) {
	return s.organizationRepo.FindByINN(ctx, inn)
}

// ListBalanceLogs returns a newest-first page of audit entries for the
// organization with the given INN.
func (s *organizationService) ListBalanceLogs(ctx context.Context, inn string, limit int, offset int) ([]domain.BalanceLog, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	org, err := s.organizationRepo.FindByINN(ctx, inn)
	if err != nil {
		return nil, err
	}

	logs, err := s.balanceLogRepo.ListByOrganizationID(ctx, org.OrganizationID, limit, offset)
	if err != nil {
		logger.Error("Failed to list balance logs", slog.String("inn", inn), slog.String("error", err.Error()))
		return nil, err
	}
	return logs, nil
}
