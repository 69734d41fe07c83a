package pgsql

import (
	portsrepo "github.com/ZheltovAS/RR-test-task/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	organizationRepo := newPgxOrganizationRepository(dbPool)
	balanceLogRepo := newPgxBalanceLogRepository(dbPool)
	paymentRepo := newPgxPaymentRepository(dbPool, organizationRepo, balanceLogRepo)

	return portsrepo.RepositoryProvider{
		OrganizationRepo: organizationRepo,
		PaymentRepo:      paymentRepo,
		BalanceLogRepo:   balanceLogRepo,
	}
}
