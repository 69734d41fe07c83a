package services

import (
	portsrepo "github.com/ZheltovAS/RR-test-task/internal/core/ports/repositories"
	portssvc "github.com/ZheltovAS/RR-test-task/internal/core/ports/services"
)

// NewServiceContainer creates the service container with properly initialized
// dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Payment:      NewPaymentService(repos.PaymentRepo),
		Organization: NewOrganizationService(repos.OrganizationRepo, repos.BalanceLogRepo),
	}
}
