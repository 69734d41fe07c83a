package mapping

import (
	"github.com/ZheltovAS/RR-test-task/internal/core/domain"
	"github.com/ZheltovAS/RR-test-task/internal/models"
)

// ToModelBalanceLog converts a domain BalanceLog to a model BalanceLog
func ToModelBalanceLog(d domain.BalanceLog) models.BalanceLog {
	return models.BalanceLog{
		BalanceLogID:   d.BalanceLogID,
		OrganizationID: d.OrganizationID,
		PaymentID:      d.PaymentID,
		Amount:         d.Amount,
		OldBalance:     d.OldBalance,
		NewBalance:     d.NewBalance,
		CreatedAt:      d.CreatedAt,
	}
}

// ToDomainBalanceLog converts a model BalanceLog to a domain BalanceLog
func ToDomainBalanceLog(m models.BalanceLog) domain.BalanceLog {
	return domain.BalanceLog{
		BalanceLogID:   m.BalanceLogID,
		OrganizationID: m.OrganizationID,
		PaymentID:      m.PaymentID,
		Amount:         m.Amount,
		OldBalance:     m.OldBalance,
		NewBalance:     m.NewBalance,
		CreatedAt:      m.CreatedAt,
	}
}

// ToDomainBalanceLogSlice converts a slice of model BalanceLogs to domain BalanceLogs
func ToDomainBalanceLogSlice(ms []models.BalanceLog) []domain.BalanceLog {
	ds := make([]domain.BalanceLog, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBalanceLog(m)
	}
	return ds
}
