package dto

import (
	"time"

	"github.com/ZheltovAS/RR-test-task/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OrganizationBalanceResponse is the body of a balance query.
type OrganizationBalanceResponse struct {
	INN     string          `json:"inn"`
	Balance decimal.Decimal `json:"balance"`
}

// ToOrganizationBalanceResponse converts a domain.Organization to its balance view.
func ToOrganizationBalanceResponse(org *domain.Organization) OrganizationBalanceResponse {
	return OrganizationBalanceResponse{
		INN:     org.INN,
		Balance: org.Balance,
	}
}

// BalanceLogResponse is one audit entry in a balance history listing.
type BalanceLogResponse struct {
	BalanceLogID string          `json:"balanceLogID"`
	PaymentID    *string         `json:"paymentID,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	OldBalance   decimal.Decimal `json:"oldBalance"`
	NewBalance   decimal.Decimal `json:"newBalance"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToBalanceLogResponse converts a domain.BalanceLog to its response view.
func ToBalanceLogResponse(l domain.BalanceLog) BalanceLogResponse {
	return BalanceLogResponse{
		BalanceLogID: l.BalanceLogID,
		PaymentID:    l.PaymentID,
		Amount:       l.Amount,
		OldBalance:   l.OldBalance,
		NewBalance:   l.NewBalance,
		CreatedAt:    l.CreatedAt,
	}
}

// ListBalanceLogsParams defines query parameters for listing balance logs.
type ListBalanceLogsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListBalanceLogsResponse wraps the newest-first list of audit entries.
type ListBalanceLogsResponse struct {
	Logs []BalanceLogResponse `json:"logs"`
}
