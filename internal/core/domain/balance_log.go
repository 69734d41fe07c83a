package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceLog is one append-only audit entry for an organization's balance.
// Invariant: NewBalance = OldBalance + Amount. Entries are never updated or
// deleted; retrieval is newest-first by creation time.
type BalanceLog struct {
	BalanceLogID   string          `json:"balanceLogID"`   // Primary Key (UUID)
	OrganizationID string          `json:"organizationID"` // FK -> organizations
	PaymentID      *string         `json:"paymentID"`      // Optional one-to-one link to the causing payment
	Amount         decimal.Decimal `json:"amount"`
	OldBalance     decimal.Decimal `json:"oldBalance"`
	NewBalance     decimal.Decimal `json:"newBalance"`
	CreatedAt      time.Time       `json:"createdAt"`
}
