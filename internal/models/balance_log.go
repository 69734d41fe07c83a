package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceLog is the database row for one balance audit entry.
// PaymentID uses a pointer for the nullable one-to-one payment link.
type BalanceLog struct {
	BalanceLogID   string          `db:"balance_log_id"`
	OrganizationID string          `db:"organization_id"`
	PaymentID      *string         `db:"payment_id"`
	Amount         decimal.Decimal `db:"amount"`
	OldBalance     decimal.Decimal `db:"old_balance"`
	NewBalance     decimal.Decimal `db:"new_balance"`
	CreatedAt      time.Time       `db:"created_at"`
}
