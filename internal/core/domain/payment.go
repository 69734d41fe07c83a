package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment is a single bank payment notification, recorded exactly once per
// operation id. Rows are immutable after insertion.
type Payment struct {
	PaymentID      string          `json:"paymentID"`      // Primary Key (UUID)
	OperationID    uuid.UUID       `json:"operationID"`    // Bank-issued unique token, the dedup key
	Amount         decimal.Decimal `json:"amount"`         // NUMERIC(12,2)
	PayerINN       string          `json:"payerINN"`       // Matched against Organization.INN, not a hard FK
	DocumentNumber string          `json:"documentNumber"`
	DocumentDate   time.Time       `json:"documentDate"`
	CreatedAt      time.Time       `json:"createdAt"`
}
