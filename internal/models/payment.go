package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment is the database row for a recorded bank payment.
type Payment struct {
	PaymentID      string          `db:"payment_id"`
	OperationID    uuid.UUID       `db:"operation_id"` // UNIQUE, the dedup key
	Amount         decimal.Decimal `db:"amount"`
	PayerINN       string          `db:"payer_inn"`
	DocumentNumber string          `db:"document_number"`
	DocumentDate   time.Time       `db:"document_date"`
	CreatedAt      time.Time       `db:"created_at"`
}
