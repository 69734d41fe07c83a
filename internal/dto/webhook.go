package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BankWebhookRequest is the inbound payment notification payload.
// All fields are required; document_date is RFC3339.
type BankWebhookRequest struct {
	OperationID    uuid.UUID       `json:"operation_id" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	PayerINN       string          `json:"payer_inn" binding:"required,max=12"`
	DocumentNumber string          `json:"document_number" binding:"required,max=50"`
	DocumentDate   time.Time       `json:"document_date" binding:"required"`
}
