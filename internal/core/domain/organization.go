package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Organization is the holder of a running balance, keyed by its tax
// identifier (INN). Organizations are created lazily on the first payment
// that references them and are never deleted by this service.
type Organization struct {
	OrganizationID string          `json:"organizationID"` // Primary Key (UUID)
	INN            string          `json:"inn"`            // Tax identifier, unique, byte-exact comparison
	Balance        decimal.Decimal `json:"balance"`        // Current balance, NUMERIC(15,2)
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"` // Refreshed on every balance mutation
}
