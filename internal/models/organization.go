package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Organization is the database row for an organization and its balance.
type Organization struct {
	OrganizationID string          `db:"organization_id"`
	INN            string          `db:"inn"`
	Balance        decimal.Decimal `db:"balance"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
}
