package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConversionRate is the persisted row of the conversion_rate table.
type ConversionRate struct {
	ConversionRateID string          `db:"conversion_rate_id"`
	Rate             decimal.Decimal `db:"rate"`
	EffectiveDate    time.Time       `db:"effective_date"`
	AuditFields
}
