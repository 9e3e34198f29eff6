package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConversionRate is a published PKR/ZC rate: 1 ZC = Rate PKR.
// Records are immutable; a newer EffectiveDate supersedes older ones.
type ConversionRate struct {
	ConversionRateID string          `json:"conversionRateID"`
	Rate             decimal.Decimal `json:"rate"`
	EffectiveDate    time.Time       `json:"effectiveDate"`
	AuditFields
}

// CachedRate is the rate currently served from memory and when it was loaded.
type CachedRate struct {
	Rate      decimal.Decimal `json:"rate"`
	FetchedAt time.Time       `json:"fetchedAt"`
}
