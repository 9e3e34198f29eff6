package dto

import (
	"time"

	"github.com/SscSPs/zcred_app/internal/core/domain"
	"github.com/SscSPs/zcred_app/internal/utils/currency"
	"github.com/shopspring/decimal"
)

// CreateConversionRateRequest defines the structure for publishing a new PKR/ZC rate.
// EffectiveDate defaults to now when omitted.
type CreateConversionRateRequest struct {
	Rate          decimal.Decimal `json:"rate"`
	EffectiveDate *time.Time      `json:"effectiveDate"`
}

// ListConversionRatesParams defines query parameters for listing rates.
type ListConversionRatesParams struct {
	Limit  int `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// ConversionRateResponse defines the API shape of a stored rate record.
type ConversionRateResponse struct {
	ConversionRateID string          `json:"conversionRateID"`
	Rate             decimal.Decimal `json:"rate"`
	EffectiveDate    time.Time       `json:"effectiveDate"`
	CreatedAt        time.Time       `json:"createdAt"`
	CreatedBy        string          `json:"createdBy"`
}

// ToConversionRateResponse converts a domain.ConversionRate to ConversionRateResponse DTO
func ToConversionRateResponse(rate *domain.ConversionRate) ConversionRateResponse {
	return ConversionRateResponse{
		ConversionRateID: rate.ConversionRateID,
		Rate:             rate.Rate,
		EffectiveDate:    rate.EffectiveDate,
		CreatedAt:        rate.CreatedAt,
		CreatedBy:        rate.CreatedBy,
	}
}

// ListConversionRatesResponse wraps a page of rate records.
// Serving is the rate currently held by the cache, absent until one is fetched.
type ListConversionRatesResponse struct {
	Rates   []ConversionRateResponse `json:"rates"`
	Serving *domain.CachedRate       `json:"serving,omitempty"`
}

// ToListConversionRatesResponse converts a slice of domain rates to the list DTO.
func ToListConversionRatesResponse(rates []domain.ConversionRate, serving *domain.CachedRate) ListConversionRatesResponse {
	out := make([]ConversionRateResponse, len(rates))
	for i := range rates {
		out[i] = ToConversionRateResponse(&rates[i])
	}
	return ListConversionRatesResponse{Rates: out, Serving: serving}
}

// LatestRateResponse is the current rate as served to the UI.
type LatestRateResponse struct {
	Rate    decimal.Decimal `json:"rate"`
	Display string          `json:"display"` // e.g. "1 ZC = PKR 280.00"
}

// ToLatestRateResponse renders the current rate.
func ToLatestRateResponse(rate decimal.Decimal) LatestRateResponse {
	return LatestRateResponse{
		Rate:    rate,
		Display: "1 ZC = " + currency.FormatCurrency(rate, domain.UnitPKR),
	}
}
