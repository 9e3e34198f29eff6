package dto

import (
	"github.com/SscSPs/zcred_app/internal/core/domain"
	"github.com/SscSPs/zcred_app/internal/utils/currency"
	"github.com/shopspring/decimal"
)

// QuoteRequest carries an amount exactly as the user typed it.
type QuoteRequest struct {
	Amount string `json:"amount" binding:"required,zcred"`
}

// ConvertRequest is a quote in either direction; From names the unit Amount is in.
type ConvertRequest struct {
	Amount string `json:"amount" binding:"required,zcred"`
	From   string `json:"from"`
}

// QuoteResponse is a deposit or withdrawal quote.
type QuoteResponse struct {
	From             domain.Unit     `json:"from"`
	To               domain.Unit     `json:"to"`
	Amount           decimal.Decimal `json:"amount"`
	Converted        decimal.Decimal `json:"converted"`
	Rate             decimal.Decimal `json:"rate"`
	AmountDisplay    string          `json:"amountDisplay"`
	ConvertedDisplay string          `json:"convertedDisplay"`
	MinimumDisplay   string          `json:"minimumDisplay"`
	MeetsMinimum     bool            `json:"meetsMinimum"`
}

// ToQuoteResponse renders a quote with display strings in the right units.
func ToQuoteResponse(q *domain.Quote) QuoteResponse {
	return QuoteResponse{
		From:             q.From,
		To:               q.To(),
		Amount:           q.Amount,
		Converted:        q.Converted,
		Rate:             q.Rate,
		AmountDisplay:    currency.FormatCurrency(q.Amount, q.From),
		ConvertedDisplay: currency.FormatCurrency(q.Converted, q.To()),
		MinimumDisplay:   currency.FormatCurrency(q.Minimum, q.From),
		MeetsMinimum:     q.MeetsMinimum,
	}
}

// FormatZcredsRequest asks for every rendering of a Z-Credit amount.
// Rate is optional; the current rate is used when it is empty.
type FormatZcredsRequest struct {
	Amount string `json:"amount"`
	Rate   string `json:"rate"`
}

// FormatZcredsResponse holds the renderings of one amount.
type FormatZcredsResponse struct {
	Valid      bool            `json:"valid"`
	Parsed     decimal.Decimal `json:"parsed"`
	Formatted  string          `json:"formatted"`
	Display    string          `json:"display"`
	PKRDisplay string          `json:"pkrDisplay"`
}

// ToFormatZcredsResponse applies the Z-Credit formatters to raw text at the given rate.
func ToFormatZcredsResponse(amount string, rate decimal.Decimal) FormatZcredsResponse {
	return FormatZcredsResponse{
		Valid:      currency.ValidateZcredInput(amount),
		Parsed:     currency.ParseZcreds(amount),
		Formatted:  currency.FormatZcredsText(amount),
		Display:    currency.FormatZcredDisplayText(amount),
		PKRDisplay: currency.FormatPkrFromZcredsText(amount, rate),
	}
}
