package domain

import "github.com/shopspring/decimal"

// Quote is the outcome of converting a requested amount at the current rate.
// From is the unit the user typed the amount in.
type Quote struct {
	From         Unit
	Amount       decimal.Decimal
	Converted    decimal.Decimal
	Rate         decimal.Decimal
	Minimum      decimal.Decimal
	MeetsMinimum bool
}

// To is the unit the quote converts into.
func (q Quote) To() Unit {
	if q.From == UnitPKR {
		return UnitZC
	}
	return UnitPKR
}
