// Package currency holds the pure PKR/ZC conversion and Z-Credit formatting helpers.
// Nothing in here fails: bad input degrades to zero values instead of errors.
package currency

import (
	"github.com/SscSPs/zcred_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Minimum-amount policy.
const (
	MinDepositPKR   = 120 // PKR
	MinWithdrawalZC = 150 // ZC
)

var (
	minDeposit    = decimal.NewFromInt(MinDepositPKR)
	minWithdrawal = decimal.NewFromInt(MinWithdrawalZC)
)

// ConvertPkrToZc converts a PKR amount to Z-Credits at the given rate (1 ZC = rate PKR).
// A zero rate yields zero rather than dividing by zero.
func ConvertPkrToZc(pkrAmount, rate decimal.Decimal) decimal.Decimal {
	if rate.IsZero() {
		return decimal.Zero
	}
	return pkrAmount.Div(rate)
}

// ConvertZcToPkr converts a Z-Credit amount to PKR at the given rate.
func ConvertZcToPkr(zcAmount, rate decimal.Decimal) decimal.Decimal {
	return zcAmount.Mul(rate)
}

// FormatCurrency renders amount with two fractional digits and the unit marker:
// "PKR 5.00" for PKR, "5.00 ZC" for anything else.
func FormatCurrency(amount decimal.Decimal, unit domain.Unit) string {
	fixed := amount.StringFixed(2)
	if unit == domain.UnitPKR {
		return "PKR " + fixed
	}
	return fixed + " ZC"
}

// ValidateDepositAmount reports whether a PKR deposit meets the minimum.
func ValidateDepositAmount(pkrAmount decimal.Decimal) bool {
	return pkrAmount.GreaterThanOrEqual(minDeposit)
}

// ValidateWithdrawalAmount reports whether a ZC withdrawal meets the minimum.
func ValidateWithdrawalAmount(zcAmount decimal.Decimal) bool {
	return zcAmount.GreaterThanOrEqual(minWithdrawal)
}
