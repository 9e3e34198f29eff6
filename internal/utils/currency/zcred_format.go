package currency

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// zcredInputPattern accepts what a user may have typed so far: digits, an
// optional point and at most two fractional digits ("12.", ".5", "3.25").
var zcredInputPattern = regexp.MustCompile(`^\d*\.?\d{0,2}$`)

const zcredDisplaySuffix = " Z-Credits"

// parseAmount parses numeric text. A dangling point on either side is
// tolerated ("12." and ".5"); a lone point or empty text is not a number.
func parseAmount(text string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(text)
	s = strings.TrimSuffix(s, ".")
	switch {
	case s == "", s == "-", s == "+":
		return decimal.Zero, false
	case strings.HasPrefix(s, "."):
		s = "0" + s
	case strings.HasPrefix(s, "-."), strings.HasPrefix(s, "+."):
		s = s[:1] + "0" + s[1:]
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseZcreds parses a Z-Credit amount, returning zero when text is not a number.
func ParseZcreds(text string) decimal.Decimal {
	d, _ := parseAmount(text)
	return d
}

// FormatZcreds renders an amount with exactly two fractional digits.
func FormatZcreds(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// FormatZcredsText parses text first and renders "0.00" when it is not a number.
func FormatZcredsText(text string) string {
	d, ok := parseAmount(text)
	if !ok {
		return "0.00"
	}
	return FormatZcreds(d)
}

// ValidateZcredInput gates live text input: the text must match the partial
// amount pattern and parse to a non-negative number.
func ValidateZcredInput(text string) bool {
	if !zcredInputPattern.MatchString(text) {
		return false
	}
	d, ok := parseAmount(text)
	return ok && !d.IsNegative()
}

// FormatZcredDisplay renders an amount as "12.50 Z-Credits".
func FormatZcredDisplay(amount decimal.Decimal) string {
	return FormatZcreds(amount) + zcredDisplaySuffix
}

// FormatZcredDisplayText is FormatZcredDisplay for raw text input.
func FormatZcredDisplayText(text string) string {
	return FormatZcredsText(text) + zcredDisplaySuffix
}

// FormatPkrFromZcreds renders the PKR value of a Z-Credit amount as "PKR 3500.00".
// Without an exchange rate the default 1:1 rate applies; only the first rate is used.
func FormatPkrFromZcreds(zcreds decimal.Decimal, exchangeRate ...decimal.Decimal) string {
	rate := decimal.NewFromInt(1)
	if len(exchangeRate) > 0 {
		rate = exchangeRate[0]
	}
	return "PKR " + zcreds.Mul(rate).StringFixed(2)
}

// FormatPkrFromZcredsText is FormatPkrFromZcreds for raw text input; text that
// is not a number counts as zero.
func FormatPkrFromZcredsText(text string, exchangeRate ...decimal.Decimal) string {
	return FormatPkrFromZcreds(ParseZcreds(text), exchangeRate...)
}
