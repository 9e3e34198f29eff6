package domain

import "strings"

// Unit identifies one of the two currency units the platform deals in.
type Unit string

const (
	// UnitPKR is the Pakistani Rupee, the real-world currency Z-Credits are pegged to.
	UnitPKR Unit = "PKR"
	// UnitZC is the platform's virtual currency, Z-Credits.
	UnitZC Unit = "ZC"
)

// ParseUnit maps user input to a Unit. Anything that is not PKR is treated as ZC.
func ParseUnit(s string) Unit {
	if strings.EqualFold(strings.TrimSpace(s), string(UnitPKR)) {
		return UnitPKR
	}
	return UnitZC
}
