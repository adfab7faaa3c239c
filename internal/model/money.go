package model

import (
	"fmt"
	"math"
)

// Cents converts a major-unit amount (decimal dollars) to integer cents.
// This is the only place the float boundary is crossed; everything past the
// dispatcher works in cents.
func Cents(major float64) int64 {
	return int64(math.Round(major * 100))
}

// FormatCents renders integer cents as a currency string, e.g. -1234 ->
// "-$12.34".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
