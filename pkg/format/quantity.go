package format

import (
	"math"
	"strconv"
	"strings"
)

// Quantity coerces arbitrary input to a non-negative integer quantity.
// Empty, non-numeric and negative values are 0; fractions are floored.
// It never errors — order entry must not crash on a stray keystroke.
func Quantity(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if v < 0 {
		return 0
	}
	return int(math.Floor(v))
}

// Voucher coerces input to a non-negative whole-dollar voucher amount.
func Voucher(raw string) int {
	return Quantity(raw)
}
