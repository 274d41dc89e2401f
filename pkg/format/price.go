package format

import (
	"math"
	"strconv"
	"strings"
)

// PriceInput cleans a price field while the user is typing: only digits and
// a single decimal point survive, with at most two fractional digits. The
// partially-typed value is preserved ("12." stays "12.") so the caret does
// not jump.
func PriceInput(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	parts := strings.Split(cleaned, ".")
	if len(parts) > 2 {
		cleaned = parts[0] + "." + strings.Join(parts[1:], "")
		parts = strings.SplitN(cleaned, ".", 2)
	}
	if len(parts) == 2 && len(parts[1]) > 2 {
		cleaned = parts[0] + "." + parts[1][:2]
	}

	if _, err := strconv.ParseFloat(cleaned, 64); err != nil {
		return ""
	}
	return cleaned
}

// PriceBlur finalizes a price field when focus leaves it: invalid or
// negative input becomes "0.00", anything else is fixed to two decimals.
func PriceBlur(raw string) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return "0.00"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Price coerces arbitrary input to a non-negative currency amount with two
// decimal places. Malformed input is 0; it never errors.
func Price(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if v < 0 {
		return 0
	}
	return math.Round(v*100) / 100
}
