// Package pricing computes checkout totals. It is pure: no I/O, no state,
// and malformed input degrades to zero instead of erroring. The backend
// recomputes the authoritative receipt on every write; these results are
// display previews only.
package pricing

import (
	"math"

	"github.com/plantpass/pos-api/internal/domain/entity"
	"github.com/plantpass/pos-api/internal/domain/enum"
)

// Compute derives a receipt from the draft inputs.
//
// Every selected discount is computed independently against the original
// subtotal — selecting two 10% discounts takes 20% off, not 19% — and the
// voucher comes off flat on top. The grand total is floored to whole
// dollars (a $19.99 basket owes $19) and never goes below zero.
func Compute(products []entity.Product, quantities map[string]int, discounts []entity.Discount, selected map[string]bool, voucher float64) entity.Receipt {
	subtotal := Subtotal(products, quantities)

	discountTotal := 0.0
	for _, d := range discounts {
		if selected[d.Name] {
			discountTotal += AmountOff(d, subtotal)
		}
	}
	if voucher > 0 {
		discountTotal += voucher
	}

	total := math.Floor(subtotal - discountTotal)
	if total < 0 {
		total = 0
	}

	return entity.Receipt{
		Subtotal: Round2(subtotal),
		Discount: Round2(discountTotal),
		Total:    total,
	}
}

// Subtotal sums quantity*unitPrice over the catalog at full float64
// precision; rounding happens once, at display time. Quantities for SKUs
// missing from the map count as zero, negatives are ignored.
func Subtotal(products []entity.Product, quantities map[string]int) float64 {
	sum := 0.0
	for _, p := range products {
		q := quantities[p.SKU]
		if q <= 0 {
			continue
		}
		sum += float64(q) * p.UnitPrice
	}
	return sum
}

// AmountOff computes a single discount's value against the subtotal.
func AmountOff(d entity.Discount, subtotal float64) float64 {
	switch d.Type {
	case enum.DiscountTypeDollar:
		return d.Value
	case enum.DiscountTypePercent:
		return subtotal * d.Value / 100
	default:
		return 0
	}
}

// AmountsOff returns the per-discount breakdown the receipt table shows:
// every snapshot discount with its amount (zero when unselected).
func AmountsOff(discounts []entity.Discount, selected map[string]bool, subtotal float64) []entity.AppliedDiscount {
	out := make([]entity.AppliedDiscount, 0, len(discounts))
	for _, d := range discounts {
		applied := entity.AppliedDiscount{
			Name:  d.Name,
			Type:  d.Type,
			Value: d.Value,
		}
		if selected[d.Name] {
			applied.AmountOff = Round2(AmountOff(d, subtotal))
		}
		out = append(out, applied)
	}
	return out
}

// LineSubtotal is the per-row figure next to each quantity field.
func LineSubtotal(quantity int, unitPrice float64) float64 {
	if quantity <= 0 {
		return 0
	}
	return Round2(float64(quantity) * unitPrice)
}

// Round2 rounds half-up to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
