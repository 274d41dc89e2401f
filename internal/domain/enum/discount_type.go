package enum

// DiscountType distinguishes percent-of-subtotal from flat dollar discounts.
// Values match the backend wire format.
type DiscountType string

const (
	DiscountTypePercent DiscountType = "percent"
	DiscountTypeDollar  DiscountType = "dollar"
)

func (t DiscountType) Valid() bool {
	return t == DiscountTypePercent || t == DiscountTypeDollar
}
