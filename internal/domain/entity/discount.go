package entity

import "github.com/plantpass/pos-api/internal/domain/enum"

// Discount is a named discount definition from the backend snapshot.
// Percent values are whole percentages in [0,100]; dollar values are
// currency amounts.
type Discount struct {
	Name      string            `json:"name"`
	Type      enum.DiscountType `json:"type"`
	Value     float64           `json:"value"`
	SortOrder int               `json:"sort_order,omitempty"`
}

// AppliedDiscount is a discount as recorded on a stored transaction, with
// the amount actually taken off. amount_off > 0 is how a lookup
// reconstructs which discounts were selected.
type AppliedDiscount struct {
	Name      string            `json:"name"`
	Type      enum.DiscountType `json:"type"`
	Value     float64           `json:"value"`
	AmountOff float64           `json:"amount_off"`
}

// SelectedDiscount is the create/update payload shape: the full snapshot
// with per-row selection flags, so the backend recomputes amounts itself.
type SelectedDiscount struct {
	Name     string            `json:"name"`
	Type     enum.DiscountType `json:"type"`
	Value    float64           `json:"value"`
	Selected bool              `json:"selected"`
}
