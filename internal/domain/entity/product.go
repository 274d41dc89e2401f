package entity

// Product is a catalog entry as served by the backend. JSON tags follow the
// backend wire format ("SKU", "item", "price_ea"), which the front end also
// consumes unchanged.
type Product struct {
	SKU       string  `json:"SKU"`
	Name      string  `json:"item"`
	UnitPrice float64 `json:"price_ea"`
	SortOrder int     `json:"sort_order,omitempty"`
}

// PaymentMethod is one entry of the configured payment-method set.
type PaymentMethod struct {
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
}
