package entity

import (
	"time"

	"github.com/plantpass/pos-api/internal/domain/enum"
)

// OrderDraft is the session-scoped order being entered or edited. It holds
// immutable product/discount snapshots taken at draft start, the staff's
// in-progress edits, and two receipts: the locally computed Preview and the
// backend's Authoritative value, which wins whenever present.
type OrderDraft struct {
	ID     string           `json:"id"`
	Status enum.DraftStatus `json:"status"`

	Products  []Product  `json:"products"`
	Discounts []Discount `json:"discounts"`

	Quantities map[string]int  `json:"quantities"`
	Selected   map[string]bool `json:"selected_discounts"`
	Voucher    int             `json:"voucher"`
	Email      string          `json:"email,omitempty"`

	TransactionID string `json:"transaction_id,omitempty"`
	PaymentMethod string `json:"payment_method,omitempty"`

	Preview       Receipt  `json:"preview_receipt"`
	Authoritative *Receipt `json:"authoritative_receipt,omitempty"`

	// Revision fences gateway responses: a response computed against an
	// older revision (or a reset draft) is dropped instead of applied.
	Revision  int64     `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Product returns the snapshot entry for sku, if present.
func (d *OrderDraft) Product(sku string) (Product, bool) {
	for _, p := range d.Products {
		if p.SKU == sku {
			return p, true
		}
	}
	return Product{}, false
}

// Discount returns the snapshot entry for name, if present.
func (d *OrderDraft) Discount(name string) (Discount, bool) {
	for _, dc := range d.Discounts {
		if dc.Name == name {
			return dc, true
		}
	}
	return Discount{}, false
}

// SelectedNames returns the selected discount names in snapshot order.
func (d *OrderDraft) SelectedNames() []string {
	names := make([]string, 0, len(d.Selected))
	for _, dc := range d.Discounts {
		if d.Selected[dc.Name] {
			names = append(names, dc.Name)
		}
	}
	return names
}

// HasItems reports whether at least one line has a positive quantity.
func (d *OrderDraft) HasItems() bool {
	for _, q := range d.Quantities {
		if q > 0 {
			return true
		}
	}
	return false
}

// DisplayReceipt returns the receipt the UI should show: the backend's
// authoritative value when one exists, the local preview otherwise.
func (d *OrderDraft) DisplayReceipt() Receipt {
	if d.Authoritative != nil {
		return *d.Authoritative
	}
	return d.Preview
}

// Clone returns a deep copy. Services mutate the copy and store it back
// only on success, so a failed transition leaves the draft untouched.
func (d *OrderDraft) Clone() *OrderDraft {
	cp := *d

	cp.Products = append([]Product(nil), d.Products...)
	cp.Discounts = append([]Discount(nil), d.Discounts...)

	cp.Quantities = make(map[string]int, len(d.Quantities))
	for sku, q := range d.Quantities {
		cp.Quantities[sku] = q
	}
	cp.Selected = make(map[string]bool, len(d.Selected))
	for name, sel := range d.Selected {
		cp.Selected[name] = sel
	}

	if d.Authoritative != nil {
		r := *d.Authoritative
		cp.Authoritative = &r
	}
	return &cp
}
