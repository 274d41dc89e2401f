package entity

// Receipt holds the three checkout totals. The backend returns the same
// shape, which supersedes any locally computed preview.
type Receipt struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// TransactionItem is one purchased line on a stored transaction.
type TransactionItem struct {
	SKU       string  `json:"SKU"`
	Name      string  `json:"item"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"price_ea"`
}

// Payment records how (and whether) a transaction was paid.
type Payment struct {
	Method string `json:"method"`
	Paid   bool   `json:"paid"`
}

// Transaction is a stored order as returned by the backend.
type Transaction struct {
	PurchaseID  string            `json:"purchase_id"`
	Timestamp   int64             `json:"timestamp"`
	Items       []TransactionItem `json:"items"`
	Discounts   []AppliedDiscount `json:"discounts"`
	ClubVoucher float64           `json:"club_voucher"`
	Email       string            `json:"email,omitempty"`
	Payment     Payment           `json:"payment"`
	Receipt     Receipt           `json:"receipt"`
}

// Completed reports whether the transaction has been paid out.
func (t *Transaction) Completed() bool {
	return t.Payment.Paid && t.Payment.Method != ""
}
