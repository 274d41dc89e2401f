package request

// QuantityRequest carries the raw keypad input for one line item. The
// value is normalized server-side, so anything binds.
type QuantityRequest struct {
	Value string `json:"value"`
}

// VoucherRequest carries the raw club voucher input.
type VoucherRequest struct {
	Value string `json:"value"`
}

// EmailRequest sets or clears the customer email on a draft.
type EmailRequest struct {
	Email string `json:"email"`
}

// CompleteRequest finalizes payment for a submitted order.
type CompleteRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

// LookupRequest loads an existing order into the draft.
type LookupRequest struct {
	OrderID string `json:"order_id" binding:"required"`
}
