package service

import (
	"context"
	"net/http"
	"time"

	"github.com/plantpass/pos-api/internal/domain/entity"
	"github.com/plantpass/pos-api/internal/domain/enum"
	"github.com/plantpass/pos-api/internal/domain/gateway"
	"github.com/plantpass/pos-api/internal/domain/pricing"
	"github.com/plantpass/pos-api/internal/infrastructure/session"
	"github.com/plantpass/pos-api/pkg/apperror"
	"github.com/plantpass/pos-api/pkg/format"
)

// DraftService is the order draft state machine shared by order entry and
// order lookup: draft -> submitted -> completed, with reset from anywhere.
//
// Local edits recompute the preview receipt; gateway writes store the
// backend's authoritative receipt. Any transition that calls the gateway
// either commits fully or leaves the stored draft untouched — a failed or
// stale response never half-applies.
type DraftService struct {
	store          *session.DraftStore
	txGateway      gateway.TransactionGateway
	catalogGateway gateway.CatalogGateway

	orderIDPrefixLen int
}

// NewDraftService creates a new draft service.
func NewDraftService(
	store *session.DraftStore,
	txGateway gateway.TransactionGateway,
	catalogGateway gateway.CatalogGateway,
	orderIDPrefixLen int,
) *DraftService {
	return &DraftService{
		store:            store,
		txGateway:        txGateway,
		catalogGateway:   catalogGateway,
		orderIDPrefixLen: orderIDPrefixLen,
	}
}

// NewDraft fetches fresh product and discount snapshots and opens an empty
// draft against them.
func (s *DraftService) NewDraft(ctx context.Context) (*entity.OrderDraft, error) {
	products, err := s.catalogGateway.Products(ctx)
	if err != nil {
		return nil, err
	}
	discounts, err := s.catalogGateway.Discounts(ctx)
	if err != nil {
		return nil, err
	}

	draft := &entity.OrderDraft{
		ID:         s.store.NewID(),
		Status:     enum.DraftStatusDraft,
		Products:   products,
		Discounts:  discounts,
		Quantities: make(map[string]int, len(products)),
		Selected:   make(map[string]bool),
	}
	for _, p := range products {
		draft.Quantities[p.SKU] = 0
	}
	s.recalcPreview(draft)

	s.store.Put(draft)
	return s.Get(draft.ID)
}

// Get returns the current draft.
func (s *DraftService) Get(id string) (*entity.OrderDraft, error) {
	draft, ok := s.store.Get(id)
	if !ok {
		return nil, apperror.NewNotFoundError("Draft")
	}
	return draft, nil
}

// EditQuantity sets a line quantity. Raw input is normalized (empty,
// non-numeric and negative all mean 0) and the preview recomputed. Rejected
// once the order is completed.
func (s *DraftService) EditQuantity(id, sku, raw string) (*entity.OrderDraft, error) {
	draft, err := s.editableClone(id)
	if err != nil {
		return nil, err
	}
	if _, ok := draft.Product(sku); !ok {
		return nil, apperror.NewNotFoundError("Product " + sku)
	}

	draft.Quantities[sku] = format.Quantity(raw)
	s.recalcPreview(draft)
	return s.commit(draft)
}

// ToggleDiscount flips a discount selection. A name missing from the
// snapshot is a no-op, not an error: the discount list may have changed
// under a stale client and the toggle simply has nothing to apply to.
func (s *DraftService) ToggleDiscount(id, name string) (*entity.OrderDraft, error) {
	draft, err := s.editableClone(id)
	if err != nil {
		return nil, err
	}
	if _, ok := draft.Discount(name); !ok {
		return draft, nil
	}

	if draft.Selected[name] {
		delete(draft.Selected, name)
	} else {
		draft.Selected[name] = true
	}
	s.recalcPreview(draft)
	return s.commit(draft)
}

// SetVoucher sets the flat voucher amount, clamped to a non-negative whole
// dollar value.
func (s *DraftService) SetVoucher(id, raw string) (*entity.OrderDraft, error) {
	draft, err := s.editableClone(id)
	if err != nil {
		return nil, err
	}

	draft.Voucher = format.Voucher(raw)
	s.recalcPreview(draft)
	return s.commit(draft)
}

// SetEmail records the optional customer email collected at checkout.
func (s *DraftService) SetEmail(id, email string) (*entity.OrderDraft, error) {
	draft, err := s.editableClone(id)
	if err != nil {
		return nil, err
	}
	if email != "" && !format.ValidEmail(email) {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "email", Message: "invalid email address"},
		})
	}

	draft.Email = email
	return s.commit(draft)
}

// Submit records the draft as a new transaction. Only valid from the draft
// state and only with at least one positive quantity; both checks run
// before any network call. On success the backend's purchase id and
// receipt are stored and the draft moves to submitted. On failure the
// draft is unchanged and submit may simply be invoked again.
func (s *DraftService) Submit(ctx context.Context, id string) (*entity.OrderDraft, error) {
	draft, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if draft.Status != enum.DraftStatusDraft {
		return nil, apperror.NewBadRequestError("Order has already been submitted")
	}
	if !draft.HasItems() {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "items", Message: "at least one item must have a quantity greater than 0"},
		})
	}

	tx, err := s.txGateway.Create(ctx, &gateway.CreateTransactionInput{
		Timestamp: time.Now().Unix(),
		Items:     buildItems(draft),
		Discounts: buildDiscounts(draft),
		Voucher:   float64(draft.Voucher),
		Email:     draft.Email,
	})
	if err != nil {
		return nil, err
	}

	draft.TransactionID = tx.PurchaseID
	draft.Status = enum.DraftStatusSubmitted
	receipt := tx.Receipt
	draft.Authoritative = &receipt
	return s.commit(draft)
}

// Update resends the full current line items, discount selections and
// voucher for an already-submitted order and stores the recomputed receipt.
func (s *DraftService) Update(ctx context.Context, id string) (*entity.OrderDraft, error) {
	draft, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if draft.Status != enum.DraftStatusSubmitted {
		return nil, apperror.NewBadRequestError("No submitted order to update")
	}

	voucher := float64(draft.Voucher)
	tx, err := s.txGateway.Update(ctx, draft.TransactionID, &gateway.UpdateTransactionInput{
		Items:     buildItems(draft),
		Discounts: buildDiscounts(draft),
		Voucher:   &voucher,
	})
	if err != nil {
		return nil, err
	}

	receipt := tx.Receipt
	draft.Authoritative = &receipt
	return s.commit(draft)
}

// Complete finalizes payment for a submitted order. The method must be one
// of the configured payment methods; the check runs before the
// finalization call. On success the draft becomes read-only.
func (s *DraftService) Complete(ctx context.Context, id, method string) (*entity.OrderDraft, error) {
	draft, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if draft.Status != enum.DraftStatusSubmitted {
		return nil, apperror.NewBadRequestError("No submitted order to complete")
	}
	if method == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "payment_method", Message: "a payment method is required"},
		})
	}

	methods, err := s.catalogGateway.PaymentMethods(ctx)
	if err != nil {
		return nil, err
	}
	if !knownPaymentMethod(methods, method) {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "payment_method", Message: "unknown payment method: " + method},
		})
	}

	tx, err := s.txGateway.Update(ctx, draft.TransactionID, &gateway.UpdateTransactionInput{
		Payment: &entity.Payment{Method: method, Paid: true},
	})
	if err != nil {
		return nil, err
	}

	draft.Status = enum.DraftStatusCompleted
	draft.PaymentMethod = method
	receipt := tx.Receipt
	draft.Authoritative = &receipt
	return s.commit(draft)
}

// Lookup loads an existing transaction and replaces the draft wholesale:
// quantities from the stored items, discount selections reconstructed from
// nonzero amount_off, voucher, and status derived from the payment record.
// A failed lookup (including not-found) leaves the current draft untouched.
func (s *DraftService) Lookup(ctx context.Context, id, rawOrderID string) (*entity.OrderDraft, error) {
	draft, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	orderID := format.OrderID(rawOrderID, s.orderIDPrefixLen)
	if orderID == "" {
		return nil, apperror.NewBadRequestError("Please enter an order ID")
	}

	tx, err := s.txGateway.Read(ctx, orderID)
	if err != nil {
		return nil, err
	}

	for sku := range draft.Quantities {
		draft.Quantities[sku] = 0
	}
	for _, item := range tx.Items {
		draft.Quantities[item.SKU] = item.Quantity
	}

	draft.Selected = make(map[string]bool)
	for _, d := range tx.Discounts {
		if d.AmountOff > 0 {
			draft.Selected[d.Name] = true
		}
	}

	draft.Voucher = int(tx.ClubVoucher)
	draft.Email = tx.Email
	draft.TransactionID = tx.PurchaseID
	if tx.Completed() {
		draft.Status = enum.DraftStatusCompleted
		draft.PaymentMethod = tx.Payment.Method
	} else {
		draft.Status = enum.DraftStatusSubmitted
		draft.PaymentMethod = ""
	}

	receipt := tx.Receipt
	draft.Authoritative = &receipt
	s.recalcPreviewKeepAuthoritative(draft)
	return s.commit(draft)
}

// DeleteTransaction deletes the loaded transaction on the backend and
// resets the draft. Completed orders cannot be deleted.
func (s *DraftService) DeleteTransaction(ctx context.Context, id string) (*entity.OrderDraft, error) {
	draft, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if draft.Status != enum.DraftStatusSubmitted {
		return nil, apperror.NewBadRequestError("No deletable order is loaded")
	}

	if err := s.txGateway.Delete(ctx, draft.TransactionID); err != nil {
		return nil, err
	}

	resetFields(draft)
	s.recalcPreview(draft)
	return s.commit(draft)
}

// Reset discards all fields and reloads the product and discount snapshots,
// returning the draft to a fresh entry state.
func (s *DraftService) Reset(ctx context.Context, id string) (*entity.OrderDraft, error) {
	draft, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	products, err := s.catalogGateway.Products(ctx)
	if err != nil {
		return nil, err
	}
	discounts, err := s.catalogGateway.Discounts(ctx)
	if err != nil {
		return nil, err
	}

	draft.Products = products
	draft.Discounts = discounts
	draft.Quantities = make(map[string]int, len(products))
	for _, p := range products {
		draft.Quantities[p.SKU] = 0
	}
	resetFields(draft)
	s.recalcPreview(draft)
	return s.commit(draft)
}

// Discard drops the draft from the session store entirely.
func (s *DraftService) Discard(id string) {
	s.store.Delete(id)
}

// editableClone loads the draft and enforces the completed-is-immutable
// rule shared by every field edit.
func (s *DraftService) editableClone(id string) (*entity.OrderDraft, error) {
	draft, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if !draft.Status.Editable() {
		return nil, apperror.ErrDraftCompleted
	}
	return draft, nil
}

// recalcPreview refreshes the local preview and drops the authoritative
// receipt: after a local edit the backend's last answer no longer matches
// what is on screen, so the preview is shown until the next round trip.
func (s *DraftService) recalcPreview(d *entity.OrderDraft) {
	d.Authoritative = nil
	s.recalcPreviewKeepAuthoritative(d)
}

func (s *DraftService) recalcPreviewKeepAuthoritative(d *entity.OrderDraft) {
	d.Preview = pricing.Compute(d.Products, d.Quantities, d.Discounts, d.Selected, float64(d.Voucher))
}

// commit writes the mutated clone back; a stale revision means the draft
// was reset or re-edited while a request was in flight, and the late result
// is dropped rather than applied (last write wins on the backend).
func (s *DraftService) commit(draft *entity.OrderDraft) (*entity.OrderDraft, error) {
	if !s.store.Commit(draft, draft.Revision) {
		return nil, apperror.NewAppError(http.StatusConflict,
			"Draft changed while the request was in flight; result discarded")
	}
	return s.Get(draft.ID)
}

func resetFields(d *entity.OrderDraft) {
	d.Status = enum.DraftStatusDraft
	d.Selected = make(map[string]bool)
	for sku := range d.Quantities {
		d.Quantities[sku] = 0
	}
	d.Voucher = 0
	d.Email = ""
	d.TransactionID = ""
	d.PaymentMethod = ""
	d.Authoritative = nil
}

func buildItems(d *entity.OrderDraft) []entity.TransactionItem {
	items := make([]entity.TransactionItem, 0, len(d.Products))
	for _, p := range d.Products {
		q := d.Quantities[p.SKU]
		if q <= 0 {
			continue
		}
		items = append(items, entity.TransactionItem{
			SKU:       p.SKU,
			Name:      p.Name,
			Quantity:  q,
			UnitPrice: p.UnitPrice,
		})
	}
	return items
}

func buildDiscounts(d *entity.OrderDraft) []entity.SelectedDiscount {
	discounts := make([]entity.SelectedDiscount, 0, len(d.Discounts))
	for _, dc := range d.Discounts {
		discounts = append(discounts, entity.SelectedDiscount{
			Name:     dc.Name,
			Type:     dc.Type,
			Value:    dc.Value,
			Selected: d.Selected[dc.Name],
		})
	}
	return discounts
}

func knownPaymentMethod(methods []entity.PaymentMethod, name string) bool {
	for _, m := range methods {
		if m.Name == name {
			return true
		}
	}
	return false
}
