package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/plantpass/pos-api/internal/application/service"
	"github.com/plantpass/pos-api/internal/presentation/http/dto/request"
	"github.com/plantpass/pos-api/internal/presentation/http/dto/response"
)

// DraftHandler handles the order entry and order lookup endpoints.
type DraftHandler struct {
	draftService *service.DraftService
}

// NewDraftHandler creates a new draft handler
func NewDraftHandler(draftService *service.DraftService) *DraftHandler {
	return &DraftHandler{draftService: draftService}
}

// Create opens a new draft with fresh catalog snapshots
func (h *DraftHandler) Create(c *gin.Context) {
	draft, err := h.draftService.NewDraft(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Draft created", draft)
}

// Get returns the current draft state
func (h *DraftHandler) Get(c *gin.Context) {
	draft, err := h.draftService.Get(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Draft retrieved", draft)
}

// SetQuantity sets a line quantity from raw keypad input
func (h *DraftHandler) SetQuantity(c *gin.Context) {
	var req request.QuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	draft, err := h.draftService.EditQuantity(c.Param("id"), c.Param("sku"), req.Value)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Quantity updated", draft)
}

// ToggleDiscount flips a discount selection on or off
func (h *DraftHandler) ToggleDiscount(c *gin.Context) {
	draft, err := h.draftService.ToggleDiscount(c.Param("id"), c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Discount toggled", draft)
}

// SetVoucher sets the club voucher amount
func (h *DraftHandler) SetVoucher(c *gin.Context) {
	var req request.VoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	draft, err := h.draftService.SetVoucher(c.Param("id"), req.Value)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Voucher updated", draft)
}

// SetEmail sets or clears the customer email
func (h *DraftHandler) SetEmail(c *gin.Context) {
	var req request.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	draft, err := h.draftService.SetEmail(c.Param("id"), req.Email)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Email updated", draft)
}

// Submit records the draft as a new transaction
func (h *DraftHandler) Submit(c *gin.Context) {
	draft, err := h.draftService.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order submitted", draft)
}

// Update resends the current lines for a submitted order
func (h *DraftHandler) Update(c *gin.Context) {
	draft, err := h.draftService.Update(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order updated", draft)
}

// Complete finalizes payment for a submitted order
func (h *DraftHandler) Complete(c *gin.Context) {
	var req request.CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Payment method is required")
		return
	}

	draft, err := h.draftService.Complete(c.Request.Context(), c.Param("id"), req.PaymentMethod)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order completed", draft)
}

// Lookup loads an existing order into the draft
func (h *DraftHandler) Lookup(c *gin.Context) {
	var req request.LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Order ID is required")
		return
	}

	draft, err := h.draftService.Lookup(c.Request.Context(), c.Param("id"), req.OrderID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order loaded", draft)
}

// DeleteTransaction deletes the loaded order and resets the draft
func (h *DraftHandler) DeleteTransaction(c *gin.Context) {
	draft, err := h.draftService.DeleteTransaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order deleted", draft)
}

// Reset returns the draft to a fresh entry state
func (h *DraftHandler) Reset(c *gin.Context) {
	draft, err := h.draftService.Reset(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Draft reset", draft)
}

// Discard drops the draft session entirely
func (h *DraftHandler) Discard(c *gin.Context) {
	h.draftService.Discard(c.Param("id"))
	response.NoContent(c)
}
