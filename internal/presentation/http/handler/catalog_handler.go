package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/plantpass/pos-api/internal/application/service"
	"github.com/plantpass/pos-api/internal/presentation/http/dto/request"
	"github.com/plantpass/pos-api/internal/presentation/http/dto/response"
)

// CatalogHandler handles the product, discount and payment-method lists.
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListProducts returns the product catalog
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.catalogService.Products(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Products retrieved", products)
}

// ReplaceProducts replaces the product catalog wholesale
func (h *CatalogHandler) ReplaceProducts(c *gin.Context) {
	var req request.ReplaceProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.catalogService.ReplaceProducts(c.Request.Context(), req.Products); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Products replaced", nil)
}

// ListDiscounts returns the discount list
func (h *CatalogHandler) ListDiscounts(c *gin.Context) {
	discounts, err := h.catalogService.Discounts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Discounts retrieved", discounts)
}

// ReplaceDiscounts replaces the discount list wholesale
func (h *CatalogHandler) ReplaceDiscounts(c *gin.Context) {
	var req request.ReplaceDiscountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.catalogService.ReplaceDiscounts(c.Request.Context(), req.Discounts); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Discounts replaced", nil)
}

// ListPaymentMethods returns the payment-method list
func (h *CatalogHandler) ListPaymentMethods(c *gin.Context) {
	methods, err := h.catalogService.PaymentMethods(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payment methods retrieved", methods)
}

// ReplacePaymentMethods replaces the payment-method list wholesale
func (h *CatalogHandler) ReplacePaymentMethods(c *gin.Context) {
	var req request.ReplacePaymentMethodsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.catalogService.ReplacePaymentMethods(c.Request.Context(), req.PaymentMethods); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payment methods replaced", nil)
}
