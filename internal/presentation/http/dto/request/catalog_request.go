package request

import (
	"github.com/plantpass/pos-api/internal/domain/entity"
)

// ReplaceProductsRequest replaces the product catalog wholesale.
type ReplaceProductsRequest struct {
	Products []entity.Product `json:"products" binding:"required"`
}

// ReplaceDiscountsRequest replaces the discount list wholesale.
type ReplaceDiscountsRequest struct {
	Discounts []entity.Discount `json:"discounts" binding:"required"`
}

// ReplacePaymentMethodsRequest replaces the payment-method list wholesale.
type ReplacePaymentMethodsRequest struct {
	PaymentMethods []entity.PaymentMethod `json:"payment_methods" binding:"required"`
}
