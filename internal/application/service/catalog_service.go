package service

import (
	"context"
	"fmt"

	"github.com/plantpass/pos-api/internal/domain/entity"
	"github.com/plantpass/pos-api/internal/domain/enum"
	"github.com/plantpass/pos-api/internal/domain/gateway"
	"github.com/plantpass/pos-api/pkg/apperror"
	"github.com/plantpass/pos-api/pkg/format"
)

// CatalogService fronts the backend's bulk product, discount and
// payment-method lists, validating replacements before they are sent.
type CatalogService struct {
	gateway gateway.CatalogGateway
}

func NewCatalogService(gw gateway.CatalogGateway) *CatalogService {
	return &CatalogService{gateway: gw}
}

func (s *CatalogService) Products(ctx context.Context) ([]entity.Product, error) {
	return s.gateway.Products(ctx)
}

// ReplaceProducts validates the full list (SKUs present, uppercase
// alphanumeric, unique) and replaces the backend catalog wholesale.
func (s *CatalogService) ReplaceProducts(ctx context.Context, products []entity.Product) error {
	skus := make([]string, len(products))
	for i, p := range products {
		skus[i] = p.SKU
	}
	if msgs := format.CheckSKUs(skus); len(msgs) > 0 {
		errs := make([]apperror.FieldError, len(msgs))
		for i, msg := range msgs {
			errs[i] = apperror.FieldError{Field: "SKU", Message: msg}
		}
		return apperror.NewValidationError(errs)
	}

	var errs []apperror.FieldError
	for i, p := range products {
		if p.Name == "" {
			errs = append(errs, apperror.FieldError{
				Field:   fmt.Sprintf("products[%d].item", i),
				Message: "item name is required",
			})
		}
		if p.UnitPrice < 0 {
			errs = append(errs, apperror.FieldError{
				Field:   fmt.Sprintf("products[%d].price_ea", i),
				Message: "price must not be negative",
			})
		}
	}
	if len(errs) > 0 {
		return apperror.NewValidationError(errs)
	}

	return s.gateway.ReplaceProducts(ctx, products)
}

func (s *CatalogService) Discounts(ctx context.Context) ([]entity.Discount, error) {
	return s.gateway.Discounts(ctx)
}

// ReplaceDiscounts validates names, types and value ranges (percent in
// [0,100], dollar non-negative) and replaces the list wholesale.
func (s *CatalogService) ReplaceDiscounts(ctx context.Context, discounts []entity.Discount) error {
	var errs []apperror.FieldError
	seen := make(map[string]bool, len(discounts))
	for i, d := range discounts {
		field := fmt.Sprintf("discounts[%d]", i)
		switch {
		case d.Name == "":
			errs = append(errs, apperror.FieldError{Field: field + ".name", Message: "name is required"})
		case seen[d.Name]:
			errs = append(errs, apperror.FieldError{Field: field + ".name", Message: "duplicate discount name: " + d.Name})
		default:
			seen[d.Name] = true
		}
		if !d.Type.Valid() {
			errs = append(errs, apperror.FieldError{Field: field + ".type", Message: "type must be percent or dollar"})
		}
		if d.Value < 0 {
			errs = append(errs, apperror.FieldError{Field: field + ".value", Message: "value must not be negative"})
		}
		if d.Type == enum.DiscountTypePercent && d.Value > 100 {
			errs = append(errs, apperror.FieldError{Field: field + ".value", Message: "percent value must not exceed 100"})
		}
	}
	if len(errs) > 0 {
		return apperror.NewValidationError(errs)
	}

	return s.gateway.ReplaceDiscounts(ctx, discounts)
}

func (s *CatalogService) PaymentMethods(ctx context.Context) ([]entity.PaymentMethod, error) {
	return s.gateway.PaymentMethods(ctx)
}

func (s *CatalogService) ReplacePaymentMethods(ctx context.Context, methods []entity.PaymentMethod) error {
	var errs []apperror.FieldError
	seen := make(map[string]bool, len(methods))
	for i, m := range methods {
		field := fmt.Sprintf("payment_methods[%d].name", i)
		switch {
		case m.Name == "":
			errs = append(errs, apperror.FieldError{Field: field, Message: "name is required"})
		case seen[m.Name]:
			errs = append(errs, apperror.FieldError{Field: field, Message: "duplicate payment method: " + m.Name})
		default:
			seen[m.Name] = true
		}
	}
	if len(errs) > 0 {
		return apperror.NewValidationError(errs)
	}

	return s.gateway.ReplacePaymentMethods(ctx, methods)
}
