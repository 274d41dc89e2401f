package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plantpass/pos-api/internal/domain/entity"
	"github.com/plantpass/pos-api/internal/domain/enum"
	"github.com/plantpass/pos-api/pkg/apperror"
)

func TestReplaceProductsRejectsBadSKUs(t *testing.T) {
	catalog := testCatalog()
	svc := NewCatalogService(catalog)

	err := svc.ReplaceProducts(context.Background(), []entity.Product{
		{SKU: "fern", Name: "Boston Fern", UnitPrice: 10},
		{SKU: "", Name: "Rose Bush", UnitPrice: 12.50},
		{SKU: "CACTUS", Name: "Cactus", UnitPrice: 8},
		{SKU: "CACTUS", Name: "Other Cactus", UnitPrice: 9},
	})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
	assert.Len(t, appErr.Errors, 3)

	// The backend list is untouched on validation failure.
	assert.Len(t, catalog.products, 2)
}

func TestReplaceProductsRejectsNegativePrice(t *testing.T) {
	svc := NewCatalogService(testCatalog())

	err := svc.ReplaceProducts(context.Background(), []entity.Product{
		{SKU: "FERN", Name: "Boston Fern", UnitPrice: -1},
	})
	require.Error(t, err)
	assert.Equal(t, 422, apperror.GetAppError(err).Code)
}

func TestReplaceProductsValid(t *testing.T) {
	catalog := testCatalog()
	svc := NewCatalogService(catalog)

	err := svc.ReplaceProducts(context.Background(), []entity.Product{
		{SKU: "FERN", Name: "Boston Fern", UnitPrice: 10},
	})
	require.NoError(t, err)
	assert.Len(t, catalog.products, 1)
}

func TestReplaceDiscountsValidatesRanges(t *testing.T) {
	svc := NewCatalogService(testCatalog())

	err := svc.ReplaceDiscounts(context.Background(), []entity.Discount{
		{Name: "Member", Type: enum.DiscountTypePercent, Value: 150},
		{Name: "Member", Type: enum.DiscountTypeDollar, Value: -5},
		{Name: "Mystery", Type: "half-off", Value: 50},
	})
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 422, appErr.Code)
	// over-100 percent, duplicate name, negative value, bad type
	assert.Len(t, appErr.Errors, 4)
}

func TestReplacePaymentMethodsRejectsDuplicates(t *testing.T) {
	svc := NewCatalogService(testCatalog())

	err := svc.ReplacePaymentMethods(context.Background(), []entity.PaymentMethod{
		{Name: "cash"},
		{Name: "cash"},
		{Name: ""},
	})
	require.Error(t, err)
	assert.Len(t, apperror.GetAppError(err).Errors, 2)
}
