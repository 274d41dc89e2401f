package service

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/plantpass/pos-api/internal/domain/entity"
	"github.com/plantpass/pos-api/internal/domain/enum"
)

func TestBuildWorkbookSheets(t *testing.T) {
	txs := []entity.Transaction{
		{
			PurchaseID: "AAA-BBB",
			Timestamp:  1735689600,
			Items: []entity.TransactionItem{
				{SKU: "FERN", Name: "Boston Fern", Quantity: 2, UnitPrice: 10},
				{SKU: "ROSE", Name: "Rose Bush", Quantity: 1, UnitPrice: 12.50},
			},
			Discounts: []entity.AppliedDiscount{
				{Name: "Member", Type: enum.DiscountTypePercent, Value: 10, AmountOff: 3.25},
				{Name: "Coupon", Type: enum.DiscountTypeDollar, Value: 5, AmountOff: 0},
			},
			Payment: entity.Payment{Method: "cash", Paid: true},
			Receipt: entity.Receipt{Subtotal: 32.50, Discount: 3.25, Total: 29},
		},
		{
			PurchaseID: "CCC-DDD",
			Items: []entity.TransactionItem{
				{SKU: "CACTUS", Name: "Cactus", Quantity: 3, UnitPrice: 8},
			},
			Receipt: entity.Receipt{Subtotal: 24, Total: 24},
		},
	}

	data, err := buildWorkbook(txs)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Transactions")
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + 2 orders
	assert.Equal(t, "AAA-BBB", rows[1][0])
	assert.Equal(t, "Member (-3.25)", rows[1][2]) // zero amount_off omitted
	assert.Equal(t, "29", rows[1][9])

	items, err := f.GetRows("Line Items")
	require.NoError(t, err)
	require.Len(t, items, 4) // header + 3 lines
	assert.Equal(t, []string{"AAA-BBB", "FERN", "Boston Fern", "2", "10", "20"}, items[1])
	assert.Equal(t, "CCC-DDD", items[3][0])
}

func TestBuildWorkbookEmptyExport(t *testing.T) {
	data, err := buildWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Transactions")
	require.NoError(t, err)
	assert.Len(t, rows, 1) // header only
}
