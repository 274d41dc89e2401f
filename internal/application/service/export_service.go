package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/plantpass/pos-api/internal/domain/entity"
	"github.com/plantpass/pos-api/internal/domain/gateway"
)

// ExportService renders the full transaction log as an .xlsx workbook for
// end-of-fair bookkeeping: a Transactions sheet with one row per order and
// a Line Items sheet with one row per purchased line.
type ExportService struct {
	gateway gateway.TransactionGateway
}

func NewExportService(gw gateway.TransactionGateway) *ExportService {
	return &ExportService{gateway: gw}
}

// TransactionsWorkbook fetches the export data and returns the workbook
// bytes plus a dated filename.
func (s *ExportService) TransactionsWorkbook(ctx context.Context) ([]byte, string, error) {
	txs, err := s.gateway.ExportData(ctx)
	if err != nil {
		return nil, "", err
	}

	data, err := buildWorkbook(txs)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("transactions-%s.xlsx", time.Now().Format("2006-01-02"))
	return data, filename, nil
}

func buildWorkbook(txs []entity.Transaction) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const txSheet = "Transactions"
	const itemSheet = "Line Items"

	// The default sheet is renamed rather than deleted so the workbook
	// always has at least one sheet.
	if err := f.SetSheetName(f.GetSheetName(0), txSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(itemSheet); err != nil {
		return nil, err
	}

	txHeader := []any{"Order ID", "Time", "Discounts", "Club Voucher", "Email", "Payment Method", "Paid", "Subtotal", "Discount", "Total"}
	if err := f.SetSheetRow(txSheet, "A1", &txHeader); err != nil {
		return nil, err
	}
	itemHeader := []any{"Order ID", "SKU", "Item", "Quantity", "Price Ea", "Line Total"}
	if err := f.SetSheetRow(itemSheet, "A1", &itemHeader); err != nil {
		return nil, err
	}

	itemRow := 2
	for i, tx := range txs {
		row := []any{
			tx.PurchaseID,
			time.Unix(tx.Timestamp, 0).Format("2006-01-02 15:04:05"),
			appliedDiscountSummary(tx.Discounts),
			tx.ClubVoucher,
			tx.Email,
			tx.Payment.Method,
			tx.Payment.Paid,
			tx.Receipt.Subtotal,
			tx.Receipt.Discount,
			tx.Receipt.Total,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(txSheet, cell, &row); err != nil {
			return nil, err
		}

		for _, item := range tx.Items {
			line := []any{
				tx.PurchaseID,
				item.SKU,
				item.Name,
				item.Quantity,
				item.UnitPrice,
				float64(item.Quantity) * item.UnitPrice,
			}
			cell := fmt.Sprintf("A%d", itemRow)
			if err := f.SetSheetRow(itemSheet, cell, &line); err != nil {
				return nil, err
			}
			itemRow++
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func appliedDiscountSummary(discounts []entity.AppliedDiscount) string {
	var buf bytes.Buffer
	for _, d := range discounts {
		if d.AmountOff <= 0 {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString("; ")
		}
		fmt.Fprintf(&buf, "%s (-%.2f)", d.Name, d.AmountOff)
	}
	return buf.String()
}
