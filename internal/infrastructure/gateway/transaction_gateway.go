package gateway

import (
	"context"
	"fmt"

	"github.com/plantpass/pos-api/internal/domain/entity"
	domaingw "github.com/plantpass/pos-api/internal/domain/gateway"
)

// TransactionGateway talks to the backend's transaction endpoints.
type TransactionGateway struct {
	client *Client
}

// NewTransactionGateway creates a transaction gateway over client.
func NewTransactionGateway(client *Client) *TransactionGateway {
	return &TransactionGateway{client: client}
}

var _ domaingw.TransactionGateway = (*TransactionGateway)(nil)

// Create records a new transaction; the backend assigns the purchase id
// and computes the authoritative receipt.
func (g *TransactionGateway) Create(ctx context.Context, input *domaingw.CreateTransactionInput) (*entity.Transaction, error) {
	var tx entity.Transaction
	if err := g.client.post(ctx, "/transactions", input, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// Read fetches a stored transaction by purchase id.
func (g *TransactionGateway) Read(ctx context.Context, id string) (*entity.Transaction, error) {
	var tx entity.Transaction
	if err := g.client.get(ctx, "/transactions/"+id, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// Update partially updates a transaction (items/discounts/voucher, or a
// payment block to finalize it) and returns the recomputed record.
func (g *TransactionGateway) Update(ctx context.Context, id string, input *domaingw.UpdateTransactionInput) (*entity.Transaction, error) {
	var tx entity.Transaction
	if err := g.client.put(ctx, "/transactions/"+id, input, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// Delete removes a transaction. The backend answers 204 on success.
func (g *TransactionGateway) Delete(ctx context.Context, id string) error {
	return g.client.delete(ctx, "/transactions/"+id)
}

// RecentUnpaid lists the latest transactions still awaiting payment.
func (g *TransactionGateway) RecentUnpaid(ctx context.Context, limit int) ([]entity.Transaction, error) {
	var out struct {
		Transactions []entity.Transaction `json:"transactions"`
	}
	path := fmt.Sprintf("/transactions/recent-unpaid?limit=%d", limit)
	if err := g.client.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out.Transactions, nil
}

// SalesAnalytics returns the backend-computed analytics document as-is.
func (g *TransactionGateway) SalesAnalytics(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := g.client.get(ctx, "/transactions/sales-analytics", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ExportData fetches the full transaction dump used for exports.
func (g *TransactionGateway) ExportData(ctx context.Context) ([]entity.Transaction, error) {
	var out struct {
		ExportData []entity.Transaction `json:"export_data"`
	}
	if err := g.client.get(ctx, "/transactions/export-data", &out); err != nil {
		return nil, err
	}
	return out.ExportData, nil
}
