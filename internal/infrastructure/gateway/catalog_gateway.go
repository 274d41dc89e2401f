package gateway

import (
	"context"

	"github.com/plantpass/pos-api/internal/domain/entity"
	domaingw "github.com/plantpass/pos-api/internal/domain/gateway"
)

// CatalogGateway talks to the backend's bulk list endpoints. All writes are
// whole-list replacements; the admin console edits a copy and PUTs it back.
type CatalogGateway struct {
	client *Client
}

// NewCatalogGateway creates a catalog gateway over client.
func NewCatalogGateway(client *Client) *CatalogGateway {
	return &CatalogGateway{client: client}
}

var _ domaingw.CatalogGateway = (*CatalogGateway)(nil)

func (g *CatalogGateway) Products(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	if err := g.client.get(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (g *CatalogGateway) ReplaceProducts(ctx context.Context, products []entity.Product) error {
	return g.client.put(ctx, "/products", products, nil)
}

func (g *CatalogGateway) Discounts(ctx context.Context) ([]entity.Discount, error) {
	var discounts []entity.Discount
	if err := g.client.get(ctx, "/discounts", &discounts); err != nil {
		return nil, err
	}
	return discounts, nil
}

func (g *CatalogGateway) ReplaceDiscounts(ctx context.Context, discounts []entity.Discount) error {
	return g.client.put(ctx, "/discounts", discounts, nil)
}

func (g *CatalogGateway) PaymentMethods(ctx context.Context) ([]entity.PaymentMethod, error) {
	var methods []entity.PaymentMethod
	if err := g.client.get(ctx, "/payment-methods", &methods); err != nil {
		return nil, err
	}
	return methods, nil
}

func (g *CatalogGateway) ReplacePaymentMethods(ctx context.Context, methods []entity.PaymentMethod) error {
	return g.client.put(ctx, "/payment-methods", methods, nil)
}
