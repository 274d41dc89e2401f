// Package gateway declares the contract of the remote backend that owns
// all authoritative data. This service only calls it; it never implements
// persistence or receipt authority itself.
package gateway

import (
	"context"

	"github.com/plantpass/pos-api/internal/domain/entity"
)

// CreateTransactionInput is the POST /transactions payload.
type CreateTransactionInput struct {
	Timestamp int64                     `json:"timestamp"`
	Items     []entity.TransactionItem  `json:"items"`
	Discounts []entity.SelectedDiscount `json:"discounts"`
	Voucher   float64                   `json:"voucher"`
	Email     string                    `json:"email,omitempty"`
}

// UpdateTransactionInput is the PUT /transactions/{id} payload. All fields
// are optional; payment-only updates finalize the order.
type UpdateTransactionInput struct {
	Items     []entity.TransactionItem  `json:"items,omitempty"`
	Discounts []entity.SelectedDiscount `json:"discounts,omitempty"`
	Voucher   *float64                  `json:"voucher,omitempty"`
	Payment   *entity.Payment           `json:"payment,omitempty"`
}

// LoginResult is the POST /admin/login response.
type LoginResult struct {
	Token                  string `json:"token"`
	RequiresPasswordChange bool   `json:"requires_password_change"`
}

// TransactionGateway covers the transaction lifecycle endpoints.
type TransactionGateway interface {
	Create(ctx context.Context, input *CreateTransactionInput) (*entity.Transaction, error)
	Read(ctx context.Context, id string) (*entity.Transaction, error)
	Update(ctx context.Context, id string, input *UpdateTransactionInput) (*entity.Transaction, error)
	Delete(ctx context.Context, id string) error
	RecentUnpaid(ctx context.Context, limit int) ([]entity.Transaction, error)
	SalesAnalytics(ctx context.Context) (map[string]any, error)
	ExportData(ctx context.Context) ([]entity.Transaction, error)
}

// CatalogGateway covers the bulk product/discount/payment-method lists.
type CatalogGateway interface {
	Products(ctx context.Context) ([]entity.Product, error)
	ReplaceProducts(ctx context.Context, products []entity.Product) error
	Discounts(ctx context.Context) ([]entity.Discount, error)
	ReplaceDiscounts(ctx context.Context, discounts []entity.Discount) error
	PaymentMethods(ctx context.Context) ([]entity.PaymentMethod, error)
	ReplacePaymentMethods(ctx context.Context, methods []entity.PaymentMethod) error
}

// AdminGateway covers authentication, feature toggles and resource locks.
type AdminGateway interface {
	Login(ctx context.Context, password string) (*LoginResult, error)
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error
	FeatureToggles(ctx context.Context) (*entity.FeatureToggles, error)
	SetFeatureToggles(ctx context.Context, toggles *entity.FeatureToggles) error
	LockState(ctx context.Context, resource string) (bool, error)
	SetLockState(ctx context.Context, resource string, locked bool) error
}
