package service

import (
	"context"

	"github.com/plantpass/pos-api/internal/domain/entity"
	"github.com/plantpass/pos-api/internal/domain/gateway"
)

const maxRecentUnpaid = 50

// TrackingService serves the order-tracking views: recent unpaid orders
// awaiting pickup and the running sales analytics.
type TrackingService struct {
	gateway      gateway.TransactionGateway
	defaultLimit int
}

func NewTrackingService(gw gateway.TransactionGateway, defaultLimit int) *TrackingService {
	return &TrackingService{gateway: gw, defaultLimit: defaultLimit}
}

// RecentUnpaid lists the most recent submitted-but-unpaid transactions.
// A non-positive limit falls back to the configured default; the cap keeps
// a typo'd query from dragging the whole day across the wire.
func (s *TrackingService) RecentUnpaid(ctx context.Context, limit int) ([]entity.Transaction, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > maxRecentUnpaid {
		limit = maxRecentUnpaid
	}
	return s.gateway.RecentUnpaid(ctx, limit)
}

// SalesAnalytics passes the backend's analytics summary through unchanged.
func (s *TrackingService) SalesAnalytics(ctx context.Context) (map[string]any, error) {
	return s.gateway.SalesAnalytics(ctx)
}
