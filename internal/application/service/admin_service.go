package service

import (
	"context"
	"sync"

	"github.com/plantpass/pos-api/internal/domain/entity"
	"github.com/plantpass/pos-api/internal/domain/gateway"
	"github.com/plantpass/pos-api/pkg/apperror"
)

// AdminService proxies authentication and settings to the backend. Feature
// toggles are fetched once and cached for the life of the process; writes
// and an explicit Refresh update the cache so every request does not pay a
// backend round trip for settings that change a few times per fair.
type AdminService struct {
	gateway gateway.AdminGateway

	mu      sync.RWMutex
	toggles *entity.FeatureToggles
}

func NewAdminService(gw gateway.AdminGateway) *AdminService {
	return &AdminService{gateway: gw}
}

// Login exchanges the shared admin password for a bearer token. The token
// is returned to the client, never stored here.
func (s *AdminService) Login(ctx context.Context, password string) (*gateway.LoginResult, error) {
	if password == "" {
		return nil, apperror.NewBadRequestError("Password is required")
	}
	return s.gateway.Login(ctx, password)
}

func (s *AdminService) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return apperror.NewBadRequestError("Both the current and new password are required")
	}
	if oldPassword == newPassword {
		return apperror.NewBadRequestError("New password must differ from the current one")
	}
	return s.gateway.ChangePassword(ctx, oldPassword, newPassword)
}

// FeatureToggles returns the cached toggles, loading them on first use.
func (s *AdminService) FeatureToggles(ctx context.Context) (*entity.FeatureToggles, error) {
	s.mu.RLock()
	cached := s.toggles
	s.mu.RUnlock()
	if cached != nil {
		t := *cached
		return &t, nil
	}
	return s.Refresh(ctx)
}

// Refresh re-reads the toggles from the backend and replaces the cache.
func (s *AdminService) Refresh(ctx context.Context) (*entity.FeatureToggles, error) {
	toggles, err := s.gateway.FeatureToggles(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.toggles = toggles
	s.mu.Unlock()

	t := *toggles
	return &t, nil
}

// SetFeatureToggles writes through to the backend and updates the cache
// only after the write succeeds.
func (s *AdminService) SetFeatureToggles(ctx context.Context, toggles *entity.FeatureToggles) error {
	if err := s.gateway.SetFeatureToggles(ctx, toggles); err != nil {
		return err
	}

	s.mu.Lock()
	t := *toggles
	s.toggles = &t
	s.mu.Unlock()
	return nil
}

func (s *AdminService) LockState(ctx context.Context, resource string) (bool, error) {
	if resource == "" {
		return false, apperror.NewBadRequestError("Resource name is required")
	}
	return s.gateway.LockState(ctx, resource)
}

func (s *AdminService) SetLockState(ctx context.Context, resource string, locked bool) error {
	if resource == "" {
		return apperror.NewBadRequestError("Resource name is required")
	}
	return s.gateway.SetLockState(ctx, resource, locked)
}
