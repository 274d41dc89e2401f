package gateway

import (
	"context"

	"github.com/plantpass/pos-api/internal/domain/entity"
	domaingw "github.com/plantpass/pos-api/internal/domain/gateway"
)

// AdminGateway talks to the backend's auth, feature-toggle and lock
// endpoints. Credentials and signing secrets never live in this service.
type AdminGateway struct {
	client *Client
}

// NewAdminGateway creates an admin gateway over client.
func NewAdminGateway(client *Client) *AdminGateway {
	return &AdminGateway{client: client}
}

var _ domaingw.AdminGateway = (*AdminGateway)(nil)

// Login exchanges the admin password for a bearer token.
func (g *AdminGateway) Login(ctx context.Context, password string) (*domaingw.LoginResult, error) {
	body := map[string]string{"password": password}
	var result domaingw.LoginResult
	if err := g.client.post(ctx, "/admin/login", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ChangePassword rotates the admin password; requires a valid token in ctx.
func (g *AdminGateway) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	body := map[string]string{
		"old_password": oldPassword,
		"new_password": newPassword,
	}
	return g.client.post(ctx, "/admin/change-password", body, nil)
}

func (g *AdminGateway) FeatureToggles(ctx context.Context) (*entity.FeatureToggles, error) {
	var toggles entity.FeatureToggles
	if err := g.client.get(ctx, "/feature-toggles", &toggles); err != nil {
		return nil, err
	}
	return &toggles, nil
}

func (g *AdminGateway) SetFeatureToggles(ctx context.Context, toggles *entity.FeatureToggles) error {
	return g.client.put(ctx, "/feature-toggles", toggles, nil)
}

// LockState reads whether a shared resource (e.g. the PlantPass sheet) is
// locked for editing.
func (g *AdminGateway) LockState(ctx context.Context, resource string) (bool, error) {
	var out struct {
		IsLocked bool `json:"isLocked"`
	}
	if err := g.client.get(ctx, "/lock/"+resource, &out); err != nil {
		return false, err
	}
	return out.IsLocked, nil
}

func (g *AdminGateway) SetLockState(ctx context.Context, resource string, locked bool) error {
	body := map[string]bool{"isLocked": locked}
	return g.client.put(ctx, "/lock/"+resource, body, nil)
}
