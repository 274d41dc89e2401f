package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plantpass/pos-api/internal/domain/entity"
	"github.com/plantpass/pos-api/internal/domain/gateway"
)

type fakeAdminGateway struct {
	toggles     entity.FeatureToggles
	toggleReads int
	locks       map[string]bool
}

func (f *fakeAdminGateway) Login(ctx context.Context, password string) (*gateway.LoginResult, error) {
	return &gateway.LoginResult{Token: "tok-" + password}, nil
}
func (f *fakeAdminGateway) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	return nil
}
func (f *fakeAdminGateway) FeatureToggles(ctx context.Context) (*entity.FeatureToggles, error) {
	f.toggleReads++
	t := f.toggles
	return &t, nil
}
func (f *fakeAdminGateway) SetFeatureToggles(ctx context.Context, toggles *entity.FeatureToggles) error {
	f.toggles = *toggles
	return nil
}
func (f *fakeAdminGateway) LockState(ctx context.Context, resource string) (bool, error) {
	return f.locks[resource], nil
}
func (f *fakeAdminGateway) SetLockState(ctx context.Context, resource string, locked bool) error {
	if f.locks == nil {
		f.locks = make(map[string]bool)
	}
	f.locks[resource] = locked
	return nil
}

func TestFeatureTogglesLoadedOnce(t *testing.T) {
	gw := &fakeAdminGateway{toggles: entity.FeatureToggles{CollectEmailAddresses: true}}
	svc := NewAdminService(gw)

	for i := 0; i < 3; i++ {
		got, err := svc.FeatureToggles(context.Background())
		require.NoError(t, err)
		assert.True(t, got.CollectEmailAddresses)
	}
	assert.Equal(t, 1, gw.toggleReads)
}

func TestRefreshRereadsToggles(t *testing.T) {
	gw := &fakeAdminGateway{}
	svc := NewAdminService(gw)

	got, err := svc.FeatureToggles(context.Background())
	require.NoError(t, err)
	assert.False(t, got.PasswordProtectAdmin)

	// Changed out of band; the cache serves stale until Refresh.
	gw.toggles.PasswordProtectAdmin = true
	got, err = svc.FeatureToggles(context.Background())
	require.NoError(t, err)
	assert.False(t, got.PasswordProtectAdmin)

	got, err = svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.True(t, got.PasswordProtectAdmin)
}

func TestSetFeatureTogglesUpdatesCache(t *testing.T) {
	gw := &fakeAdminGateway{}
	svc := NewAdminService(gw)

	err := svc.SetFeatureToggles(context.Background(), &entity.FeatureToggles{ProtectPlantPassAccess: true})
	require.NoError(t, err)

	got, err := svc.FeatureToggles(context.Background())
	require.NoError(t, err)
	assert.True(t, got.ProtectPlantPassAccess)
	assert.Equal(t, 0, gw.toggleReads)
}

func TestLoginRequiresPassword(t *testing.T) {
	svc := NewAdminService(&fakeAdminGateway{})

	_, err := svc.Login(context.Background(), "")
	require.Error(t, err)

	res, err := svc.Login(context.Background(), "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok-secret", res.Token)
}

func TestChangePasswordRejectsSamePassword(t *testing.T) {
	svc := NewAdminService(&fakeAdminGateway{})

	err := svc.ChangePassword(context.Background(), "same", "same")
	require.Error(t, err)

	err = svc.ChangePassword(context.Background(), "old", "new")
	assert.NoError(t, err)
}

func TestLockStateRoundTrip(t *testing.T) {
	svc := NewAdminService(&fakeAdminGateway{})

	locked, err := svc.LockState(context.Background(), "plantpass")
	require.NoError(t, err)
	assert.False(t, locked)

	require.NoError(t, svc.SetLockState(context.Background(), "plantpass", true))
	locked, err = svc.LockState(context.Background(), "plantpass")
	require.NoError(t, err)
	assert.True(t, locked)

	_, err = svc.LockState(context.Background(), "")
	assert.Error(t, err)
}
