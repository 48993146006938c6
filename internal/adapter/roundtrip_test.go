package adapter

import (
	"context"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-settings-registry/internal/config"
	handlerhttp "github.com/MKhiriev/go-settings-registry/internal/handler/http"
	"github.com/MKhiriev/go-settings-registry/internal/logger"
	"github.com/MKhiriev/go-settings-registry/internal/service"
	"github.com/MKhiriev/go-settings-registry/internal/settings"
)

// TestRoundTrip drives a real registry through the read API and the adapter.
func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"pool_name":"pool_2","extra":"x"}`), 0o600))

	registry := settings.NewRegistry()
	registry.SetDefaults()

	services, err := service.NewServices(registry, config.Registry{SettingsFile: path}, "test", logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(handlerhttp.NewHandler(services, 0, nil, logger.Nop()).Init())
	t.Cleanup(srv.Close)

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	result, err := a.Reload(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings.StatusSuccess, result.Status)

	value, err := a.GetValue(ctx, settings.KeyPoolName)
	require.NoError(t, err)
	assert.Equal(t, "pool_2", value)

	all, err := a.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, "x", all["extra"])
	assert.Equal(t, settings.DefaultWalletName, all[settings.KeyWalletName])

	_, err = a.GetValue(ctx, "missing")
	require.ErrorIs(t, err, settings.ErrInvalidConfiguration)

	require.NoError(t, os.WriteFile(path, []byte(`{"wallet_name":"bad wallet"}`), 0o600))
	result, err = a.Reload(ctx)
	require.ErrorIs(t, err, settings.ErrInvalidConfigurationValue)
	assert.Equal(t, settings.StatusInvalidConfiguration, result.Status)

	// merge-then-validate keeps the rejected value
	value, err = a.GetValue(ctx, settings.KeyWalletName)
	require.NoError(t, err)
	assert.Equal(t, "bad wallet", value)
}

// TestRoundTrip_KeysWithReservedCharacters verifies that keys containing
// path separators and escape sequences reach the registry unchanged.
func TestRoundTrip_KeysWithReservedCharacters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a/b":"slash","a%2Fb":"pct","a b":"space"}`), 0o600))

	registry := settings.NewRegistry()
	registry.SetDefaults()
	_, err := registry.ProcessConfigFile(path)
	require.NoError(t, err)

	services, err := service.NewServices(registry, config.Registry{SettingsFile: path}, "test", logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(handlerhttp.NewHandler(services, 0, nil, logger.Nop()).Init())
	t.Cleanup(srv.Close)

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	for key, want := range map[string]string{"a/b": "slash", "a%2Fb": "pct", "a b": "space"} {
		got, err := a.GetValue(ctx, key)
		require.NoError(t, err, key)
		assert.Equal(t, want, got, key)
	}
}
