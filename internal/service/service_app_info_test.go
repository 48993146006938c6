package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-settings-registry/internal/config"
	"github.com/MKhiriev/go-settings-registry/internal/logger"
	"github.com/MKhiriev/go-settings-registry/internal/settings"
)

func TestNewAppInfoService(t *testing.T) {
	svc, err := NewAppInfoService("1.2.3", logger.Nop())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", svc.GetAppVersion(context.Background()))
}

func TestNewAppInfoService_EmptyVersion(t *testing.T) {
	_, err := NewAppInfoService("", logger.Nop())

	require.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestNewServices(t *testing.T) {
	registry := settings.NewRegistry()
	registry.SetDefaults()

	services, err := NewServices(registry, config.Registry{}, "dev", logger.Nop())
	require.NoError(t, err)

	value, err := services.SettingsService.GetValue(context.Background(), settings.KeyWalletName)
	require.NoError(t, err)
	assert.Equal(t, settings.DefaultWalletName, value)
	assert.Equal(t, "dev", services.AppInfoService.GetAppVersion(context.Background()))
}

func TestNewServices_EmptyVersion(t *testing.T) {
	_, err := NewServices(settings.NewRegistry(), config.Registry{}, "", logger.Nop())

	require.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
