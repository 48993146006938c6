package service

import (
	"context"

	"github.com/MKhiriev/go-settings-registry/internal/settings"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SettingsService exposes the settings registry to transport handlers.
type SettingsService interface {
	// GetValue returns the value of key or an error matching
	// settings.ErrInvalidConfiguration.
	GetValue(ctx context.Context, key string) (string, error)
	// GetAll returns a snapshot of every setting.
	GetAll(ctx context.Context) map[string]string
	// Reload merges the daemon's settings file into the registry again.
	Reload(ctx context.Context) (settings.StatusCode, error)
}

// AppInfoService reports build information of the running daemon.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// Registry is the subset of *settings.Registry used by the service layer.
type Registry interface {
	GetConfigValue(key string) (string, error)
	Snapshot() map[string]string
	ProcessConfigFile(path string) (settings.StatusCode, error)
}
