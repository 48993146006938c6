package adapter

import (
	"context"

	"github.com/MKhiriev/go-settings-registry/internal/settings"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// SettingsAdapter talks to a running settingsd over its read API.
type SettingsAdapter interface {
	// GetValue returns the value of key. A key the daemon does not hold is
	// reported as settings.ErrInvalidConfiguration.
	GetValue(ctx context.Context, key string) (string, error)
	// GetAll returns the daemon's full settings snapshot.
	GetAll(ctx context.Context) (map[string]string, error)
	// Reload asks the daemon to merge its settings file again.
	Reload(ctx context.Context) (ReloadResult, error)
}

// ReloadResult is the daemon's answer to a reload request.
type ReloadResult struct {
	Status  settings.StatusCode       `json:"status"`
	Error   string                    `json:"error,omitempty"`
	Invalid []settings.InvalidSetting `json:"invalid,omitempty"`
}
