package service

import (
	"context"

	"github.com/MKhiriev/go-settings-registry/internal/logger"
	"github.com/MKhiriev/go-settings-registry/internal/settings"
)

type settingsService struct {
	registry     Registry
	settingsFile string

	logger *logger.Logger
}

// NewSettingsService returns a SettingsService backed by registry. Reload
// merges settingsFile; an empty settingsFile disables reloading.
func NewSettingsService(registry Registry, settingsFile string, logger *logger.Logger) SettingsService {
	return &settingsService{
		registry:     registry,
		settingsFile: settingsFile,
		logger:       logger,
	}
}

func (s *settingsService) GetValue(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	return s.registry.GetConfigValue(key)
}

func (s *settingsService) GetAll(ctx context.Context) map[string]string {
	return s.registry.Snapshot()
}

func (s *settingsService) Reload(ctx context.Context) (settings.StatusCode, error) {
	if s.settingsFile == "" {
		return settings.StatusUnknownError, ErrReloadNotConfigured
	}

	code, err := s.registry.ProcessConfigFile(s.settingsFile)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("path", s.settingsFile).Msg("settings reload requested over API failed")
		return code, err
	}

	return code, nil
}
