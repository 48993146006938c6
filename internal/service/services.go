package service

import (
	"github.com/MKhiriev/go-settings-registry/internal/config"
	"github.com/MKhiriev/go-settings-registry/internal/logger"
)

type Services struct {
	SettingsService SettingsService
	AppInfoService  AppInfoService
}

func NewServices(registry Registry, cfg config.Registry, version string, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(version, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		SettingsService: NewSettingsService(registry, cfg.SettingsFile, logger),
		AppInfoService:  appInfo,
	}, nil
}
