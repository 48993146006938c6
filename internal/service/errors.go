package service

import "errors"

var (
	// ErrReloadNotConfigured is returned by SettingsService.Reload when the
	// daemon was started without a settings file.
	ErrReloadNotConfigured = errors.New("no settings file configured for reload")
	// ErrVersionIsNotSpecified is returned when the build version is empty.
	ErrVersionIsNotSpecified = errors.New("version is not specified")
	// ErrEmptyKey is returned for lookups of the empty key.
	ErrEmptyKey = errors.New("empty settings key")
)
