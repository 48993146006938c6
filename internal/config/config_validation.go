// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-settings-registry/internal/settings"
)

// validate checks that the final merged [StructuredConfig] can be used to
// start the daemon.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// package's sentinel errors otherwise.
func (cfg *StructuredConfig) validate() error {
	if _, err := settings.ParseUnknownKeysPolicy(cfg.Registry.UnknownKeys); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRegistryConfigs, err)
	}

	if _, err := settings.ParseMergeMode(cfg.Registry.MergeMode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRegistryConfigs, err)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.Debounce < 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Workers.Watch && cfg.Registry.SettingsFile == "" {
		return fmt.Errorf("%w: watching requires a settings file", ErrInvalidWorkerConfigs)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.ServerURL == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}
