// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"errors"
	"strings"
)

// Sentinel errors returned by [Registry]. Callers match them with [errors.Is].
var (
	// ErrConfigurationFileNotFound is returned by [Registry.ProcessConfigFile]
	// when the path does not name an existing regular file.
	ErrConfigurationFileNotFound = errors.New("could not find configuration file")

	// ErrConfigurationParseFailure is returned when the settings file exists
	// but cannot be decoded into flat string key/value pairs.
	ErrConfigurationParseFailure = errors.New("could not parse configuration file")

	// ErrInvalidConfigurationValue is wrapped by [*ValidationError] when one
	// or more settings fail validation.
	ErrInvalidConfigurationValue = errors.New("invalid configuration value")

	// ErrInvalidConfiguration is returned by [Registry.GetConfigValue] when
	// the key is not present in the registry.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrRegistryPoisoned is the panic value raised by every operation on a
	// registry whose critical section was previously aborted by a panic.
	ErrRegistryPoisoned = errors.New("settings registry is poisoned by an earlier panic")
)

// InvalidSetting describes one setting rejected by validation.
type InvalidSetting struct {
	Key    string `json:"key"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

func (s InvalidSetting) String() string {
	return s.Key + " " + s.Reason
}

// ValidationError lists every setting rejected by a validation pass, in key
// order. It unwraps to [ErrInvalidConfigurationValue].
type ValidationError struct {
	Settings []InvalidSetting
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Settings))
	for _, s := range e.Settings {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfigurationValue
}

// Keys returns the keys of the rejected settings.
func (e *ValidationError) Keys() []string {
	keys := make([]string, 0, len(e.Settings))
	for _, s := range e.Settings {
		keys = append(keys, s.Key)
	}
	return keys
}
