// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration of the settingsd daemon.
// It is populated by merging values from environment variables and
// command-line flags on top of built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Registry holds the settings registry options: which settings file to
	// load and how it is merged and validated.
	Registry Registry `envPrefix:"REGISTRY_"`

	// Server holds network address and timeout settings for the read API.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`
}

// Registry groups the options passed to the settings registry.
type Registry struct {
	// SettingsFile is the path of the settings file merged at startup and on
	// reload. Empty means defaults only.
	SettingsFile string `env:"SETTINGS_FILE"`

	// UnknownKeys is the validation policy for unknown keys:
	// "ignore" or "reject".
	UnknownKeys string `env:"UNKNOWN_KEYS"`

	// MergeMode is "merge-then-validate" or "validate-then-merge".
	MergeMode string `env:"MERGE_MODE"`

	// DumpPath, when set, receives a JSON snapshot of the registry after the
	// startup load.
	DumpPath string `env:"DUMP_PATH"`
}

// Server holds the HTTP listener settings.
type Server struct {
	// HTTPAddress is the TCP address the read API listens on (host:port).
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling time of a single request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background worker settings.
type Workers struct {
	// Watch enables reloading the settings file when it changes on disk.
	Watch bool `env:"WATCH"`

	// Debounce is the quiet period after a file change before reloading.
	Debounce time.Duration `env:"DEBOUNCE"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name (debug, info, warn, error).
	Level string `env:"LEVEL"`
}

// Defaults applied to fields left empty by every other source.
const (
	DefaultHTTPAddress    = "localhost:8080"
	DefaultRequestTimeout = 5 * time.Second
	DefaultDebounce       = 500 * time.Millisecond
	DefaultLogLevel       = "info"
	DefaultUnknownKeys    = "ignore"
	DefaultMergeMode      = "merge-then-validate"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Registry: Registry{
			UnknownKeys: DefaultUnknownKeys,
			MergeMode:   DefaultMergeMode,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			Debounce: DefaultDebounce,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}

// GetStructuredConfig builds the daemon configuration from environment
// variables and the command-line arguments args (without the program name),
// fills unset fields with defaults and validates the result.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		build()
}
