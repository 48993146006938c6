package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// ClientConfig is the configuration of the settingsctl client.
type ClientConfig struct {
	// ServerURL is the base URL of the settingsd read API.
	ServerURL string `env:"SERVER_URL"`
	// RequestTimeout is the timeout for every outbound request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	// LogLevel is the zerolog level of the client's stderr logger.
	LogLevel string `env:"LOG_LEVEL"`
}

const clientEnvPrefix = "SETTINGSCTL_"

// Client defaults.
const (
	DefaultServerURL     = "http://localhost:8080"
	DefaultClientTimeout = 15 * time.Second
	DefaultClientLevel   = "warn"
)

// GetClientConfig builds and validates the settingsctl configuration from
// SETTINGSCTL_* environment variables and the flags in args. The positional
// arguments left after flag parsing (the command and its operands) are
// returned alongside the config.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	envCfg := &ClientConfig{}
	if err := parseEnvWithPrefix(envCfg, clientEnvPrefix); err != nil {
		return nil, nil, err
	}

	flagsCfg, rest, err := parseClientFlags(args)
	if err != nil {
		return nil, nil, err
	}

	cfg := new(ClientConfig)
	for _, src := range []*ClientConfig{envCfg, flagsCfg} {
		if err := mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, nil, fmt.Errorf("error merging client configs: %w", err)
		}
	}
	if err := mergo.Merge(cfg, &ClientConfig{
		ServerURL:      DefaultServerURL,
		RequestTimeout: DefaultClientTimeout,
		LogLevel:       DefaultClientLevel,
	}); err != nil {
		return nil, nil, fmt.Errorf("error applying default client configs: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}

	return cfg, rest, nil
}

// parseClientFlags parses settingsctl flags.
//
// Flags:
//
//	-s/-server settingsd base URL
//	-timeout request timeout (e.g., "15s")
//	-log-level debug|info|warn|error
func parseClientFlags(args []string) (*ClientConfig, []string, error) {
	var serverURL string
	var timeout time.Duration
	var logLevel string

	fs := flag.NewFlagSet("settingsctl", flag.ContinueOnError)
	fs.StringVar(&serverURL, "s", "", "settingsd base URL")
	fs.StringVar(&serverURL, "server", "", "settingsd base URL (alias)")
	fs.DurationVar(&timeout, "timeout", 0, "Request timeout (e.g., 15s)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug|info|warn|error)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &ClientConfig{
		ServerURL:      serverURL,
		RequestTimeout: timeout,
		LogLevel:       logLevel,
	}, fs.Args(), nil
}
