package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no sources yields the
// defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesOverride verifies that later configs override
// non-zero fields of earlier ones and zero fields never erase values.
func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Registry: Registry{SettingsFile: "env.json", UnknownKeys: "reject"},
			Server:   Server{HTTPAddress: "127.0.0.1:1000"},
		},
		&StructuredConfig{
			Registry: Registry{SettingsFile: "flag.json"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "flag.json", cfg.Registry.SettingsFile)
	assert.Equal(t, "reject", cfg.Registry.UnknownKeys)
	assert.Equal(t, "127.0.0.1:1000", cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultMergeMode, cfg.Registry.MergeMode)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
}

func TestBuild_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *StructuredConfig
		wantErr error
	}{
		{
			name:    "unknown keys policy",
			cfg:     &StructuredConfig{Registry: Registry{UnknownKeys: "maybe"}},
			wantErr: ErrInvalidRegistryConfigs,
		},
		{
			name:    "merge mode",
			cfg:     &StructuredConfig{Registry: Registry{MergeMode: "rollback"}},
			wantErr: ErrInvalidRegistryConfigs,
		},
		{
			name:    "negative timeout",
			cfg:     &StructuredConfig{Server: Server{RequestTimeout: -time.Second}},
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "watch without file",
			cfg:     &StructuredConfig{Workers: Workers{Watch: true}},
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name:    "negative debounce",
			cfg:     &StructuredConfig{Workers: Workers{Debounce: -time.Second}},
			wantErr: ErrInvalidWorkerConfigs,
		},
		{
			name:    "log level",
			cfg:     &StructuredConfig{Log: Log{Level: "loud"}},
			wantErr: ErrInvalidLogConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.configs = append(b.configs, tt.cfg)

			cfg, err := b.build()
			assert.Nil(t, cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── withEnv / withFlags ───────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{"REGISTRY_SETTINGS_FILE": "from-env.json"})

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "from-env.json", b.configs[0].Registry.SettingsFile)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	setEnvVars(t, map[string]string{"SERVER_REQUEST_TIMEOUT": "soon"})

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-a", "bad"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// TestGetStructuredConfig_FlagsOverrideEnv verifies the full precedence
// chain: defaults < env < flags.
func TestGetStructuredConfig_FlagsOverrideEnv(t *testing.T) {
	setEnvVars(t, map[string]string{
		"REGISTRY_SETTINGS_FILE": "env.json",
		"LOG_LEVEL":              "error",
	})

	cfg, err := GetStructuredConfig([]string{"-c", "flag.yaml", "-watch"})
	require.NoError(t, err)

	assert.Equal(t, "flag.yaml", cfg.Registry.SettingsFile)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.True(t, cfg.Workers.Watch)
	assert.Equal(t, DefaultDebounce, cfg.Workers.Debounce)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
}

func TestGetClientConfig(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SETTINGSCTL_SERVER_URL": "http://env:8080",
		"SETTINGSCTL_LOG_LEVEL":  "debug",
	})

	cfg, rest, err := GetClientConfig([]string{"-s", "http://flag:8080", "list"})
	require.NoError(t, err)

	assert.Equal(t, "http://flag:8080", cfg.ServerURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, DefaultClientTimeout, cfg.RequestTimeout)
	assert.Equal(t, []string{"list"}, rest)
}

func TestGetClientConfig_InvalidLogLevel(t *testing.T) {
	clearEnvVars(t)

	_, _, err := GetClientConfig([]string{"-log-level", "loud"})
	assert.ErrorIs(t, err, ErrInvalidLogConfigs)
}
