package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

// TestNetAddress_Set tests the Set method of NetAddress
func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectError  bool
		errorMsg     string
		expectedAddr NetAddress
	}{
		{name: "valid localhost", input: "localhost:8080", expectedAddr: NetAddress{Host: "localhost", Port: 8080}},
		{name: "valid IPv4", input: "127.0.0.1:9090", expectedAddr: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "missing colon", input: "localhost8080", expectError: true, errorMsg: "need address in a form `host:port`"},
		{name: "multiple colons", input: "host:port:extra", expectError: true, errorMsg: "need address in a form `host:port`"},
		{name: "non-numeric port", input: "localhost:abc", expectError: true, errorMsg: "invalid syntax"},
		{name: "zero port", input: "localhost:0", expectError: true, errorMsg: "port number must be between 1 and 65535"},
		{name: "port too large", input: "localhost:70000", expectError: true, errorMsg: "port number must be between 1 and 65535"},
		{name: "invalid IP address", input: "invalid.host:8080", expectError: true, errorMsg: "incorrect IP-address provided"},
		{name: "empty string", input: "", expectError: true, errorMsg: "need address in a form `host:port`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &NetAddress{}
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedAddr, *addr)
		})
	}
}

// TestParseFlags tests the ParseFlags function
func TestParseFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-c", "/etc/settings.hcl",
		"-unknown-keys", "reject",
		"-merge-mode", "validate-then-merge",
		"-dump", "/tmp/snapshot.json",
		"-a", "127.0.0.1:9000",
		"-request-timeout", "2s",
		"-watch",
		"-debounce", "100ms",
		"-log-level", "debug",
	})
	require.NoError(t, err)

	assert.Equal(t, Registry{
		SettingsFile: "/etc/settings.hcl",
		UnknownKeys:  "reject",
		MergeMode:    "validate-then-merge",
		DumpPath:     "/tmp/snapshot.json",
	}, cfg.Registry)
	assert.Equal(t, Server{HTTPAddress: "127.0.0.1:9000", RequestTimeout: 2 * time.Second}, cfg.Server)
	assert.Equal(t, Workers{Watch: true, Debounce: 100 * time.Millisecond}, cfg.Workers)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-config", "settings.json"})
	require.NoError(t, err)
	assert.Equal(t, "settings.json", cfg.Registry.SettingsFile)
}

func TestParseFlags_Empty(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := ParseFlags([]string{"-a", "nowhere"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "host:port")
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := ParseFlags([]string{"-grpc-address", "localhost:9090"})
	require.Error(t, err)
}

func TestParseClientFlags(t *testing.T) {
	cfg, rest, err := parseClientFlags([]string{"-s", "http://h:1", "-timeout", "1s", "get", "pool_name"})
	require.NoError(t, err)

	assert.Equal(t, &ClientConfig{ServerURL: "http://h:1", RequestTimeout: time.Second}, cfg)
	assert.Equal(t, []string{"get", "pool_name"}, rest)
}
