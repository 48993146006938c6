package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the settingsd command-line arguments (without the
// program name).
//
// Flags:
//
//	-c/-config settings file path (json, yaml, yml or hcl)
//	-unknown-keys validation policy for unknown keys (ignore|reject)
//	-merge-mode merge-then-validate|validate-then-merge
//	-dump path to write a JSON snapshot after the startup load
//	-a read API address in format [host]:[port]
//	-request-timeout request timeout (e.g., "5s", "1m")
//	-watch reload the settings file when it changes
//	-debounce quiet period before a reload (e.g., "500ms")
//	-log-level debug|info|warn|error
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var settingsFile string
	var unknownKeys string
	var mergeMode string
	var dumpPath string
	var requestTimeout time.Duration
	var watch bool
	var debounce time.Duration
	var logLevel string

	fs := flag.NewFlagSet("settingsd", flag.ContinueOnError)
	fs.StringVar(&settingsFile, "c", "", "Settings file path")
	fs.StringVar(&settingsFile, "config", "", "Settings file path (alias)")
	fs.StringVar(&unknownKeys, "unknown-keys", "", "Unknown keys policy (ignore|reject)")
	fs.StringVar(&mergeMode, "merge-mode", "", "Merge mode (merge-then-validate|validate-then-merge)")
	fs.StringVar(&dumpPath, "dump", "", "Write a JSON snapshot of the settings to this path")
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 5s, 1m)")
	fs.BoolVar(&watch, "watch", false, "Reload the settings file when it changes")
	fs.DurationVar(&debounce, "debounce", 0, "Reload debounce (e.g., 500ms)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug|info|warn|error)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Registry: Registry{
			SettingsFile: settingsFile,
			UnknownKeys:  unknownKeys,
			MergeMode:    mergeMode,
			DumpPath:     dumpPath,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			Watch:    watch,
			Debounce: debounce,
		},
		Log: Log{
			Level: logLevel,
		},
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost", and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
