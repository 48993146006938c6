// Package config provides configuration loading, merging, and validation
// for the settingsd daemon and the settingsctl client.
//
// This is the configuration of the programs themselves, not the settings
// held by the registry (see package settings).
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//
// The main entry points are [GetStructuredConfig] for the daemon and
// [GetClientConfig] for the client.
package config
