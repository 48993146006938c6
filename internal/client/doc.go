// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the settingsctl command runtime.
//
// It dispatches the get, list and reload commands to a running settingsd
// through adapter.SettingsAdapter and prints the results.
package client
