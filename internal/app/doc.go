// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app wires the settings daemon together: the registry, its
// metrics, the read API server and the background workers.
package app
