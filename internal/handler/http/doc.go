// Package http implements the read API of the settings daemon.
//
// It exposes the registry snapshot, single-key lookups, an on-demand reload
// of the settings file, the build version and Prometheus metrics. Request
// tracing and access logging are applied to every route.
package http
