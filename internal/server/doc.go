// Package server runs the settings daemon's HTTP read API and shuts it down
// gracefully when its context is cancelled.
package server
