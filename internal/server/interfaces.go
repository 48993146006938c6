package server

import "context"

// Server is the lifecycle contract of the daemon's transport server. It is
// a workers.Worker, so it runs next to the file watcher.
type Server interface {
	// Run serves requests until ctx is cancelled, then shuts down
	// gracefully. It returns nil on a normal stop.
	Run(ctx context.Context) error

	// Shutdown stops accepting connections and waits for in-flight requests
	// until ctx expires.
	Shutdown(ctx context.Context) error
}
