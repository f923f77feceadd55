// Package delivery defines the contract every transport entrypoint
// implements so main can start them uniformly.
package delivery

import "context"

// Delivery is a transport entrypoint (HTTP server, worker, ...).
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
