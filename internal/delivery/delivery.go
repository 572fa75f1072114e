// Package delivery defines the contract every delivery mechanism satisfies.
package delivery

import "context"

// Delivery is a long-running entry point such as an HTTP server.
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
