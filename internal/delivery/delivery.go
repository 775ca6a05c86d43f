// Package delivery defines the contract every transport entry point
// implements, so the process entry can serve any of them uniformly.
package delivery

import "context"

// Delivery is a long-running transport server, e.g. the HTTP API.
type Delivery interface {
	// Serve blocks until the server stops or ctx is canceled.
	Serve(ctx context.Context) error
}
