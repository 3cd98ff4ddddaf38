// Package delivery defines the contract every transport entrypoint implements.
package delivery

import "context"

// Delivery is a long-running transport (e.g. an HTTP server) started by the
// application container.
type Delivery interface {
	Serve(ctx context.Context) error
}
