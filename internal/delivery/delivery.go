// Package delivery defines the contract shared by all transport frontends.
package delivery

import "context"

// Delivery is a serving surface (HTTP server, worker loop) managed by the
// application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
