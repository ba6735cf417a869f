// Package delivery defines the contract every transport server fulfills.
package delivery

import "context"

// Delivery is a server that accepts requests until its context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
