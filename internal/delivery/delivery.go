// Package delivery defines the entry points that expose the use cases.
package delivery

import "context"

// Delivery is a server started by the application once every dependency is wired.
type Delivery interface {
	Serve(ctx context.Context) error
}
