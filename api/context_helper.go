package api

import (
	"context"
	"time"
)

// StoreTimeout bounds a single round trip to the key/value backend
const StoreTimeout = 5 * time.Second

// WithStoreTimeout creates a context for a store round trip. It keeps the values of
// parent but not its cancellation, so only StoreTimeout bounds the save.
func WithStoreTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(context.WithoutCancel(parent), StoreTimeout)
}
