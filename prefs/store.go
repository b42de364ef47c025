// Package prefs defines the preference store consumed by the listing
// pipeline, plus interchangeable backend implementations.
package prefs

import "context"

// Store is a key/value lookup for user preferences.
// Implementations return the supplied default when a key is absent and
// must be safe for repeated lookups within one listing cycle.
type Store interface {
	// Name returns the identifier name defined for this store
	Name() string

	// Open is part of the lifecycle behaviour and gets called when opening this store.
	Open(ctx context.Context) error

	// Close is part of the lifecycle behaviour and gets called when closing this store.
	Close(ctx context.Context) error

	// Bool returns the boolean value stored under key, or def when absent.
	Bool(ctx context.Context, key string, def bool) (bool, error)

	// Int returns the integer value stored under key, or def when absent.
	Int(ctx context.Context, key string, def int) (int, error)
}
