package reconcile

import (
	"context"

	"cookie-importer/core/cookie"
)

// Adapter defines the store-specific half of the upsert.
// Each adapter implements how to find, update and insert a cookie row for a
// specific store (e.g., Firefox moz_cookies).
type Adapter interface {
	// Name returns the unique name of this adapter (e.g., "firefox").
	Name() string

	// Lookup returns the row id of the cookie with the given identity key.
	// found is false when no such row exists.
	Lookup(ctx context.Context, key cookie.Key) (id int64, found bool, err error)

	// Update overwrites the mutable attributes of row id with c.
	// now is the current time in microseconds and becomes lastAccessed.
	Update(ctx context.Context, id int64, c cookie.Cookie, now int64) error

	// Insert creates a new row for c and returns its id.
	// now becomes both creationTime and lastAccessed.
	Insert(ctx context.Context, c cookie.Cookie, now int64) (id int64, err error)
}

// Maintainer is implemented by adapters whose store benefits from compaction
// after a batch.
type Maintainer interface {
	// Vacuum rebuilds the store file, reclaiming free pages.
	Vacuum(ctx context.Context) error

	// Reindex rebuilds all indices of the store.
	Reindex(ctx context.Context) error
}
