package cache

import (
	"context"
	"time"
)

// Store is the snapshot cache contract. Values are always serialized text.
//
// Implementations must treat expired entries as absent and must swallow their
// own I/O failures: a broken backend degrades to a permanent miss, it never
// takes a lookup down with it. Writes are last-write-wins.
type Store interface {
	// Exists reports whether a live (non-expired) entry is present for key
	Exists(ctx context.Context, key string) bool

	// Get returns the value for key and whether a live entry was found
	Get(ctx context.Context, key string) (string, bool)

	// SetWithTTL stores value under key, replacing any previous entry,
	// expiring after ttl
	SetWithTTL(ctx context.Context, key string, value string, ttl time.Duration)
}
