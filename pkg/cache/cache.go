// Package cache stores calculated chart reports and rendered artifacts.
//
// Chart calculation is pure, so a report is fully determined by its input.
// The [Keyer] turns inputs into content-addressed keys and a [Cache] backend
// holds the encoded results:
//
//   - [FileCache] keeps entries under a local directory (the CLI default)
//   - [RedisCache] shares entries between machines
//   - [NullCache] disables caching
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the value stored under key. hit is false on a miss or an
	// expired entry; err is reserved for backend failures.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Clearer is implemented by caches that can drop every entry at once.
type Clearer interface {
	Clear(ctx context.Context) error
}

// Default TTLs. Reports only change when the calculation code changes, so
// they are kept for a long time; rendered artifacts are cheap to rebuild.
const (
	TTLReport   = 30 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)
