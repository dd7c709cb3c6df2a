// Package cache stores rendered maze text keyed by generation inputs.
//
// Only deterministic generations are worth caching: a maze is fully
// determined by (width, height, seed, style, debug mode), so a seeded
// request can be served from a previous run. Unseeded generations never hit
// the cache.
//
// Three backends exist: a file cache for CLI use, a Redis cache for the
// multi-instance server, and a null cache for disabling caching entirely.
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface shared by all backends.
type Cache interface {
	// Get retrieves a value. The second return reports a hit.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of 0 means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// MazeKeyOpts are the inputs that determine a generated maze byte for byte.
type MazeKeyOpts struct {
	Width  int
	Height int
	Seed   uint64
	Style  string
	Debug  int
}

// MazeKey builds the cache key for a deterministic generation.
func MazeKey(opts MazeKeyOpts) string {
	return hashKey("maze", opts)
}
