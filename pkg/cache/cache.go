// Package cache stores rendered documents between runs.
//
// # Overview
//
// Rendering is deterministic: the same model file rendered with the same
// options always produces the same text. The pipeline therefore keys
// rendered documents by a hash of the model bytes and the render options
// (see [Keyer]) and stores them in a [Cache].
//
// Three implementations are provided:
//
//   - [FileCache]: entries as JSON files under a directory (CLI default)
//   - [RedisCache]: entries in a Redis server, shared between machines
//   - [NullCache]: stores nothing (--no-cache)
//
// # Keys
//
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "v1.2.0:")
//	key := keyer.DocumentKey(cache.Hash(modelBytes), cache.DocumentKeyOpts{Title: "Landscape"})
//
// Scoping keys by version keeps a new release from serving documents
// rendered by an older one.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is the lifetime of cached documents.
const DefaultTTL = 7 * 24 * time.Hour

// Cache is a byte store with optional per-entry expiry.
//
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the stored value and true, or nil and false on a miss.
	// Expired entries are misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// Clearer is implemented by caches that can drop every entry they own.
type Clearer interface {
	Clear(ctx context.Context) error
}
