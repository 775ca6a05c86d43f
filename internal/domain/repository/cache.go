// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Cache.Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// Cache is the contract for the catalog result cache. Entries are
// serialized payloads keyed by derived hashes; the cache is a side-channel
// to the authoritative store and its content is never trusted for mutations.
type Cache interface {
	// Get returns the payload stored under key, or ErrCacheMiss.
	Get(ctx context.Context, key string) (string, error)

	// Set stores the payload under key with the given time-to-live.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// DeleteByPattern removes all keys matching the glob-style pattern.
	// Best-effort: backends bound staleness with the entry TTL regardless.
	DeleteByPattern(ctx context.Context, pattern string) error
}
