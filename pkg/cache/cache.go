// Package cache provides pluggable response caching for the wiki API
// client. Backends share one interface so the CLI can swap between a
// file cache, a redis cache, and no cache at all via configuration.
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface shared by all backends.
//
// Get returns (data, true, nil) on a hit and (nil, false, nil) on a miss;
// expired entries count as misses. Implementations need not be
// goroutine-safe: the CLI runs a single traversal at a time.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
