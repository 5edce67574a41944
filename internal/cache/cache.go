// Package cache provides content-keyed caching of generated responses.
// Two identical contents anywhere in history share one entry; the cache never
// references message ids and is purely an optimization layer, never a source
// of truth.
package cache

import (
	"context"
	"time"
)

// DefaultTTL matches the five minute expiry the service has always used for
// generated responses.
const DefaultTTL = 300 * time.Second

// Cache stores generated responses keyed by message content.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Get never errors; it returns ("", false) on miss or expiry.
// - Set overwrites any existing entry for the same content. Concurrent Sets
//   for one key race; last writer wins.
// - An entry must be unobservable once its TTL has elapsed; immediate
//   reclamation is not required.
type Cache interface {
	Get(ctx context.Context, content string) (string, bool)
	Set(ctx context.Context, content, response string) error
}
