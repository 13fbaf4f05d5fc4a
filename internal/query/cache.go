// ABOUTME: Keyed fetch cache with explicit staleness for resource families
// ABOUTME: Shares in-flight fetches per key and re-fetches only after invalidation

package query

import (
	"context"
	"log/slog"
	"sync"
)

// Fetcher loads the value for a key from the backend.
type Fetcher func(ctx context.Context) (interface{}, error)

// entry holds one key's cached resolution. A non-nil inflight channel means
// a fetch is outstanding; it closes when the fetch settles.
type entry struct {
	value    interface{}
	err      error
	fresh    bool
	version  uint64
	inflight chan struct{}
}

// Cache stores the last resolution per resource-family key. A fresh entry
// answers without a network call; concurrent observers of the same key share
// one outstanding fetch. Invalidation clears the fresh flag only — the next
// Get triggers the re-fetch. There is no TTL and no background refresh; all
// state is in-memory.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry
	logger  *slog.Logger
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{
		entries: make(map[string]*entry),
		logger:  slog.Default().With("component", "query"),
	}
}

// Get returns the cached resolution for key, fetching it when the entry is
// stale or absent. The resolution — value or error — is cached until the key
// is invalidated. If another fetch for the same key is already outstanding,
// Get waits for it instead of issuing a duplicate call.
func (c *Cache) Get(ctx context.Context, key string, fetch Fetcher) (interface{}, error) {
	c.mu.Lock()
	for {
		e, ok := c.entries[key]
		if !ok {
			e = &entry{}
			c.entries[key] = e
		}

		if e.fresh {
			value, err := e.value, e.err
			c.mu.Unlock()
			return value, err
		}

		if e.inflight != nil {
			done := e.inflight
			c.mu.Unlock()
			select {
			case <-done:
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			c.mu.Lock()
			// Re-check: the settled fetch usually left the entry fresh, but
			// an invalidation may have raced it.
			continue
		}

		done := make(chan struct{})
		e.inflight = done
		fetchVersion := e.version
		c.mu.Unlock()

		value, err := fetch(ctx)

		c.mu.Lock()
		if e.version == fetchVersion {
			e.value = value
			e.err = err
			e.fresh = true
		} else {
			// Invalidated while in flight; the result is already suspect
			c.logger.Debug("discarding stale fetch result", "key", key)
		}
		e.inflight = nil
		close(done)
		c.mu.Unlock()

		return value, err
	}
}

// Invalidate marks the given keys stale. The cached value stays readable to
// an in-flight waiter but the next Get issues a fresh fetch. Unknown keys
// are ignored.
func (c *Cache) Invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range keys {
		e, ok := c.entries[key]
		if !ok {
			continue
		}
		e.fresh = false
		e.version++
	}
}

// Fresh reports whether key currently holds a fresh resolution.
func (c *Cache) Fresh(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	return ok && e.fresh
}

// Lookup fetches through the cache and asserts the value's type. A cached
// value of the wrong type returns the zero value and ErrWrongType.
func Lookup[T any](ctx context.Context, c *Cache, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	value, err := c.Get(ctx, key, func(ctx context.Context) (interface{}, error) {
		return fetch(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	typed, ok := value.(T)
	if !ok {
		var zero T
		return zero, ErrWrongType
	}
	return typed, nil
}
