// ABOUTME: Mutation wrapper tying write operations to cache invalidation
// ABOUTME: Success invalidates the configured keys; failure leaves the cache untouched

package query

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrWrongType is returned by Lookup when a cached value does not match the
// requested type.
var ErrWrongType = errors.New("cached value has unexpected type")

// Mutation wraps a write operation against the backend. On success it
// invalidates its configured cache keys and runs the optional onSuccess
// callback; on failure the cache is left untouched and the error surfaces
// to the caller.
type Mutation struct {
	cache       *Cache
	invalidates []string
	onSuccess   func()
	running     atomic.Bool
}

// NewMutation creates a mutation that invalidates the given keys on success.
// Pass nil onSuccess when no extra callback is needed.
func NewMutation(cache *Cache, invalidates []string, onSuccess func()) *Mutation {
	return &Mutation{
		cache:       cache,
		invalidates: invalidates,
		onSuccess:   onSuccess,
	}
}

// Do runs the write operation. The in-progress flag is observable through
// Running for the duration of the call.
func (m *Mutation) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.running.Store(true)
	defer m.running.Store(false)

	if err := fn(ctx); err != nil {
		return err
	}

	m.cache.Invalidate(m.invalidates...)
	if m.onSuccess != nil {
		m.onSuccess()
	}
	return nil
}

// Running reports whether a Do call is currently in progress.
func (m *Mutation) Running() bool {
	return m.running.Load()
}
