// ABOUTME: The one list-screen template every resource page reuses
// ABOUTME: Composes the query cache, client-side filtering, and mutation invalidation

package console

import (
	"context"
	"sync"

	"github.com/atriumhq/atrium-console/internal/query"
	"github.com/atriumhq/atrium-console/internal/view"
)

// Page drives one list-style screen: fetch a resource family through the
// cache, derive a filtered view from the current search term and categorical
// filters, and run mutations whose success invalidates the originating key
// so the next render re-fetches.
type Page[T any] struct {
	cache        *query.Cache
	key          string
	fetch        func(ctx context.Context) ([]T, error)
	searchFields func(T) []string
	mutation     *query.Mutation

	mu      sync.Mutex
	search  string
	filters map[string]view.Predicate[T]
}

// NewPage creates a page over the given resource-family key. searchFields
// declares which fields the free-text search matches; pass nil to disable
// search.
func NewPage[T any](cache *query.Cache, key string, fetch func(ctx context.Context) ([]T, error), searchFields func(T) []string) *Page[T] {
	return &Page[T]{
		cache:        cache,
		key:          key,
		fetch:        fetch,
		searchFields: searchFields,
		mutation:     query.NewMutation(cache, []string{key}, nil),
		filters:      make(map[string]view.Predicate[T]),
	}
}

// SetSearch updates the free-text search term.
func (p *Page[T]) SetSearch(term string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.search = term
}

// SetFilter installs or replaces a named categorical filter.
func (p *Page[T]) SetFilter(name string, pred view.Predicate[T]) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.filters[name] = pred
}

// ClearFilter removes a named filter. Unknown names are ignored.
func (p *Page[T]) ClearFilter(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.filters, name)
}

// Items returns the filtered view of the resource family, fetching through
// the cache when the entry is stale. Fetch errors surface for inline
// rendering; they never carry partial data.
func (p *Page[T]) Items(ctx context.Context) ([]T, error) {
	all, err := query.Lookup(ctx, p.cache, p.key, p.fetch)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	search := p.search
	predicates := make([]view.Predicate[T], 0, len(p.filters))
	for _, pred := range p.filters {
		predicates = append(predicates, pred)
	}
	p.mu.Unlock()

	return view.Apply(all, search, p.searchFields, predicates...), nil
}

// Mutate runs a write operation. Success invalidates this page's query key;
// failure leaves the cached list untouched and returns the error for the
// caller to display.
func (p *Page[T]) Mutate(ctx context.Context, fn func(ctx context.Context) error) error {
	return p.mutation.Do(ctx, fn)
}

// Mutating reports whether a mutation is currently in progress.
func (p *Page[T]) Mutating() bool {
	return p.mutation.Running()
}

// Refresh marks the page's data stale so the next Items call re-fetches.
func (p *Page[T]) Refresh() {
	p.cache.Invalidate(p.key)
}
