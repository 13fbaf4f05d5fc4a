// Package query avoids redundant network calls and keeps views consistent
// after writes.
//
// Values are cached per resource-family key. A fresh entry answers without
// touching the backend; concurrent observers of an in-flight fetch share the
// single outstanding call. Mutations invalidate by key name on success —
// invalidation never re-fetches eagerly, it only clears the fresh flag so
// the next Get fetches again. No TTL, no polling, no durable state.
package query
