// Package console implements the reusable page-controller pattern shared by
// every list screen: fetch a resource family through the query cache, filter
// it client-side, and invalidate on mutation so the next render re-fetches.
// Writing the template once here keeps the per-resource commands in the CLI
// down to wiring.
package console
