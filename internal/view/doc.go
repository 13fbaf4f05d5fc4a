// Package view filters fetched resource lists in memory.
//
// Every list screen derives its visible rows the same way: free-text search
// across a few declared fields plus zero or more categorical filters. The
// functions here are pure — no hidden state, stable order — so the same
// search and filter selection always yields the same subset.
package view
