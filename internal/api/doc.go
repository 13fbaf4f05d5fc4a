// Package api is the typed HTTP client for the Atrium backend's REST API.
//
// # Overview
//
// Every operation maps to exactly one request against the configured base
// URL plus the /api prefix. The current session token is attached as a
// bearer credential when present; an empty token omits the header. Retries
// and caching belong to the query layer, not here.
//
// # Resource Families
//
//   - Users: list, fetch, update, delete, ban/unban, blocked users, reports
//   - Creators: pending applications, approve/reject decisions
//   - Reports: list, fetch, status triage, delete
//   - Announcements: full CRUD
//   - Analytics: dashboard, user and report aggregates
//   - Subscriptions: plan CRUD, user subscriptions, cancellation
//   - Blocks: block/unblock, block status between identities
//
// # Errors
//
// Non-2xx responses surface as *Error carrying the HTTP status and the
// message extracted from the response body when the backend supplies one.
// Transport failures wrap the underlying error.
//
// # Usage
//
//	client := api.New(cfg.Server.BaseURL, sessionStore, nil)
//	users, err := client.ListUsers(ctx)
package api
