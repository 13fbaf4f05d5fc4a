// Package session owns the admin console's authentication state.
//
// # Overview
//
// A single Store holds the session token and user record, guarded by a
// mutex. The state survives process restarts through a Keyring holding
// exactly two durable keys (token and serialized user); the default keyring
// is a SQLite database.
//
// # Lifecycle
//
// The store starts in the loading state. Initialize rehydrates from the
// keyring once per process; until it completes, consumers must treat the
// session as neither authenticated nor unauthenticated. Login and Logout
// flip the full state atomically, and every transition fans out to
// Subscribe channels.
//
// # Authenticators
//
// Credential validation is pluggable. RemoteAuthenticator delegates to the
// backend's login endpoint; DevAuthenticator accepts the local fixture
// credential and mints an HS256 JWT for use against the stub backend.
//
// # Usage
//
//	keyring, err := session.NewSQLiteKeyring(cfg.Keyring.Path)
//	if err != nil {
//	    return err
//	}
//	store := session.NewStore(keyring, session.NewRemoteAuthenticator(cfg.Server.BaseURL, nil), nil)
//	if err := store.Initialize(); err != nil {
//	    return err
//	}
//	ok, err := store.Login(ctx, username, password)
package session
