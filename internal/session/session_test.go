// ABOUTME: Tests for the session store lifecycle
// ABOUTME: Covers rehydration, corrupt-state self-heal, login/logout and subscriptions

package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func devStore(t *testing.T, keyring Keyring) *Store {
	t.Helper()
	auth, err := NewDevAuthenticator([]byte("test-secret-key-for-session-tests"))
	if err != nil {
		t.Fatalf("NewDevAuthenticator() error = %v", err)
	}
	return NewStore(keyring, auth, nil)
}

func TestInitialize_EmptyKeyring(t *testing.T) {
	store := devStore(t, NewMemoryKeyring())

	if !store.State().Loading {
		t.Error("store should be loading before Initialize")
	}

	if err := store.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	state := store.State()
	if state.Loading {
		t.Error("store should not be loading after Initialize")
	}
	if state.Authenticated {
		t.Error("empty keyring should not yield an authenticated session")
	}
}

func TestInitialize_RestoresValidSession(t *testing.T) {
	keyring := NewMemoryKeyring()
	user := User{ID: 7, Username: "ops", Role: "admin", Email: "ops@example.com"}
	userJSON, _ := json.Marshal(user)

	if err := keyring.Set(KeyToken, "opaque-session-token"); err != nil {
		t.Fatal(err)
	}
	if err := keyring.Set(KeyUser, string(userJSON)); err != nil {
		t.Fatal(err)
	}

	store := devStore(t, keyring)
	if err := store.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	state := store.State()
	if !state.Authenticated {
		t.Fatal("valid stored session should authenticate")
	}
	if state.Token != "opaque-session-token" {
		t.Errorf("Token = %q, want stored token", state.Token)
	}
	if state.User == nil || *state.User != user {
		t.Errorf("User = %+v, want exact stored record %+v", state.User, user)
	}
}

func TestInitialize_CorruptUserClearsKeyring(t *testing.T) {
	keyring := NewMemoryKeyring()
	if err := keyring.Set(KeyToken, "some-token"); err != nil {
		t.Fatal(err)
	}
	if err := keyring.Set(KeyUser, "{not valid json"); err != nil {
		t.Fatal(err)
	}

	store := devStore(t, keyring)
	if err := store.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v (corrupt state must self-heal, not error)", err)
	}

	if store.State().Authenticated {
		t.Error("corrupt stored user should not authenticate")
	}

	// Both durable keys must be gone afterward
	if _, err := keyring.Get(KeyToken); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("token key should be deleted, got err = %v", err)
	}
	if _, err := keyring.Get(KeyUser); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("user key should be deleted, got err = %v", err)
	}
}

func TestInitialize_ExpiredTokenClearsKeyring(t *testing.T) {
	keyring := NewMemoryKeyring()
	auth, err := NewDevAuthenticator([]byte("test-secret-key-for-session-tests"))
	if err != nil {
		t.Fatal(err)
	}

	// Mint a real token, then rewind its exp by writing a pre-expired one.
	// Easiest path: a JWT with exp in the past, built via the authenticator's
	// signing path is not exposed, so store a structurally valid expired JWT.
	expired := "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9." +
		"eyJzdWIiOiIxIiwiaWF0IjoxNTAwMDAwMDAwLCJleHAiOjE1MDAwMDM2MDB9." +
		"sVqt7sMLXY1rcWhvwzYvxKzyPOUAp5AW5vmDoFVJ1cQ"
	userJSON, _ := json.Marshal(User{ID: 1, Username: "admin", Role: "admin", Email: "admin@example.com"})
	if err := keyring.Set(KeyToken, expired); err != nil {
		t.Fatal(err)
	}
	if err := keyring.Set(KeyUser, string(userJSON)); err != nil {
		t.Fatal(err)
	}

	store := NewStore(keyring, auth, nil)
	if err := store.Initialize(); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}

	if store.State().Authenticated {
		t.Error("expired token should not restore an authenticated session")
	}
	if _, err := keyring.Get(KeyToken); !errors.Is(err, ErrKeyNotFound) {
		t.Error("expired token key should be cleared")
	}
}

func TestInitialize_RunsOnce(t *testing.T) {
	store := devStore(t, NewMemoryKeyring())
	if err := store.Initialize(); err != nil {
		t.Fatal(err)
	}
	if err := store.Initialize(); err != nil {
		t.Fatalf("repeated Initialize() error = %v", err)
	}
	if store.State().Loading {
		t.Error("loading must stay false after repeated Initialize")
	}
}

func TestLogin_Logout_RoundTrip(t *testing.T) {
	keyring := NewMemoryKeyring()
	store := devStore(t, keyring)
	if err := store.Initialize(); err != nil {
		t.Fatal(err)
	}

	ok, err := store.Login(context.Background(), "admin", "admin123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if !ok {
		t.Fatal("Login() with fixture credentials should succeed")
	}

	state := store.State()
	if !state.Authenticated {
		t.Error("should be authenticated after login")
	}
	if state.User == nil || state.User.Username != "admin" {
		t.Errorf("User = %+v, want admin fixture", state.User)
	}

	// Durable keys must match in-memory state
	storedToken, err := keyring.Get(KeyToken)
	if err != nil {
		t.Fatalf("token should be persisted: %v", err)
	}
	if storedToken != state.Token {
		t.Error("persisted token does not match in-memory token")
	}
	storedUser, err := keyring.Get(KeyUser)
	if err != nil {
		t.Fatalf("user should be persisted: %v", err)
	}
	var persisted User
	if err := json.Unmarshal([]byte(storedUser), &persisted); err != nil {
		t.Fatalf("persisted user should be valid JSON: %v", err)
	}
	if persisted != *state.User {
		t.Error("persisted user does not match in-memory user")
	}

	if err := store.Logout(); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if store.State().Authenticated {
		t.Error("should not be authenticated after logout")
	}
	if _, err := keyring.Get(KeyToken); !errors.Is(err, ErrKeyNotFound) {
		t.Error("token key should be cleared on logout")
	}
	if _, err := keyring.Get(KeyUser); !errors.Is(err, ErrKeyNotFound) {
		t.Error("user key should be cleared on logout")
	}
}

func TestLogin_Rejection(t *testing.T) {
	store := devStore(t, NewMemoryKeyring())
	if err := store.Initialize(); err != nil {
		t.Fatal(err)
	}

	ok, err := store.Login(context.Background(), "x", "y")
	if err != nil {
		t.Fatalf("bad credentials must not error, got %v", err)
	}
	if ok {
		t.Fatal("Login() with bad credentials should return false")
	}
	if store.State().Authenticated {
		t.Error("state should be unchanged after rejected login")
	}
}

func TestLogout_Idempotent(t *testing.T) {
	store := devStore(t, NewMemoryKeyring())
	if err := store.Initialize(); err != nil {
		t.Fatal(err)
	}

	if err := store.Logout(); err != nil {
		t.Fatalf("Logout() on logged-out store error = %v", err)
	}
	if err := store.Logout(); err != nil {
		t.Fatalf("second Logout() error = %v", err)
	}
}

func TestSubscribe_ReceivesTransitions(t *testing.T) {
	store := devStore(t, NewMemoryKeyring())
	ch, unsubscribe := store.Subscribe()
	defer unsubscribe()

	if err := store.Initialize(); err != nil {
		t.Fatal(err)
	}

	select {
	case state := <-ch:
		if state.Loading {
			t.Error("published state should have loading cleared")
		}
	case <-time.After(time.Second):
		t.Fatal("expected a state snapshot after Initialize")
	}

	ok, err := store.Login(context.Background(), "admin", "admin123")
	if err != nil || !ok {
		t.Fatalf("Login() = %v, %v", ok, err)
	}

	select {
	case state := <-ch:
		if !state.Authenticated {
			t.Error("published state should be authenticated after login")
		}
	case <-time.After(time.Second):
		t.Fatal("expected a state snapshot after Login")
	}
}
