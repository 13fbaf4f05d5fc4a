// ABOUTME: Process-wide session store for the admin console
// ABOUTME: Owns token/user state, rehydrates from the keyring, notifies subscribers

package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Durable keyring keys. These are the only two persisted pieces of session
// state; everything else is re-derived from them.
const (
	KeyToken = "admin_token"
	KeyUser  = "admin_user"
)

// subscriberBufferSize is the channel buffer for each state subscriber.
const subscriberBufferSize = 8

// User is the authenticated operator's identity record.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Email    string `json:"email"`
}

// State is a snapshot of the session. Authenticated is true iff both Token
// and User are set. While Loading is true the session is neither
// authenticated nor unauthenticated; consumers must wait.
type State struct {
	Token         string
	User          *User
	Authenticated bool
	Loading       bool
}

// Store is the single process-wide authority on who is logged in. All state
// transitions happen atomically under one lock, and every transition is
// published to subscribers.
type Store struct {
	mu          sync.Mutex
	keyring     Keyring
	auth        Authenticator
	logger      *slog.Logger
	state       State
	initialized bool
	subscribers map[string]chan State
}

// NewStore creates a session store backed by the given keyring and
// authenticator. The store starts in the loading state until Initialize
// runs. Pass nil logger for default.
func NewStore(keyring Keyring, auth Authenticator, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		keyring:     keyring,
		auth:        auth,
		logger:      logger.With("component", "session"),
		state:       State{Loading: true},
		subscribers: make(map[string]chan State),
	}
}

// Initialize rehydrates the session from the keyring. Both durable keys
// present and parseable restores the previous session; a corrupt user
// record self-heals by deleting both keys and staying logged out. The
// loading flag drops exactly once, even across repeated calls.
func (s *Store) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	s.initialized = true
	defer func() {
		s.state.Loading = false
		s.publishLocked()
	}()

	token, err := s.keyring.Get(KeyToken)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil
		}
		return fmt.Errorf("reading stored token: %w", err)
	}

	userJSON, err := s.keyring.Get(KeyUser)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil
		}
		return fmt.Errorf("reading stored user: %w", err)
	}

	var user User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		s.logger.Warn("stored session is corrupt, clearing", "error", err)
		s.clearKeyringLocked()
		return nil
	}

	if tokenExpired(token) {
		s.logger.Info("stored session token expired, clearing")
		s.clearKeyringLocked()
		return nil
	}

	s.state.Token = token
	s.state.User = &user
	s.state.Authenticated = true
	s.logger.Info("session restored", "username", user.Username)
	return nil
}

// Login validates credentials through the configured authenticator. On
// success the token and user record persist to the keyring and the
// in-memory state flips in one step. Bad credentials return (false, nil)
// and leave state untouched; only storage or transport faults error.
func (s *Store) Login(ctx context.Context, username, password string) (bool, error) {
	result, err := s.auth.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			return false, nil
		}
		return false, fmt.Errorf("authenticating: %w", err)
	}

	userJSON, err := json.Marshal(result.User)
	if err != nil {
		return false, fmt.Errorf("encoding user record: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.keyring.Set(KeyToken, result.Token); err != nil {
		return false, fmt.Errorf("persisting token: %w", err)
	}
	if err := s.keyring.Set(KeyUser, string(userJSON)); err != nil {
		// Leave no half-written session behind
		_ = s.keyring.Delete(KeyToken)
		return false, fmt.Errorf("persisting user: %w", err)
	}

	user := result.User
	s.state.Token = result.Token
	s.state.User = &user
	s.state.Authenticated = true
	s.publishLocked()

	s.logger.Info("logged in", "username", user.Username)
	return true, nil
}

// Logout clears the keyring keys and in-memory state. Idempotent.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.clearKeyringLocked(); err != nil {
		return err
	}

	wasAuthenticated := s.state.Authenticated
	s.state.Token = ""
	s.state.User = nil
	s.state.Authenticated = false
	s.publishLocked()

	if wasAuthenticated {
		s.logger.Info("logged out")
	}
	return nil
}

// State returns a snapshot of the current session.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Token returns the current session token, empty when logged out. Satisfies
// the api.TokenSource interface.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Token
}

// Subscribe registers for state snapshots on every session transition.
// Returns the channel and an unsubscribe func. Sends are non-blocking;
// slow subscribers miss intermediate snapshots, never block transitions.
func (s *Store) Subscribe() (<-chan State, func()) {
	id := uuid.New().String()
	ch := make(chan State, subscriberBufferSize)

	s.mu.Lock()
	s.subscribers[id] = ch
	s.mu.Unlock()

	unsubscribe := func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
	return ch, unsubscribe
}

// snapshotLocked copies state so callers never alias the store's User.
func (s *Store) snapshotLocked() State {
	snap := s.state
	if s.state.User != nil {
		u := *s.state.User
		snap.User = &u
	}
	return snap
}

// publishLocked fans the current state out to all subscribers. Must be
// called with mu held.
func (s *Store) publishLocked() {
	snap := s.snapshotLocked()
	for _, ch := range s.subscribers {
		select {
		case ch <- snap:
		default:
		}
	}
}

// clearKeyringLocked removes both durable keys. Must be called with mu held.
func (s *Store) clearKeyringLocked() error {
	if err := s.keyring.Delete(KeyToken); err != nil && !errors.Is(err, ErrKeyNotFound) {
		return fmt.Errorf("clearing token: %w", err)
	}
	if err := s.keyring.Delete(KeyUser); err != nil && !errors.Is(err, ErrKeyNotFound) {
		return fmt.Errorf("clearing user: %w", err)
	}
	return nil
}
