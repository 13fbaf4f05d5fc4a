// ABOUTME: Keyring interface and in-memory implementation for durable session keys
// ABOUTME: Exactly two keys are stored: the session token and the serialized user

package session

import (
	"errors"
	"sync"
)

// ErrKeyNotFound is returned when a requested key does not exist
var ErrKeyNotFound = errors.New("key not found")

// Keyring is the durable storage behind the session store. Implementations
// must be safe for concurrent use.
type Keyring interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// MemoryKeyring is a non-durable Keyring for tests and ephemeral sessions.
type MemoryKeyring struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryKeyring creates an empty in-memory keyring.
func NewMemoryKeyring() *MemoryKeyring {
	return &MemoryKeyring{values: make(map[string]string)}
}

// Get returns the value for key, or ErrKeyNotFound.
func (k *MemoryKeyring) Get(key string) (string, error) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	v, ok := k.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return v, nil
}

// Set stores the value under key, replacing any previous value.
func (k *MemoryKeyring) Set(key, value string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.values[key] = value
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (k *MemoryKeyring) Delete(key string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.values, key)
	return nil
}
