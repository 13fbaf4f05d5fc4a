// ABOUTME: Tests for the SQLite keyring
// ABOUTME: Covers round-trips, overwrite, delete, and persistence across reopens

package session

import (
	"errors"
	"path/filepath"
	"testing"
)

func openTestKeyring(t *testing.T, path string) *SQLiteKeyring {
	t.Helper()
	k, err := NewSQLiteKeyring(path)
	if err != nil {
		t.Fatalf("NewSQLiteKeyring() error = %v", err)
	}
	t.Cleanup(func() { k.Close() })
	return k
}

func TestSQLiteKeyring_RoundTrip(t *testing.T) {
	k := openTestKeyring(t, filepath.Join(t.TempDir(), "session.db"))

	if err := k.Set(KeyToken, "token-value"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := k.Get(KeyToken)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "token-value" {
		t.Errorf("Get() = %q, want %q", got, "token-value")
	}
}

func TestSQLiteKeyring_GetMissing(t *testing.T) {
	k := openTestKeyring(t, filepath.Join(t.TempDir(), "session.db"))

	_, err := k.Get("no-such-key")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get() error = %v, want ErrKeyNotFound", err)
	}
}

func TestSQLiteKeyring_Overwrite(t *testing.T) {
	k := openTestKeyring(t, filepath.Join(t.TempDir(), "session.db"))

	if err := k.Set(KeyUser, "first"); err != nil {
		t.Fatal(err)
	}
	if err := k.Set(KeyUser, "second"); err != nil {
		t.Fatal(err)
	}

	got, err := k.Get(KeyUser)
	if err != nil {
		t.Fatal(err)
	}
	if got != "second" {
		t.Errorf("Get() = %q, want overwritten value", got)
	}
}

func TestSQLiteKeyring_Delete(t *testing.T) {
	k := openTestKeyring(t, filepath.Join(t.TempDir(), "session.db"))

	if err := k.Set(KeyToken, "v"); err != nil {
		t.Fatal(err)
	}
	if err := k.Delete(KeyToken); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := k.Get(KeyToken); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrKeyNotFound", err)
	}

	// Deleting a missing key is not an error
	if err := k.Delete(KeyToken); err != nil {
		t.Errorf("Delete() of missing key error = %v", err)
	}
}

func TestSQLiteKeyring_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	k1, err := NewSQLiteKeyring(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := k1.Set(KeyToken, "durable"); err != nil {
		t.Fatal(err)
	}
	if err := k1.Close(); err != nil {
		t.Fatal(err)
	}

	k2 := openTestKeyring(t, path)
	got, err := k2.Get(KeyToken)
	if err != nil {
		t.Fatalf("Get() after reopen error = %v", err)
	}
	if got != "durable" {
		t.Errorf("Get() = %q, want value to survive reopen", got)
	}
}

func TestSQLiteKeyring_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "session.db")
	k := openTestKeyring(t, path)

	if err := k.Set(KeyToken, "v"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
}
