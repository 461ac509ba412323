package cryptodash

import (
	"os"
	"path/filepath"
	"testing"
)

func sessionPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "session.json")
}

func TestStoreRoundTrip(t *testing.T) {
	path := sessionPath(t)

	store := OpenStore(path)
	if store.Get() != nil {
		t.Fatal("fresh store should have no session")
	}

	sess := Session{
		Token: "token-123",
		User:  User{Email: "ada@example.com", Name: "Ada", Picture: "https://example.com/a.png"},
	}
	if err := store.Set(sess); err != nil {
		t.Fatal(err)
	}
	if got := store.Token(); got != "token-123" {
		t.Errorf("Token() = %q", got)
	}

	// A second store reads the persisted state back.
	reopened := OpenStore(path)
	got := reopened.Get()
	if got == nil {
		t.Fatal("persisted session not loaded")
	}
	if *got != sess {
		t.Errorf("loaded %+v, want %+v", *got, sess)
	}
}

func TestStoreClear(t *testing.T) {
	path := sessionPath(t)
	store := OpenStore(path)
	if err := store.Set(Session{Token: "t", User: User{Email: "e@example.com"}}); err != nil {
		t.Fatal(err)
	}
	if err := store.Clear(); err != nil {
		t.Fatal(err)
	}
	if store.Get() != nil {
		t.Error("session should be gone after Clear")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("session file should be removed")
	}
	// Clearing an already absent session is not an error.
	if err := store.Clear(); err != nil {
		t.Errorf("second Clear: %v", err)
	}
}

func TestStoreCorruptFile(t *testing.T) {
	path := sessionPath(t)
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	store := OpenStore(path)
	if store.Get() != nil {
		t.Error("corrupt session should load as absent")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("corrupt session file should be removed")
	}
}

func TestStoreEmptyTokenIsCorrupt(t *testing.T) {
	path := sessionPath(t)
	if err := os.WriteFile(path, []byte(`{"user":{"email":"e@example.com"}}`), 0600); err != nil {
		t.Fatal(err)
	}
	store := OpenStore(path)
	if store.Get() != nil {
		t.Error("session without token should load as absent")
	}
}
