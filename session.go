package cryptodash

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// Session is the authenticated state persisted across runs: the bearer
// token and the user profile, the pair that is always written and cleared
// together. There is no expiry; a persisted session lasts until logout.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Store persists the session as a single JSON file on disk and caches it
// in memory. It never performs network calls, and a corrupt file is treated
// as an absent session, never as an error to the caller.
type Store struct {
	path    string
	current *Session
}

// OpenStore loads the session persisted at path, if any.
func OpenStore(path string) *Store {
	s := &Store{path: path}
	s.load()
	return s
}

func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("cannot read session file %q: %v", s.path, err)
		}
		return
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil || sess.Token == "" {
		// Corrupt or empty entry: drop it and start logged out.
		log.Printf("discarding corrupt session file %q", s.path)
		_ = os.Remove(s.path)
		return
	}
	s.current = &sess
}

// Get returns the current session, or nil when logged out.
func (s *Store) Get() *Session { return s.current }

// Token returns the current bearer token, or "" when logged out.
func (s *Store) Token() string {
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// Set makes sess the current session and persists it. The file is written
// atomically so a crash mid-write never leaves a corrupt session behind.
func (s *Store) Set(sess Session) error {
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return err
	}
	s.current = &sess
	return nil
}

// Clear removes the persisted state and the current session.
func (s *Store) Clear() error {
	s.current = nil
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
