package session

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Store persists at most one serialized Session under a single
// well-known file. Only the Manager writes to it.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Save durably persists the session, overwriting any prior value.
// The file is written with mode 0600.
func (s *Store) Save(sess *Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}

// Load returns the last saved session, or nil if none exists or the
// stored data is unreadable. Malformed data is treated as absent.
func (s *Store) Load() *Session {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil
	}
	if sess.Token.AccessToken == "" {
		return nil
	}
	return &sess
}

// Clear removes any persisted session. Removing an absent file is not
// an error.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
