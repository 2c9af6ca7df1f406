package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Durable storage keys. The token and the theme preference are the only two
// values the client persists between runs.
const (
	KeyToken = "token"
	KeyTheme = "theme"
)

// KeyStore is a durable string-keyed store backed by one file per key under a
// state directory. Absent keys read as "".
type KeyStore struct {
	dir string
	mu  sync.Mutex
}

// NewKeyStore creates the state directory if needed and returns a store over it.
func NewKeyStore(dir string) (*KeyStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	return &KeyStore{dir: dir}, nil
}

func (s *KeyStore) path(key string) string {
	return filepath.Join(s.dir, key)
}

// Get reads the value stored under key, or "" when the key is absent.
func (s *KeyStore) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Set writes value under key, replacing any previous value.
func (s *KeyStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return os.WriteFile(s.path(key), []byte(value), 0o600)
}

// Delete removes the key. Deleting an absent key is not an error.
func (s *KeyStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
