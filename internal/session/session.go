package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

// Store holds the bearer token used against the platform backend. The token
// lives in memory; when a file path is configured it is also mirrored to disk
// so a restart does not force a re-login. The file is a convenience cache,
// losing it only costs a login.
type Store struct {
	mu   sync.RWMutex
	path string

	token   string
	staffID string
}

type sessionFile struct {
	Token   string `json:"token"`
	StaffID string `json:"staff_id,omitempty"`
}

// New creates a session store. If path is non-empty an existing session file
// is loaded; a missing or unreadable file just starts an empty session.
func New(path string) *Store {
	s := &Store{path: path}
	if path == "" {
		return s
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var f sessionFile
	if err := json.Unmarshal(data, &f); err != nil {
		return s
	}
	s.token = f.Token
	s.staffID = f.StaffID
	return s
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) StaffID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.staffID
}

func (s *Store) SetSession(token, staffID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.staffID = staffID
	return s.persistLocked()
}

// Clear drops the session. Called locally and by the remote client whenever
// the backend answers 401; there is no token refresh flow.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.staffID = ""
	if s.path == "" {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

func (s *Store) persistLocked() error {
	if s.path == "" {
		return nil
	}
	data, err := json.MarshalIndent(sessionFile{Token: s.token, StaffID: s.staffID}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}
