// Package credstore is the durable handoff between the registration flow and
// the authentication flow.
//
// A successful registration persists the account it created; a later,
// independently invoked login run retrieves it. The store is a JSON list file
// at a well-known location inside the workspace data directory, so entries
// survive process exits and CI runs. Entries are appended, never deleted;
// retrieval always yields the most recently persisted usable entry.
//
// Writes are atomic from a reader's perspective: the full list is rewritten
// to a temporary file in the same directory and renamed over the old one, so
// a concurrent reader observes either the previous or the new contents, never
// a torn record. The store does not lock across processes. Two writers racing
// each other have an undefined winner; the orchestration is expected to order
// the registration flow before the authentication flow and not to run two
// registration flows concurrently against one workspace. This is a known,
// accepted limitation.
package credstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoCredential means no usable entry exists: the store file is absent,
// empty, unreadable, or holds no entry marked valid. For an authentication
// test this is a setup failure, meaning the registration flow has not yet run
// successfully in this environment, not that login is broken.
var ErrNoCredential = errors.New("no stored credential available")

// ErrWrite means the storage medium rejected a persist.
var ErrWrite = errors.New("cannot write credential store")

// Store reads and writes the credential file. The zero value is not usable;
// call New.
type Store struct {
	path string
}

// New returns a store over the given file path. The parent directory must
// already exist (the workspace provisioner creates it).
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the store file.
func (s *Store) Path() string {
	return s.path
}

// Persist appends rec as the new current entry. Call it only after the
// application has confirmed the account exists; persisting unconfirmed
// credentials poisons later login runs. Returns an error wrapping ErrWrite if
// the file cannot be written. There is no retry.
func (s *Store) Persist(rec Record) error {
	// A corrupt existing file starts a fresh history rather than wedging
	// registration permanently; retrieval already treats it as empty.
	history, _ := s.History()
	history = append(history, rec)

	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".credentials-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

// Retrieve returns the current entry: the most recently persisted record that
// is still marked usable. It returns an error wrapping ErrNoCredential when
// there is none, and never a zero-value record.
func (s *Store) Retrieve() (Record, error) {
	history, err := s.History()
	if err != nil {
		return Record{}, err
	}
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Usable() {
			return history[i], nil
		}
	}
	return Record{}, fmt.Errorf(
		"%w: %s holds no usable entry; run the registration flow first", ErrNoCredential, s.path)
}

// History returns every persisted entry, oldest first. A missing or
// undecodable file reads as empty with an error wrapping ErrNoCredential.
func (s *Store) History() ([]Record, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf(
			"%w: %s does not exist; no registration has succeeded in this environment yet",
			ErrNoCredential, s.path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read %s: %v", ErrNoCredential, s.path, err)
	}
	var history []Record
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("%w: %s is not a valid credential file: %v", ErrNoCredential, s.path, err)
	}
	return history, nil
}
