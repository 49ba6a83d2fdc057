package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"eventify/internal/domain"
)

// FileStore persists the session record inside a JSON document on disk.
// The document maps storage keys to records, so several keys can share
// one file the way a browser's local storage does.
type FileStore struct {
	path string
	key  string
	mu   sync.Mutex
}

// NewFileStore returns a persister writing the record named key into path.
func NewFileStore(path, key string) *FileStore {
	return &FileStore{path: path, key: key}
}

var _ domain.SessionPersister = (*FileStore)(nil)

// Path returns the file backing the store.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the record. A missing file or key yields domain.ErrSessionNotFound.
func (s *FileStore) Load(_ context.Context) (domain.PersistedSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDocument()
	if err != nil {
		return domain.PersistedSession{}, err
	}
	raw, ok := doc[s.key]
	if !ok {
		return domain.PersistedSession{}, domain.ErrSessionNotFound
	}
	var session domain.PersistedSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return domain.PersistedSession{}, fmt.Errorf("parsing %q in %s: %w", s.key, s.path, err)
	}
	return session, nil
}

// Save writes the record, keeping any other keys in the document.
// The directory is created with mode 0700 and the file written with 0600
// since it contains an access token.
func (s *FileStore) Save(_ context.Context, session domain.PersistedSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.readDocument()
	if err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
		return err
	}
	if doc == nil {
		doc = make(map[string]json.RawMessage)
	}
	record, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}
	doc[s.key] = record

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling storage document: %w", err)
	}
	data = append(data, '\n')

	directory := filepath.Dir(s.path)
	if err := os.MkdirAll(directory, 0700); err != nil {
		return fmt.Errorf("creating storage directory %s: %w", directory, err)
	}

	// Replace atomically via a sibling temp file.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("writing storage file %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing storage file %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) readDocument() (map[string]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("reading storage file %s: %w", s.path, err)
	}
	doc := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing storage file %s: %w", s.path, err)
	}
	return doc, nil
}
