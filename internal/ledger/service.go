package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"dairy-backend/internal/auth"
	"dairy-backend/internal/models"
	"dairy-backend/internal/store"
	"dairy-backend/internal/timeutil"
)

// Service owns the in-memory ledger document and is its sole mutator.
// Every mutation rewrites the whole document through the injected
// storage backend. The mutex exists because HTTP exposes the service to
// concurrent clients; the document itself stays single-writer.
type Service struct {
	mu      sync.Mutex
	storage store.Storage
	doc     *models.Document
	lastID  int64
}

// NewService loads the persisted document, falling back to the seed
// document when nothing is stored or the blob does not parse.
func NewService(ctx context.Context, storage store.Storage) (*Service, error) {
	s := &Service{storage: storage}

	blob, err := storage.Load(ctx)
	switch {
	case errors.Is(err, store.ErrNoDocument):
		log.Println("[Ledger] No stored document, starting from seed data")
		s.doc = models.SeedDocument()
	case err != nil:
		return nil, fmt.Errorf("load document: %w", err)
	default:
		var doc models.Document
		if jsonErr := json.Unmarshal(blob, &doc); jsonErr != nil {
			log.Printf("[Ledger] Stored document is corrupt (%v), falling back to seed data", jsonErr)
			s.doc = models.SeedDocument()
		} else {
			s.doc = &doc
		}
	}

	return s, nil
}

// persist rewrites the full document. Callers hold the mutex.
func (s *Service) persist(ctx context.Context) error {
	blob, err := json.Marshal(s.doc)
	if err != nil {
		return err
	}
	return s.storage.Save(ctx, blob)
}

// nextID builds an id in the original document's style
// (prefix_unixmillis), bumping the millisecond count when two ids are
// requested inside the same millisecond.
func (s *Service) nextID(prefix string) string {
	ms := timeutil.Now().UnixMilli()
	if ms <= s.lastID {
		ms = s.lastID + 1
	}
	s.lastID = ms
	return fmt.Sprintf("%s_%d", prefix, ms)
}

// Authenticate checks credentials against the single vendor account.
// Stored passwords are bcrypt hashes for documents written by this
// server and plaintext for documents imported from the original app,
// so both forms are accepted.
func (s *Service) Authenticate(username, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc.User.Username != username {
		return false
	}
	stored := s.doc.User.Password
	if auth.VerifyPassword(stored, password) {
		return true
	}
	return stored == password
}

// ChangePassword replaces the vendor password with a bcrypt hash.
func (s *Service) ChangePassword(ctx context.Context, newPassword string) error {
	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	old := s.doc.User.Password
	s.doc.User.Password = hash
	if err := s.persist(ctx); err != nil {
		s.doc.User.Password = old
		return err
	}
	return nil
}

// Username returns the vendor account name.
func (s *Service) Username() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.User.Username
}

// ExportSnapshot serializes the whole document, indented the way the
// original app exported it.
func (s *Service) ExportSnapshot() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return json.MarshalIndent(s.doc, "", "  ")
}

// ImportSnapshot replaces the whole document atomically. A blob that
// does not parse as a document is rejected and current state is left
// untouched. No schema validation happens beyond parsing.
func (s *Service) ImportSnapshot(ctx context.Context, raw []byte) error {
	var doc models.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("snapshot does not parse: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	old := s.doc
	s.doc = &doc
	if err := s.persist(ctx); err != nil {
		s.doc = old
		return err
	}
	return nil
}
