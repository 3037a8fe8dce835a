package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/docsift/docsift-cli/internal/core/domain"
	"github.com/docsift/docsift-cli/internal/core/ports/driven"
)

// Ensure CorpusStore implements the interface.
var _ driven.CorpusStore = (*CorpusStore)(nil)

// CorpusStore is an in-memory implementation of driven.CorpusStore.
//
// Documents live in an insertion-ordered slice with an ID index on the
// side. Everything is lost when the process exits; that is the point of
// a session corpus.
type CorpusStore struct {
	mu    sync.RWMutex
	order []*domain.Document
	byID  map[string]*domain.Document
}

// NewCorpusStore creates an empty in-memory corpus store.
func NewCorpusStore() *CorpusStore {
	return &CorpusStore{
		byID: make(map[string]*domain.Document),
	}
}

// Add inserts a document at the end of the corpus.
func (s *CorpusStore) Add(_ context.Context, doc *domain.Document) error {
	if doc == nil || doc.ID == "" {
		return fmt.Errorf("add document: %w", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[doc.ID]; ok {
		return fmt.Errorf("document %q: %w", doc.ID, domain.ErrAlreadyExists)
	}
	s.byID[doc.ID] = doc
	s.order = append(s.order, doc)
	return nil
}

// Get retrieves a document by ID.
func (s *CorpusStore) Get(_ context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("document %q: %w", id, domain.ErrNotFound)
	}
	return doc, nil
}

// List returns all documents in insertion order.
func (s *CorpusStore) List(_ context.Context) ([]*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.order) == 0 {
		return nil, nil
	}
	out := make([]*domain.Document, len(s.order))
	copy(out, s.order)
	return out, nil
}

// Remove deletes one document from the corpus.
func (s *CorpusStore) Remove(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return fmt.Errorf("document %q: %w", id, domain.ErrNotFound)
	}
	delete(s.byID, id)
	for i, doc := range s.order {
		if doc.ID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// Clear discards the whole corpus.
func (s *CorpusStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = nil
	s.byID = make(map[string]*domain.Document)
	return nil
}

// Len returns the number of documents in the corpus.
func (s *CorpusStore) Len(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order), nil
}

// NextID derives a unique document ID from a sanitised filename. The
// first upload of "report.pdf" gets "report.pdf"; later collisions get
// "report.pdf-2", "report.pdf-3", and so on.
func (s *CorpusStore) NextID(_ context.Context, filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("next id: %w", domain.ErrInvalidInput)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.byID[filename]; !ok {
		return filename, nil
	}
	for n := 2; ; n++ {
		id := fmt.Sprintf("%s-%d", filename, n)
		if _, ok := s.byID[id]; !ok {
			return id, nil
		}
	}
}
