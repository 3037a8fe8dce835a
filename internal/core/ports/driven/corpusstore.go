package driven

import (
	"context"

	"github.com/docsift/docsift-cli/internal/core/domain"
)

// CorpusStore holds the session's documents in volatile memory.
//
// The corpus is insertion-ordered (result ordering follows it), unique by
// document ID, and read-only while a query is in flight. Documents are
// immutable once added; the store never mutates one in place.
type CorpusStore interface {
	// Add inserts a document at the end of the corpus. The document's ID
	// must already be unique; domain.ErrAlreadyExists otherwise.
	Add(ctx context.Context, doc *domain.Document) error

	// Get retrieves a document by ID, or domain.ErrNotFound.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// List returns all documents in insertion order.
	List(ctx context.Context) ([]*domain.Document, error)

	// Remove deletes one document, or domain.ErrNotFound.
	// Removing a document never mutates the remaining ones.
	Remove(ctx context.Context, id string) error

	// Clear discards the whole corpus.
	Clear(ctx context.Context) error

	// Len returns the number of documents.
	Len(ctx context.Context) (int, error)

	// NextID derives a unique document ID from a sanitised filename,
	// disambiguating collisions ("report.pdf", "report.pdf-2", ...).
	NextID(ctx context.Context, filename string) (string, error)
}
