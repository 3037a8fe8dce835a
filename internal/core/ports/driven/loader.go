package driven

import (
	"context"

	"github.com/docsift/docsift-cli/internal/core/domain"
)

// Upload is one raw artifact handed to the engine by a presentation
// adapter. Loaders only ever see byte buffers, never file paths: keeping
// disk I/O out of the core is a security property, not a convenience.
type Upload struct {
	// Filename is the original (unsanitised) filename.
	Filename string

	// Kind is the declared source kind, usually derived from the
	// filename extension by the adapter.
	Kind domain.SourceKind

	// Content is the raw upload bytes.
	Content []byte
}

// Loader converts one upload format into a normalised document.
// Each loader handles exactly one source kind.
type Loader interface {
	// Kind returns the source kind this loader handles.
	Kind() domain.SourceKind

	// Load parses the upload into a Document. The returned document has
	// normalised text and a complete offset map, but no ID: the corpus
	// store assigns IDs on insertion. Load never performs disk I/O and
	// never executes embedded content.
	//
	// Failure modes: domain.ErrCorruptDocument when no text can be
	// recovered, domain.ErrInvalidInput on a nil upload. Partial
	// extraction failures (such as one unreadable PDF page) are recorded
	// as document warnings instead of errors.
	Load(ctx context.Context, upload *Upload) (*domain.Document, error)
}

// LoaderRegistry selects the loader for a source kind.
type LoaderRegistry interface {
	// Get returns the loader for a kind, or domain.ErrUnsupportedFormat
	// when the kind is not recognised.
	Get(kind domain.SourceKind) (Loader, error)

	// Kinds returns every registered source kind.
	Kinds() []domain.SourceKind
}
