// Package plaintext loads plain text uploads.
package plaintext

import (
	"context"

	"github.com/docsift/docsift-cli/internal/core/domain"
	"github.com/docsift/docsift-cli/internal/core/ports/driven"
	"github.com/docsift/docsift-cli/internal/loaders/textnorm"
)

// Ensure Loader implements the interface.
var _ driven.Loader = (*Loader)(nil)

// Loader handles plain text documents.
type Loader struct{}

// New creates a new plain text loader.
func New() *Loader {
	return &Loader{}
}

// Kind returns the source kind this loader handles.
func (l *Loader) Kind() domain.SourceKind {
	return domain.KindText
}

// Load decodes the upload directly, normalising line endings and encoding.
func (l *Loader) Load(_ context.Context, upload *driven.Upload) (*domain.Document, error) {
	if upload == nil {
		return nil, domain.ErrInvalidInput
	}

	text := textnorm.Sanitize(string(upload.Content))

	return &domain.Document{
		Filename:  upload.Filename,
		Kind:      domain.KindText,
		Text:      text,
		Offsets:   domain.NewOffsetMap(text),
		SizeBytes: int64(len(upload.Content)),
	}, nil
}
