// Package pdf loads PDF uploads, extracting text page by page in memory.
package pdf

import (
	"bytes"
	"context"
	"fmt"

	"github.com/ledongthuc/pdf"

	"github.com/docsift/docsift-cli/internal/core/domain"
	"github.com/docsift/docsift-cli/internal/core/ports/driven"
	"github.com/docsift/docsift-cli/internal/loaders/textnorm"
)

// Ensure Loader implements the interface.
var _ driven.Loader = (*Loader)(nil)

// Loader handles PDF documents.
type Loader struct{}

// New creates a new PDF loader.
func New() *Loader {
	return &Loader{}
}

// Kind returns the source kind this loader handles.
func (l *Loader) Kind() domain.SourceKind {
	return domain.KindPDF
}

// Load extracts text from every page of the PDF. A page that fails to
// extract becomes an empty page with a warning; only a document yielding
// no text at all is rejected as corrupt. The whole extraction runs on the
// in-memory byte buffer.
func (l *Loader) Load(ctx context.Context, upload *driven.Upload) (*domain.Document, error) {
	if upload == nil {
		return nil, domain.ErrInvalidInput
	}

	reader, err := openReader(upload.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptDocument, err)
	}

	numPages := reader.NumPage()
	if numPages < 1 {
		return nil, fmt.Errorf("%w: document has no pages", domain.ErrCorruptDocument)
	}

	pageTexts := make([]string, 0, numPages)
	var warnings []string
	extracted := false

	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		text, err := pageText(reader, i)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("page %d: %v", i, err))
			pageTexts = append(pageTexts, "")
			continue
		}

		text = textnorm.Sanitize(text)
		if !textnorm.IsBlank(text) {
			extracted = true
		}
		pageTexts = append(pageTexts, text)
	}

	if !extracted {
		return nil, fmt.Errorf("%w: no text content in any page", domain.ErrCorruptDocument)
	}

	text, offsets := domain.NewPagedOffsetMap(pageTexts)

	return &domain.Document{
		Filename:  upload.Filename,
		Kind:      domain.KindPDF,
		Text:      text,
		Offsets:   offsets,
		SizeBytes: int64(len(upload.Content)),
		Warnings:  warnings,
	}, nil
}

// openReader opens the PDF from memory. The pdf library panics on some
// malformed cross-reference tables, so the panic is converted to an error
// here to keep partial-failure semantics.
func openReader(content []byte) (r *pdf.Reader, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("malformed pdf: %v", rec)
		}
	}()
	return pdf.NewReader(bytes.NewReader(content), int64(len(content)))
}

// pageText extracts the plain text of one page, converting the pdf
// library's panics on malformed content streams into per-page errors.
func pageText(reader *pdf.Reader, num int) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("extract failed: %v", rec)
		}
	}()

	page := reader.Page(num)
	if page.V.IsNull() {
		return "", fmt.Errorf("page is null")
	}
	return page.GetPlainText(nil)
}
