// Package csvdoc loads CSV uploads as searchable text, one line per row.
package csvdoc

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/docsift/docsift-cli/internal/core/domain"
	"github.com/docsift/docsift-cli/internal/core/ports/driven"
	"github.com/docsift/docsift-cli/internal/loaders/textnorm"
)

// cellDelimiter joins the cells of a row into one searchable line.
const cellDelimiter = ", "

// Ensure Loader implements the interface.
var _ driven.Loader = (*Loader)(nil)

// Loader handles CSV documents.
type Loader struct{}

// New creates a new CSV loader.
func New() *Loader {
	return &Loader{}
}

// Kind returns the source kind this loader handles.
func (l *Loader) Kind() domain.SourceKind {
	return domain.KindCSV
}

// Load decodes rows and concatenates cell values with a delimiter,
// preserving one line per row so row numbers survive into search results.
// A malformed tail keeps the rows decoded before it, with a warning.
func (l *Loader) Load(ctx context.Context, upload *driven.Upload) (*domain.Document, error) {
	if upload == nil {
		return nil, domain.ErrInvalidInput
	}

	reader := csv.NewReader(strings.NewReader(textnorm.Sanitize(string(upload.Content))))
	reader.FieldsPerRecord = -1 // Ragged rows are data, not errors.
	reader.LazyQuotes = true

	var lines []string
	var warnings []string

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if len(lines) == 0 {
				return nil, fmt.Errorf("%w: %v", domain.ErrCorruptDocument, err)
			}
			warnings = append(warnings, fmt.Sprintf("row %d: %v", len(lines)+1, err))
			break
		}
		// Quoted cells may embed newlines, which would break the
		// one-line-per-row mapping.
		for i, cell := range record {
			record[i] = strings.ReplaceAll(cell, "\n", " ")
		}
		lines = append(lines, strings.Join(record, cellDelimiter))
	}

	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no rows", domain.ErrCorruptDocument)
	}

	text := strings.Join(lines, "\n")

	return &domain.Document{
		Filename:  upload.Filename,
		Kind:      domain.KindCSV,
		Text:      text,
		Offsets:   domain.NewOffsetMap(text),
		SizeBytes: int64(len(upload.Content)),
		Warnings:  warnings,
	}, nil
}
