// Package jsondoc loads JSON uploads as flattened, searchable text.
//
// Each scalar becomes one "path: value" line. Object keys are visited in
// sorted order so the line mapping is stable across loads of the same
// document.
package jsondoc

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/docsift/docsift-cli/internal/core/domain"
	"github.com/docsift/docsift-cli/internal/core/ports/driven"
	"github.com/docsift/docsift-cli/internal/loaders/textnorm"
)

// Ensure Loader implements the interface.
var _ driven.Loader = (*Loader)(nil)

// Loader handles JSON documents.
type Loader struct{}

// New creates a new JSON loader.
func New() *Loader {
	return &Loader{}
}

// Kind returns the source kind this loader handles.
func (l *Loader) Kind() domain.SourceKind {
	return domain.KindJSON
}

// Load flattens the JSON value into one line per scalar.
func (l *Loader) Load(_ context.Context, upload *driven.Upload) (*domain.Document, error) {
	if upload == nil {
		return nil, domain.ErrInvalidInput
	}

	decoder := json.NewDecoder(strings.NewReader(string(upload.Content)))
	decoder.UseNumber() // Keep numbers as written, not float64 renderings.

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptDocument, err)
	}

	var lines []string
	flatten("$", value, &lines)

	text := textnorm.Sanitize(strings.Join(lines, "\n"))

	return &domain.Document{
		Filename:  upload.Filename,
		Kind:      domain.KindJSON,
		Text:      text,
		Offsets:   domain.NewOffsetMap(text),
		SizeBytes: int64(len(upload.Content)),
	}, nil
}

// flatten appends one line per scalar under path, recursing through
// objects (sorted keys) and arrays (index order).
func flatten(path string, value any, lines *[]string) {
	switch v := value.(type) {
	case map[string]any:
		if len(v) == 0 {
			*lines = append(*lines, path+": {}")
			return
		}
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			flatten(path+"."+k, v[k], lines)
		}
	case []any:
		if len(v) == 0 {
			*lines = append(*lines, path+": []")
			return
		}
		for i, elem := range v {
			flatten(fmt.Sprintf("%s[%d]", path, i), elem, lines)
		}
	case string:
		// Embedded newlines would break the one-line-per-scalar mapping.
		*lines = append(*lines, path+": "+strings.ReplaceAll(v, "\n", " "))
	case json.Number:
		*lines = append(*lines, path+": "+v.String())
	case bool:
		*lines = append(*lines, fmt.Sprintf("%s: %t", path, v))
	case nil:
		*lines = append(*lines, path+": null")
	}
}
