// Package markdown loads Markdown uploads.
//
// The source is loaded as written: headings, emphasis markers and link
// syntax stay in the text so searches can target them and line numbers
// match the file. StripMarkup produces the rendered plain-text form for
// callers that want markup dropped, such as rendered exports.
package markdown

import (
	"bytes"
	"context"
	"regexp"
	"strings"

	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"

	"github.com/docsift/docsift-cli/internal/core/domain"
	"github.com/docsift/docsift-cli/internal/core/ports/driven"
	"github.com/docsift/docsift-cli/internal/loaders/textnorm"
)

// Ensure Loader implements the interface.
var _ driven.Loader = (*Loader)(nil)

// Loader handles Markdown documents.
type Loader struct{}

// New creates a new Markdown loader.
func New() *Loader {
	return &Loader{}
}

// Kind returns the source kind this loader handles.
func (l *Loader) Kind() domain.SourceKind {
	return domain.KindMarkdown
}

// Load decodes the upload directly, normalising line endings and encoding.
// Markup is kept verbatim so match offsets and viewer line numbers refer
// to the source file.
func (l *Loader) Load(_ context.Context, upload *driven.Upload) (*domain.Document, error) {
	if upload == nil {
		return nil, domain.ErrInvalidInput
	}

	text := textnorm.Sanitize(string(upload.Content))

	return &domain.Document{
		Filename:  upload.Filename,
		Kind:      domain.KindMarkdown,
		Text:      text,
		Offsets:   domain.NewOffsetMap(text),
		SizeBytes: int64(len(upload.Content)),
	}, nil
}

var multiNewlines = regexp.MustCompile(`\n{3,}`)

// StripMarkup walks the Markdown AST collecting text leaves, with
// formatting markers dropped and block-level boundaries as newlines.
// The result has its own line numbering, distinct from the source.
func StripMarkup(src []byte) string {
	// A parser instance is single-use.
	p := parser.NewWithExtensions(parser.CommonExtensions)
	root := p.Parse(src)

	var b strings.Builder
	ast.WalkFunc(root, func(node ast.Node, entering bool) ast.WalkStatus {
		switch n := node.(type) {
		case *ast.Text:
			if entering {
				b.Write(n.Literal)
			}
		case *ast.Code:
			if entering {
				b.Write(n.Literal)
			}
		case *ast.CodeBlock:
			if entering {
				b.Write(bytes.TrimRight(n.Literal, "\n"))
				b.WriteByte('\n')
			}
		case *ast.Softbreak, *ast.Hardbreak:
			if entering {
				b.WriteByte('\n')
			}
		case *ast.TableCell:
			if !entering {
				b.WriteByte('\t')
			}
		case *ast.Heading, *ast.Paragraph, *ast.ListItem, *ast.BlockQuote, *ast.TableRow:
			if !entering {
				b.WriteByte('\n')
			}
		}
		return ast.GoToNext
	})

	text := multiNewlines.ReplaceAllString(b.String(), "\n\n")
	return strings.TrimSpace(text)
}
