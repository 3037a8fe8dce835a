package services

import (
	"context"
	"fmt"

	"github.com/docsift/docsift-cli/internal/core/domain"
)

// View serves one page of lines from a document. Line numbers are
// 1-based and stable: the same startLine always yields the same lines
// for an unchanged document.
func (s *Session) View(ctx context.Context, documentID string, startLine, pageSize int) (*domain.ViewPage, error) {
	doc, err := s.corpus.Get(ctx, documentID)
	if err != nil {
		return nil, err
	}

	if pageSize <= 0 {
		pageSize = s.settings.PageSize
	}

	total := doc.LineCount()
	if startLine < 1 || startLine > total {
		return nil, fmt.Errorf("view %s: line %d of %d: %w",
			documentID, startLine, total, domain.ErrOutOfRange)
	}

	end := startLine + pageSize
	if end > total+1 {
		end = total + 1
	}

	page := &domain.ViewPage{
		DocumentID: documentID,
		Lines:      make([]domain.ViewLine, 0, end-startLine),
		HasMore:    end <= total,
	}
	for n := startLine; n < end; n++ {
		span, ok := doc.Offsets.Span(n)
		if !ok {
			return nil, fmt.Errorf("view %s: line %d: %w", documentID, n, domain.ErrOutOfRange)
		}
		text, _ := doc.Offsets.LineText(n)
		page.Lines = append(page.Lines, domain.ViewLine{
			Number: n,
			Page:   span.Page,
			Text:   text,
		})
	}

	return page, nil
}
