package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/docsift/docsift-cli/internal/core/domain"
	"github.com/docsift/docsift-cli/internal/core/ports/driving"
	"github.com/docsift/docsift-cli/internal/logger"
	"github.com/docsift/docsift-cli/internal/textmatch"
)

// docResult holds one document's scan outcome before reassembly.
type docResult struct {
	matches []domain.Match
	err     error
}

// Search runs a pattern query across the corpus. Documents are scanned
// in parallel, but matches are reassembled in corpus insertion order so
// the result is identical to a sequential scan.
func (s *Session) Search(ctx context.Context, pattern string, opts domain.SearchOptions) (*driving.SearchReport, error) {
	logger.Section("Search")
	logger.Debug("pattern: %q regex=%t case=%t word=%t", pattern, opts.IsRegex, opts.CaseSensitive, opts.WholeWord)

	if strings.TrimSpace(pattern) == "" {
		return nil, fmt.Errorf("search: empty pattern: %w", domain.ErrInvalidInput)
	}

	if opts.ContextChars <= 0 {
		opts.ContextChars = s.settings.ContextChars
	}

	// Compile once; a bad pattern fails before any document is touched.
	pat, err := textmatch.Compile(pattern, opts)
	if err != nil {
		return nil, err
	}

	docs, err := s.selectDocuments(ctx, opts.DocumentIDs)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	results := make([]docResult, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.searchWorkers())

	for i, doc := range docs {
		g.Go(func() error {
			matches, err := pat.FindAll(gctx, doc)
			if err != nil {
				// A timeout affects only its document; cancellation
				// tears down the whole query.
				if errors.Is(err, domain.ErrMatchTimeout) {
					results[i] = docResult{err: err}
					return nil
				}
				return fmt.Errorf("search %s: %w", doc.ID, err)
			}
			results[i] = docResult{matches: matches}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &driving.SearchReport{
		Pattern:           pattern,
		Options:           opts,
		DocumentsSearched: len(docs),
	}
	for i, res := range results {
		if res.err != nil {
			report.Failures = append(report.Failures, driving.DocumentFailure{
				DocumentID: docs[i].ID,
				Err:        res.err,
			})
			continue
		}
		report.Matches = append(report.Matches, res.matches...)
	}

	s.recordHistory(pattern)

	logger.Timing("search", time.Since(start))
	logger.Info("%d matches across %d documents (%d failed)",
		len(report.Matches), report.DocumentsSearched, len(report.Failures))

	return report, nil
}

// selectDocuments resolves the search scope: the whole corpus, or the
// requested subset in corpus order. An unknown requested ID fails the
// query up front.
func (s *Session) selectDocuments(ctx context.Context, ids []string) ([]*domain.Document, error) {
	docs, err := s.corpus.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list corpus: %w", err)
	}
	if len(ids) == 0 {
		return docs, nil
	}

	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	selected := make([]*domain.Document, 0, len(ids))
	for _, doc := range docs {
		if want[doc.ID] {
			selected = append(selected, doc)
			delete(want, doc.ID)
		}
	}
	for id := range want {
		return nil, fmt.Errorf("document %q: %w", id, domain.ErrNotFound)
	}
	return selected, nil
}
