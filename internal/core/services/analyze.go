package services

import (
	"context"
	"fmt"
	"time"

	"github.com/docsift/docsift-cli/internal/core/domain"
	"github.com/docsift/docsift-cli/internal/core/ports/driving"
	"github.com/docsift/docsift-cli/internal/logger"
	"github.com/docsift/docsift-cli/internal/textstats"
)

// Analyze computes word frequencies and size statistics across the
// corpus. The corpus table is the elementwise sum of the per-document
// tables, and every aggregate equals the sum of its per-document parts.
func (s *Session) Analyze(ctx context.Context, opts driving.AnalyzeOptions) (*driving.AnalyzeReport, error) {
	logger.Section("Analyze")
	start := time.Now()

	docs, err := s.corpus.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list corpus: %w", err)
	}

	topN := opts.TopN
	if topN <= 0 {
		topN = domain.DefaultTopTokens
	}

	tokOpts := textstats.DefaultTokenizerOptions()
	tokOpts.CaseSensitive = opts.CaseSensitive
	filter := buildStopwordFilter(opts)

	report := &driving.AnalyzeReport{
		Table: make(domain.FrequencyTable),
	}

	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		tokens := textstats.Tokenize(doc.Text, tokOpts)
		report.Table.Merge(textstats.Frequencies(tokens, filter))

		stats := textstats.Collect(doc, tokOpts)
		report.PerDocument = append(report.PerDocument, driving.DocumentAnalysis{
			DocumentID: doc.ID,
			Stats:      stats,
		})
		report.Aggregate.Add(stats)
	}

	report.Top = report.Table.TopN(topN)

	logger.Timing("analyze", time.Since(start))
	logger.Info("%d distinct tokens across %d documents", len(report.Table), len(docs))

	return report, nil
}

// buildStopwordFilter combines the explicit stopword set with the
// built-in language list. Nil means no filtering at all.
func buildStopwordFilter(opts driving.AnalyzeOptions) textstats.StopwordFilter {
	var filters []textstats.StopwordFilter
	if len(opts.Stopwords) > 0 {
		filters = append(filters, textstats.StopwordSet(opts.Stopwords))
	}
	if opts.StopwordLang != "" {
		filters = append(filters, textstats.LanguageStopwords(opts.StopwordLang))
	}

	switch len(filters) {
	case 0:
		return nil
	case 1:
		return filters[0]
	default:
		return func(token string) bool {
			for _, f := range filters {
				if f(token) {
					return true
				}
			}
			return false
		}
	}
}
