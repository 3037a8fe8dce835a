package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/docsift/docsift-cli/internal/core/domain"
	"github.com/docsift/docsift-cli/internal/core/ports/driving"
)

// exportMatch is the serialized form of one match.
type exportMatch struct {
	DocumentID string `json:"document_id"`
	Start      int    `json:"start"`
	End        int    `json:"end"`
	Page       int    `json:"page"`
	Line       int    `json:"line"`
	Text       string `json:"text"`
	Before     string `json:"before"`
	After      string `json:"after"`
}

// exportFailure is the serialized form of one per-document failure.
type exportFailure struct {
	DocumentID string `json:"document_id"`
	Error      string `json:"error"`
}

// exportReport is the serialized form of a search report.
type exportReport struct {
	Pattern           string          `json:"pattern"`
	Regex             bool            `json:"regex"`
	CaseSensitive     bool            `json:"case_sensitive"`
	WholeWord         bool            `json:"whole_word"`
	DocumentsSearched int             `json:"documents_searched"`
	MatchCount        int             `json:"match_count"`
	Matches           []exportMatch   `json:"matches"`
	Failures          []exportFailure `json:"failures,omitempty"`
}

// ExportSearch serializes a search report for download.
func (s *Session) ExportSearch(report *driving.SearchReport, format driving.ExportFormat) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("export: nil report: %w", domain.ErrInvalidInput)
	}

	switch format {
	case driving.ExportJSON:
		return exportSearchJSON(report)
	case driving.ExportText:
		return exportSearchText(report), nil
	default:
		return nil, fmt.Errorf("export format %q: %w", format, domain.ErrInvalidInput)
	}
}

func exportSearchJSON(report *driving.SearchReport) ([]byte, error) {
	out := exportReport{
		Pattern:           report.Pattern,
		Regex:             report.Options.IsRegex,
		CaseSensitive:     report.Options.CaseSensitive,
		WholeWord:         report.Options.WholeWord,
		DocumentsSearched: report.DocumentsSearched,
		MatchCount:        len(report.Matches),
		Matches:           make([]exportMatch, 0, len(report.Matches)),
	}
	for _, m := range report.Matches {
		out.Matches = append(out.Matches, exportMatch{
			DocumentID: m.DocumentID,
			Start:      m.Start,
			End:        m.End,
			Page:       m.Page,
			Line:       m.Line,
			Text:       m.Text,
			Before:     m.Before,
			After:      m.After,
		})
	}
	for _, f := range report.Failures {
		out.Failures = append(out.Failures, exportFailure{
			DocumentID: f.DocumentID,
			Error:      f.Err.Error(),
		})
	}
	return json.MarshalIndent(out, "", "  ")
}

func exportSearchText(report *driving.SearchReport) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "Search results for %q\n", report.Pattern)
	fmt.Fprintf(&b, "%d matches in %d documents\n", len(report.Matches), report.DocumentsSearched)

	for i, m := range report.Matches {
		fmt.Fprintf(&b, "\n[%d] %s (page %d, line %d)\n", i+1, m.DocumentID, m.Page, m.Line)
		fmt.Fprintf(&b, "    %s>>%s<<%s\n", m.Before, m.Text, m.After)
	}

	if len(report.Failures) > 0 {
		b.WriteString("\nFailures:\n")
		for _, f := range report.Failures {
			fmt.Fprintf(&b, "  %s: %v\n", f.DocumentID, f.Err)
		}
	}

	return []byte(b.String())
}

// ExportDocument serializes a document's extracted text for download.
func (s *Session) ExportDocument(ctx context.Context, documentID string) ([]byte, error) {
	doc, err := s.corpus.Get(ctx, documentID)
	if err != nil {
		return nil, err
	}
	return []byte(doc.Text), nil
}
