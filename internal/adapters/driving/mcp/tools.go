package mcp

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/docsift/docsift-cli/internal/core/domain"
	"github.com/docsift/docsift-cli/internal/core/ports/driving"
)

// LoadInput is the input schema for the load_document tool.
type LoadInput struct {
	Path string `json:"path" jsonschema:"path of the file to load into the corpus"`
}

// LoadOutput is the output schema for the load_document tool.
type LoadOutput struct {
	DocumentID string   `json:"document_id"`
	Kind       string   `json:"kind"`
	CharCount  int      `json:"char_count"`
	LineCount  int      `json:"line_count"`
	Warnings   []string `json:"warnings,omitempty"`
}

// SearchInput is the input schema for the search tool.
type SearchInput struct {
	Pattern       string `json:"pattern" jsonschema:"the pattern to search for"`
	Regex         bool   `json:"regex,omitempty" jsonschema:"treat the pattern as a regular expression"`
	CaseSensitive bool   `json:"case_sensitive,omitempty" jsonschema:"match case exactly"`
	WholeWord     bool   `json:"whole_word,omitempty" jsonschema:"match whole words only"`
	ContextChars  int    `json:"context_chars,omitempty" jsonschema:"context characters around each match"`
}

// MatchOutput represents a single match.
type MatchOutput struct {
	DocumentID string `json:"document_id"`
	Page       int    `json:"page"`
	Line       int    `json:"line"`
	Start      int    `json:"start"`
	End        int    `json:"end"`
	Text       string `json:"text"`
	Before     string `json:"before"`
	After      string `json:"after"`
}

// SearchOutput is the output schema for the search tool.
type SearchOutput struct {
	Matches           []MatchOutput `json:"matches"`
	Count             int           `json:"count"`
	DocumentsSearched int           `json:"documents_searched"`
	Failures          []string      `json:"failures,omitempty"`
}

// AnalyzeInput is the input schema for the analyze tool.
type AnalyzeInput struct {
	TopN         int    `json:"top_n,omitempty" jsonschema:"number of top tokens to report (default 25)"`
	StopwordLang string `json:"stopword_lang,omitempty" jsonschema:"exclude built-in stopwords for a language code such as en"`
}

// TokenOutput is one ranked token.
type TokenOutput struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// AnalyzeOutput is the output schema for the analyze tool.
type AnalyzeOutput struct {
	Top       []TokenOutput `json:"top"`
	CharCount int           `json:"char_count"`
	WordCount int           `json:"word_count"`
	LineCount int           `json:"line_count"`
}

// ViewInput is the input schema for the view_document tool.
type ViewInput struct {
	DocumentID string `json:"document_id" jsonschema:"the document to view"`
	StartLine  int    `json:"start_line,omitempty" jsonschema:"first line to return, 1-based (default 1)"`
	PageSize   int    `json:"page_size,omitempty" jsonschema:"number of lines to return"`
}

// ViewOutput is the output schema for the view_document tool.
type ViewOutput struct {
	DocumentID string   `json:"document_id"`
	Lines      []string `json:"lines"`
	FirstLine  int      `json:"first_line"`
	HasMore    bool     `json:"has_more"`
}

// ListInput is the (empty) input schema for the list_documents tool.
type ListInput struct{}

// DocumentOutput describes one corpus document.
type DocumentOutput struct {
	DocumentID string `json:"document_id"`
	Kind       string `json:"kind"`
	CharCount  int    `json:"char_count"`
	LineCount  int    `json:"line_count"`
}

// ListOutput is the output schema for the list_documents tool.
type ListOutput struct {
	Documents []DocumentOutput `json:"documents"`
	Count     int              `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "load_document",
		Description: "Load a PDF, text, Markdown, CSV or JSON file into the in-memory corpus",
	}, s.handleLoad)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search",
		Description: "Search the loaded documents for a pattern, with page/line coordinates and context",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze",
		Description: "Compute word frequencies and size statistics across the loaded documents",
	}, s.handleAnalyze)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "view_document",
		Description: "Read a window of a loaded document's extracted text",
	}, s.handleView)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_documents",
		Description: "List the documents currently in the corpus",
	}, s.handleList)
}

// handleLoad reads a file and ingests it. File access happens here in
// the adapter; the engine only ever sees bytes.
func (s *Server) handleLoad(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input LoadInput,
) (*mcp.CallToolResult, LoadOutput, error) {
	raw, err := os.ReadFile(input.Path)
	if err != nil {
		return nil, LoadOutput{}, fmt.Errorf("reading %s: %w", input.Path, err)
	}

	doc, err := s.ports.Session.Ingest(ctx, raw, input.Path)
	if err != nil {
		return nil, LoadOutput{}, err
	}

	return nil, LoadOutput{
		DocumentID: doc.ID,
		Kind:       string(doc.Kind),
		CharCount:  doc.CharCount(),
		LineCount:  doc.LineCount(),
		Warnings:   doc.Warnings,
	}, nil
}

// handleSearch handles the search tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	opts := domain.SearchOptions{
		CaseSensitive: input.CaseSensitive,
		IsRegex:       input.Regex,
		WholeWord:     input.WholeWord,
		ContextChars:  input.ContextChars,
	}

	report, err := s.ports.Session.Search(ctx, input.Pattern, opts)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Matches:           make([]MatchOutput, len(report.Matches)),
		Count:             len(report.Matches),
		DocumentsSearched: report.DocumentsSearched,
	}
	for i, m := range report.Matches {
		output.Matches[i] = MatchOutput{
			DocumentID: m.DocumentID,
			Page:       m.Page,
			Line:       m.Line,
			Start:      m.Start,
			End:        m.End,
			Text:       m.Text,
			Before:     m.Before,
			After:      m.After,
		}
	}
	for _, f := range report.Failures {
		output.Failures = append(output.Failures, fmt.Sprintf("%s: %v", f.DocumentID, f.Err))
	}

	return nil, output, nil
}

// handleAnalyze handles the analyze tool invocation.
func (s *Server) handleAnalyze(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeInput,
) (*mcp.CallToolResult, AnalyzeOutput, error) {
	report, err := s.ports.Session.Analyze(ctx, driving.AnalyzeOptions{
		TopN:         input.TopN,
		StopwordLang: input.StopwordLang,
	})
	if err != nil {
		return nil, AnalyzeOutput{}, err
	}

	output := AnalyzeOutput{
		Top:       make([]TokenOutput, len(report.Top)),
		CharCount: report.Aggregate.CharCount,
		WordCount: report.Aggregate.WordCount,
		LineCount: report.Aggregate.LineCount,
	}
	for i, tc := range report.Top {
		output.Top[i] = TokenOutput{Token: tc.Token, Count: tc.Count}
	}

	return nil, output, nil
}

// handleView handles the view_document tool invocation.
func (s *Server) handleView(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ViewInput,
) (*mcp.CallToolResult, ViewOutput, error) {
	startLine := input.StartLine
	if startLine <= 0 {
		startLine = 1
	}

	page, err := s.ports.Session.View(ctx, input.DocumentID, startLine, input.PageSize)
	if err != nil {
		return nil, ViewOutput{}, err
	}

	output := ViewOutput{
		DocumentID: page.DocumentID,
		Lines:      make([]string, len(page.Lines)),
		FirstLine:  startLine,
		HasMore:    page.HasMore,
	}
	for i, line := range page.Lines {
		output.Lines[i] = line.Text
	}

	return nil, output, nil
}

// handleList handles the list_documents tool invocation.
func (s *Server) handleList(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListInput,
) (*mcp.CallToolResult, ListOutput, error) {
	docs, err := s.ports.Session.Documents(ctx)
	if err != nil {
		return nil, ListOutput{}, err
	}

	output := ListOutput{
		Documents: make([]DocumentOutput, len(docs)),
		Count:     len(docs),
	}
	for i, doc := range docs {
		output.Documents[i] = DocumentOutput{
			DocumentID: doc.ID,
			Kind:       string(doc.Kind),
			CharCount:  doc.CharCount(),
			LineCount:  doc.LineCount(),
		}
	}

	return nil, output, nil
}
