package driving

import (
	"context"

	"github.com/docsift/docsift-cli/internal/core/domain"
)

// Upload is one raw artifact handed to the engine for ingestion.
// Adapters read files (or receive uploads) themselves and pass bytes only.
type Upload struct {
	// Filename is the original filename; the source kind is derived from
	// its extension and the document ID from its sanitised form.
	Filename string

	// Content is the raw upload bytes.
	Content []byte
}

// UploadFailure records one upload that could not be loaded.
// Failures never abort the rest of the batch.
type UploadFailure struct {
	// Filename identifies the failed upload.
	Filename string

	// Err is the loader error (ErrSizeExceeded, ErrUnsupportedFormat,
	// ErrCorruptDocument, ...).
	Err error
}

// BatchReport is the outcome of ingesting one upload batch: successfully
// loaded documents alongside per-file failures, never silently dropped.
type BatchReport struct {
	// Loaded lists the documents added to the corpus, in upload order.
	Loaded []*domain.Document

	// Failures lists the uploads that were rejected.
	Failures []UploadFailure
}

// DocumentFailure records a per-document query failure, such as a match
// timeout. The query still returns results from unaffected documents.
type DocumentFailure struct {
	// DocumentID identifies the affected document.
	DocumentID string

	// Err is the failure (typically domain.ErrMatchTimeout).
	Err error
}

// SearchReport is the outcome of one pattern query across the corpus.
type SearchReport struct {
	// Pattern is the query as entered.
	Pattern string

	// Options are the options the query ran with.
	Options domain.SearchOptions

	// Matches holds every match, ordered by corpus insertion order and
	// document position. Parallel execution never changes this ordering.
	Matches []domain.Match

	// Failures lists documents that could not be fully searched.
	Failures []DocumentFailure

	// DocumentsSearched is the number of documents scanned.
	DocumentsSearched int
}

// AnalyzeOptions configures a corpus analysis query.
type AnalyzeOptions struct {
	// TopN is the number of top tokens to report (default 25).
	TopN int

	// Stopwords is an optional explicit token set to exclude.
	// Default is no filtering: complete coverage takes priority.
	Stopwords []string

	// StopwordLang optionally excludes the built-in stopword list for an
	// ISO 639-1 language code.
	StopwordLang string

	// CaseSensitive disables token case folding.
	CaseSensitive bool
}

// DocumentAnalysis holds per-document analysis output.
type DocumentAnalysis struct {
	// DocumentID identifies the document.
	DocumentID string

	// Stats are the document's size statistics.
	Stats domain.DocumentStats
}

// AnalyzeReport is the outcome of one analysis query.
type AnalyzeReport struct {
	// Top lists the most frequent tokens, deterministically ordered.
	Top []domain.TokenCount

	// Table is the full corpus frequency table (the elementwise sum of
	// the per-document tables).
	Table domain.FrequencyTable

	// PerDocument lists per-document statistics in corpus order.
	PerDocument []DocumentAnalysis

	// Aggregate is the corpus-wide statistic total.
	Aggregate domain.DocumentStats
}

// ExportFormat selects the serialization of an export.
type ExportFormat string

const (
	// ExportJSON serializes to indented JSON.
	ExportJSON ExportFormat = "json"

	// ExportText serializes to a human-readable text report.
	ExportText ExportFormat = "text"
)

// SessionService is the engine's interface to the presentation layer.
// One session owns one corpus; there is no hidden process-wide state.
// Queries are request/response: the caller serialises them, and a query's
// context cancels in-flight per-document work when superseded.
type SessionService interface {
	// Ingest loads one upload into the corpus.
	Ingest(ctx context.Context, raw []byte, filename string) (*domain.Document, error)

	// IngestBatch loads a batch, collecting per-file failures.
	IngestBatch(ctx context.Context, uploads []Upload) *BatchReport

	// Search runs a pattern query across the corpus. An invalid pattern
	// fails once with *domain.PatternSyntaxError before any document is
	// scanned; per-document timeouts land in the report's Failures.
	Search(ctx context.Context, pattern string, opts domain.SearchOptions) (*SearchReport, error)

	// Analyze computes frequency and size statistics for the corpus.
	Analyze(ctx context.Context, opts AnalyzeOptions) (*AnalyzeReport, error)

	// View serves one page of lines from a document (1-based start line).
	View(ctx context.Context, documentID string, startLine, pageSize int) (*domain.ViewPage, error)

	// Documents lists the corpus in insertion order.
	Documents(ctx context.Context) ([]*domain.Document, error)

	// Remove discards one document.
	Remove(ctx context.Context, documentID string) error

	// Reset discards the whole corpus and the query history.
	Reset(ctx context.Context) error

	// History returns up to n recent distinct search patterns, most
	// recent first.
	History(n int) []string

	// ExportSearch serializes a search report for download.
	ExportSearch(report *SearchReport, format ExportFormat) ([]byte, error)

	// ExportDocument serializes a document's extracted text for download.
	ExportDocument(ctx context.Context, documentID string) ([]byte, error)
}
