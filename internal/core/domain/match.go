package domain

// DefaultContextChars is the context window radius used when
// SearchOptions.ContextChars is zero.
const DefaultContextChars = 100

// SearchOptions configures a pattern query.
type SearchOptions struct {
	// CaseSensitive disables case folding when false (the default).
	CaseSensitive bool

	// IsRegex treats the pattern as a regular expression instead of a
	// literal string.
	IsRegex bool

	// WholeWord restricts matches to word boundaries.
	WholeWord bool

	// ContextChars is the context window radius in characters on each side
	// of a match. Zero means DefaultContextChars.
	ContextChars int

	// DocumentIDs restricts the query to specific documents.
	// Empty means the whole corpus.
	DocumentIDs []string
}

// Match is a single pattern hit within one document.
// Matches are reported exhaustively: overlapping hits are never merged or
// deduplicated, and a query yields every non-overlapping occurrence.
type Match struct {
	// DocumentID identifies the document containing the hit.
	DocumentID string

	// Start and End are character offsets into the document text,
	// with Start < End except for zero-width regex matches.
	Start int
	End   int

	// Page and Line locate the start of the match.
	Page int
	Line int

	// Text is the matched text.
	Text string

	// Before and After are bounded context snippets around the match,
	// clipped to document boundaries and never splitting a character.
	Before string
	After  string
}
