// Package textmatch implements the corpus pattern matcher.
//
// A compiled Pattern scans one document at a time through a lazy Scanner,
// reporting every non-overlapping match with its page/line coordinates and
// a bounded context window. Matching is a pure function of the document,
// the pattern and the options.
//
// Patterns compile to Go's RE2 engine, which guarantees linear-time
// matching with no backtracking. A per-document wall-clock budget is still
// enforced around the scan pass and between match yields so one
// pathological query can never hang a whole search.
package textmatch

import (
	"context"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/docsift/docsift-cli/internal/core/domain"
)

// DefaultBudget is the wall-clock budget for scanning one document.
const DefaultBudget = 2 * time.Second

// Pattern is a compiled search pattern. It is safe for concurrent use:
// scanning different documents from multiple goroutines shares one Pattern.
type Pattern struct {
	re           *regexp.Regexp
	contextChars int

	// Budget bounds the wall-clock time spent scanning one document.
	// Zero means DefaultBudget.
	Budget time.Duration
}

// Compile builds a Pattern from a query string and options. Literal
// patterns are quoted so metacharacters match themselves. Regular
// expressions compile in multi-line mode: ^ and $ match at every line
// boundary of the normalised text. An invalid regular expression yields
// a *domain.PatternSyntaxError carrying the compiler's diagnostic;
// callers surface it once, not per document.
//
// Whole-word wraps the pattern in \b anchors. \b needs a word character
// on exactly one side, so a pattern that itself starts or ends with a
// non-word character (such as "cat.") can never match in this mode.
func Compile(pattern string, opts domain.SearchOptions) (*Pattern, error) {
	expr := pattern
	if !opts.IsRegex {
		expr = regexp.QuoteMeta(pattern)
	}
	if opts.WholeWord {
		expr = `\b(?:` + expr + `)\b`
	}

	var flags string
	if !opts.CaseSensitive {
		flags += "i"
	}
	if opts.IsRegex {
		flags += "m"
	}
	if flags != "" {
		expr = "(?" + flags + ")" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &domain.PatternSyntaxError{Pattern: pattern, Cause: err}
	}

	contextChars := opts.ContextChars
	if contextChars <= 0 {
		contextChars = domain.DefaultContextChars
	}

	return &Pattern{re: re, contextChars: contextChars}, nil
}

// Scan returns a lazy scanner over every match in the document.
// The scanner is single-use; call Scan again for a fresh pass.
func (p *Pattern) Scan(ctx context.Context, doc *domain.Document) *Scanner {
	budget := p.Budget
	if budget <= 0 {
		budget = DefaultBudget
	}
	return &Scanner{
		pat:      p,
		doc:      doc,
		ctx:      ctx,
		deadline: time.Now().Add(budget),
	}
}

// FindAll drains a scanner and returns every match in the document.
// On timeout or cancellation it returns the error with no matches.
func (p *Pattern) FindAll(ctx context.Context, doc *domain.Document) ([]domain.Match, error) {
	var matches []domain.Match
	s := p.Scan(ctx, doc)
	for s.Next() {
		matches = append(matches, s.Match())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}

// Scanner iterates matches lazily in document order. Consumers may stop
// early at no additional cost. Usage follows the bufio.Scanner idiom:
//
//	s := pat.Scan(ctx, doc)
//	for s.Next() {
//	    m := s.Match()
//	    ...
//	}
//	if err := s.Err(); err != nil { ... }
type Scanner struct {
	pat      *Pattern
	doc      *domain.Document
	ctx      context.Context
	deadline time.Time

	// locs holds the match offsets from the single full-text pass.
	// The document is never searched from a mid-text offset: a resumed
	// search on a slice would let ^ and \b see a false text boundary.
	locs    [][]int
	idx     int
	scanned bool

	match domain.Match
	err   error
	done  bool
}

// Next advances to the next match. It returns false at the end of the
// document or when the scan is cancelled or out of budget; Err
// distinguishes the cases.
func (s *Scanner) Next() bool {
	if s.done {
		return false
	}

	// Checkpoint: cancellation and budget are honoured between match
	// yields, and again right after the scan pass.
	if err := s.ctx.Err(); err != nil {
		s.fail(err)
		return false
	}
	if time.Now().After(s.deadline) {
		s.fail(domain.ErrMatchTimeout)
		return false
	}

	if !s.scanned {
		s.scanned = true
		s.locs = s.pat.re.FindAllStringIndex(s.doc.Text, -1)
		if time.Now().After(s.deadline) {
			s.fail(domain.ErrMatchTimeout)
			return false
		}
	}

	if s.idx >= len(s.locs) {
		s.done = true
		return false
	}

	loc := s.locs[s.idx]
	s.idx++
	s.match = s.buildMatch(loc[0], loc[1])
	return true
}

// Match returns the current match. Valid only after a true Next.
func (s *Scanner) Match() domain.Match {
	return s.match
}

// Err returns the error that stopped the scan, if any.
func (s *Scanner) Err() error {
	return s.err
}

func (s *Scanner) fail(err error) {
	s.err = err
	s.done = true
}

// buildMatch assembles a Match from byte offsets, resolving page/line via
// the offset map and clipping the context window to document boundaries.
func (s *Scanner) buildMatch(start, end int) domain.Match {
	text := s.doc.Text
	om := s.doc.Offsets
	page, line := om.Locate(start)

	return domain.Match{
		DocumentID: s.doc.ID,
		Start:      om.RuneOffset(start),
		End:        om.RuneOffset(end),
		Page:       page,
		Line:       line,
		Text:       text[start:end],
		Before:     contextBefore(text, start, s.pat.contextChars),
		After:      contextAfter(text, end, s.pat.contextChars),
	}
}

// contextBefore returns up to n characters preceding byte offset pos,
// never splitting a multi-byte character.
func contextBefore(text string, pos, n int) string {
	start := pos
	for i := 0; i < n && start > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(text[:start])
		start -= size
	}
	return text[start:pos]
}

// contextAfter returns up to n characters following byte offset pos,
// never splitting a multi-byte character.
func contextAfter(text string, pos, n int) string {
	end := pos
	for i := 0; i < n && end < len(text); i++ {
		_, size := utf8.DecodeRuneInString(text[end:])
		end += size
	}
	return text[pos:end]
}
