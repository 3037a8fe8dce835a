package domain

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// LineSpan locates one line of normalised text.
// Spans partition the text: a span covers every byte from ByteStart up to
// the next span's ByteStart (or the end of text for the last span), so the
// line's terminating newline belongs to the line it ends.
type LineSpan struct {
	// Page is the 1-based page number. Always 1 for non-paged kinds.
	Page int

	// Line is the 1-based line number, global across the document.
	Line int

	// ByteStart is the byte offset of the first byte of the line.
	ByteStart int

	// RuneStart is the character offset of the first character of the line.
	RuneStart int
}

// OffsetMap translates character positions in a document's text to
// page/line coordinates, and between byte and rune offsets. It is built
// once by a loader and never mutated afterwards.
type OffsetMap struct {
	text    string
	spans   []LineSpan
	runeLen int
}

// NewOffsetMap builds an offset map for single-page text.
func NewOffsetMap(text string) *OffsetMap {
	return newOffsetMap(text, nil)
}

// NewPagedOffsetMap joins page texts into a single document text and builds
// the offset map recording which page each line came from. Page numbers are
// 1-based. It returns the joined text alongside the map.
func NewPagedOffsetMap(pageTexts []string) (string, *OffsetMap) {
	text := strings.Join(pageTexts, "\n")

	// Record the line number on which each page starts.
	pageStarts := make([]int, len(pageTexts))
	line := 1
	for i, pt := range pageTexts {
		pageStarts[i] = line
		line += strings.Count(pt, "\n") + 1
	}

	return text, newOffsetMap(text, pageStarts)
}

func newOffsetMap(text string, pageStarts []int) *OffsetMap {
	om := &OffsetMap{
		text:    text,
		runeLen: utf8.RuneCountInString(text),
	}

	// Every document has at least one line, even when empty.
	om.spans = append(om.spans, LineSpan{Page: 1, Line: 1})

	line := 1
	runeOff := 0
	for byteOff, r := range text {
		runeOff++
		if r != '\n' {
			continue
		}
		line++
		om.spans = append(om.spans, LineSpan{
			Page:      pageFor(pageStarts, line),
			Line:      line,
			ByteStart: byteOff + 1,
			RuneStart: runeOff,
		})
	}

	// Fix up the first span's page in the paged case.
	om.spans[0].Page = pageFor(pageStarts, 1)

	return om
}

// pageFor returns the page owning the given global line number.
func pageFor(pageStarts []int, line int) int {
	if len(pageStarts) == 0 {
		return 1
	}
	// Last page whose starting line is <= line.
	i := sort.Search(len(pageStarts), func(i int) bool {
		return pageStarts[i] > line
	})
	if i == 0 {
		return 1
	}
	return i
}

// LineCount returns the number of lines in the text.
func (m *OffsetMap) LineCount() int {
	return len(m.spans)
}

// RuneLen returns the length of the text in characters.
func (m *OffsetMap) RuneLen() int {
	return m.runeLen
}

// ByteLen returns the length of the text in bytes.
func (m *OffsetMap) ByteLen() int {
	return len(m.text)
}

// Locate resolves a byte offset to its page and line via binary search.
// Offsets past the end of text resolve to the last line.
func (m *OffsetMap) Locate(byteOff int) (page, line int) {
	s := m.spanAt(byteOff)
	return s.Page, s.Line
}

// spanAt returns the line span containing the given byte offset.
func (m *OffsetMap) spanAt(byteOff int) LineSpan {
	// First span with ByteStart > byteOff; the owner is the one before it.
	i := sort.Search(len(m.spans), func(i int) bool {
		return m.spans[i].ByteStart > byteOff
	})
	if i == 0 {
		return m.spans[0]
	}
	return m.spans[i-1]
}

// RuneOffset converts a byte offset into a character offset.
// byteOff must lie on a rune boundary within the text.
func (m *OffsetMap) RuneOffset(byteOff int) int {
	if byteOff >= len(m.text) {
		return m.runeLen
	}
	s := m.spanAt(byteOff)
	return s.RuneStart + utf8.RuneCountInString(m.text[s.ByteStart:byteOff])
}

// Span returns the line span for a 1-based line number.
func (m *OffsetMap) Span(line int) (LineSpan, bool) {
	if line < 1 || line > len(m.spans) {
		return LineSpan{}, false
	}
	return m.spans[line-1], true
}

// LineText returns the text of a 1-based line number without its
// terminating newline.
func (m *OffsetMap) LineText(line int) (string, bool) {
	s, ok := m.Span(line)
	if !ok {
		return "", false
	}
	end := len(m.text)
	if line < len(m.spans) {
		end = m.spans[line].ByteStart - 1 // Exclude the newline.
	}
	return m.text[s.ByteStart:end], true
}
