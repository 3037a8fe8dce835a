package textmatch

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsift/docsift-cli/internal/core/domain"
)

func testDoc(id, text string) *domain.Document {
	return &domain.Document{
		ID:      id,
		Kind:    domain.KindText,
		Text:    text,
		Offsets: domain.NewOffsetMap(text),
	}
}

// naiveCount counts non-overlapping literal occurrences the slow way.
func naiveCount(text, pattern string) int {
	count := 0
	for pos := 0; ; {
		i := strings.Index(text[pos:], pattern)
		if i < 0 {
			break
		}
		count++
		pos += i + len(pattern)
	}
	return count
}

func TestPattern_LiteralMatchesEqualNaiveScan(t *testing.T) {
	texts := []string{
		"the cat sat on the mat",
		"aaaa",
		"abcabcabc",
		"no hits here",
		"",
	}
	patterns := []string{"a", "aa", "cat", "abc", "the"}

	for _, text := range texts {
		for _, pattern := range patterns {
			pat, err := Compile(pattern, domain.SearchOptions{CaseSensitive: true})
			require.NoError(t, err)

			matches, err := pat.FindAll(context.Background(), testDoc("d", text))
			require.NoError(t, err)
			assert.Equal(t, naiveCount(text, pattern), len(matches),
				"text=%q pattern=%q", text, pattern)
		}
	}
}

func TestPattern_MatchPositions(t *testing.T) {
	doc := testDoc("doc1.txt", "the cat sat on the mat")
	pat, err := Compile("sat", domain.SearchOptions{})
	require.NoError(t, err)

	matches, err := pat.FindAll(context.Background(), doc)
	require.NoError(t, err)
	require.Len(t, matches, 1)

	m := matches[0]
	assert.Equal(t, "doc1.txt", m.DocumentID)
	assert.Equal(t, 8, m.Start)
	assert.Equal(t, 11, m.End)
	assert.Equal(t, 1, m.Page)
	assert.Equal(t, 1, m.Line)
	assert.Equal(t, "sat", m.Text)
	assert.Equal(t, "the cat ", m.Before)
	assert.Equal(t, " on the mat", m.After)
}

func TestPattern_CaseInsensitiveByDefault(t *testing.T) {
	doc := testDoc("d", "Cat CAT cat")
	pat, err := Compile("cat", domain.SearchOptions{})
	require.NoError(t, err)

	matches, err := pat.FindAll(context.Background(), doc)
	require.NoError(t, err)
	assert.Len(t, matches, 3)

	sensitive, err := Compile("cat", domain.SearchOptions{CaseSensitive: true})
	require.NoError(t, err)
	matches, err = sensitive.FindAll(context.Background(), doc)
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestPattern_WholeWord(t *testing.T) {
	doc := testDoc("d", "cat category concatenate cat")
	pat, err := Compile("cat", domain.SearchOptions{WholeWord: true})
	require.NoError(t, err)

	matches, err := pat.FindAll(context.Background(), doc)
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestPattern_LiteralQuotesMetacharacters(t *testing.T) {
	doc := testDoc("d", "price is $5.00 (a+b)")
	pat, err := Compile("$5.00 (a+b)", domain.SearchOptions{})
	require.NoError(t, err)

	matches, err := pat.FindAll(context.Background(), doc)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "$5.00 (a+b)", matches[0].Text)
}

func TestPattern_RegexMode(t *testing.T) {
	doc := testDoc("d", "Chapter 1\nsome text\nChapter 2\nmore text")
	pat, err := Compile(`Chapter\s+\d+`, domain.SearchOptions{IsRegex: true})
	require.NoError(t, err)

	matches, err := pat.FindAll(context.Background(), doc)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, 1, matches[0].Line)
	assert.Equal(t, 3, matches[1].Line)
}

func TestPattern_AnchorsMatchLineBoundaries(t *testing.T) {
	doc := testDoc("d", "the\ndog\n")
	pat, err := Compile("^dog$", domain.SearchOptions{IsRegex: true})
	require.NoError(t, err)

	matches, err := pat.FindAll(context.Background(), doc)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "dog", matches[0].Text)
	assert.Equal(t, 2, matches[0].Line)
}

func TestPattern_AnchorsSeeTrueLineStarts(t *testing.T) {
	// A prior match must not turn an arbitrary offset into a line start
	// for the rest of the scan.
	doc := testDoc("d", "a b\nb")
	pat, err := Compile("a|^b", domain.SearchOptions{IsRegex: true, CaseSensitive: true})
	require.NoError(t, err)

	matches, err := pat.FindAll(context.Background(), doc)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, 0, matches[0].Start)
	assert.Equal(t, 4, matches[1].Start)
}

func TestPattern_WholeWordNeedsWordCharacterEdges(t *testing.T) {
	doc := testDoc("d", "the cat. sat")

	// \b after a trailing "." needs a following word character, so the
	// pattern cannot match even though the text contains it verbatim.
	pat, err := Compile("cat.", domain.SearchOptions{WholeWord: true})
	require.NoError(t, err)
	matches, err := pat.FindAll(context.Background(), doc)
	require.NoError(t, err)
	assert.Empty(t, matches)

	// The word itself still matches right before the punctuation.
	pat, err = Compile("cat", domain.SearchOptions{WholeWord: true})
	require.NoError(t, err)
	matches, err = pat.FindAll(context.Background(), doc)
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}

func TestPattern_InvalidRegex(t *testing.T) {
	_, err := Compile("(unbalanced", domain.SearchOptions{IsRegex: true})
	require.Error(t, err)

	var syntaxErr *domain.PatternSyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, "(unbalanced", syntaxErr.Pattern)
	assert.NotNil(t, syntaxErr.Cause)
}

func TestPattern_ZeroWidthMatchesTerminate(t *testing.T) {
	doc := testDoc("d", "bbb")
	pat, err := Compile("a*", domain.SearchOptions{IsRegex: true})
	require.NoError(t, err)

	matches, err := pat.FindAll(context.Background(), doc)
	require.NoError(t, err)

	// Forward-only, non-overlapping: one zero-width match per position,
	// including the end of text.
	require.Len(t, matches, 4)
	for i, m := range matches {
		assert.Equal(t, i, m.Start)
		assert.Equal(t, i, m.End)
		assert.Empty(t, m.Text)
	}
}

func TestPattern_ContextClippedToBounds(t *testing.T) {
	doc := testDoc("d", "abcdef")
	pat, err := Compile("cd", domain.SearchOptions{ContextChars: 100})
	require.NoError(t, err)

	matches, err := pat.FindAll(context.Background(), doc)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "ab", matches[0].Before)
	assert.Equal(t, "ef", matches[0].After)
}

func TestPattern_ContextNeverSplitsRunes(t *testing.T) {
	doc := testDoc("d", "ééé X ééé")
	pat, err := Compile("X", domain.SearchOptions{ContextChars: 2})
	require.NoError(t, err)

	matches, err := pat.FindAll(context.Background(), doc)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "é ", matches[0].Before)
	assert.Equal(t, " é", matches[0].After)
}

func TestPattern_RuneOffsetsNotByteOffsets(t *testing.T) {
	// Two-byte runes before the match: rune offsets must count
	// characters, not bytes.
	doc := testDoc("d", "ééé cat")
	pat, err := Compile("cat", domain.SearchOptions{})
	require.NoError(t, err)

	matches, err := pat.FindAll(context.Background(), doc)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 4, matches[0].Start)
	assert.Equal(t, 7, matches[0].End)
}

func TestScanner_EarlyStop(t *testing.T) {
	doc := testDoc("d", strings.Repeat("cat ", 1000))
	pat, err := Compile("cat", domain.SearchOptions{})
	require.NoError(t, err)

	s := pat.Scan(context.Background(), doc)
	for i := 0; i < 3; i++ {
		require.True(t, s.Next())
	}
	// Stopping early leaves the scanner consistent.
	assert.NoError(t, s.Err())
	assert.Equal(t, "cat", s.Match().Text)
}

func TestScanner_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	doc := testDoc("d", "cat cat cat")
	pat, err := Compile("cat", domain.SearchOptions{})
	require.NoError(t, err)

	s := pat.Scan(ctx, doc)
	assert.False(t, s.Next())
	assert.ErrorIs(t, s.Err(), context.Canceled)
}

func TestScanner_BudgetExceeded(t *testing.T) {
	doc := testDoc("d", "cat cat cat")
	pat, err := Compile("cat", domain.SearchOptions{})
	require.NoError(t, err)
	pat.Budget = time.Nanosecond

	s := pat.Scan(context.Background(), doc)
	time.Sleep(time.Millisecond)

	assert.False(t, s.Next())
	assert.ErrorIs(t, s.Err(), domain.ErrMatchTimeout)
}

func TestPattern_MultiPageLineNumbers(t *testing.T) {
	text, om := domain.NewPagedOffsetMap([]string{"intro line", "cat appears here"})
	doc := &domain.Document{ID: "d", Kind: domain.KindPDF, Text: text, Offsets: om}

	pat, err := Compile("cat", domain.SearchOptions{})
	require.NoError(t, err)

	matches, err := pat.FindAll(context.Background(), doc)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, 2, matches[0].Page)
	assert.Equal(t, 2, matches[0].Line)
}
