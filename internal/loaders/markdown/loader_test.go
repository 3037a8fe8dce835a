package markdown

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsift/docsift-cli/internal/core/domain"
	"github.com/docsift/docsift-cli/internal/core/ports/driven"
)

func load(t *testing.T, src string) *domain.Document {
	t.Helper()
	doc, err := New().Load(context.Background(), &driven.Upload{
		Filename: "doc.md",
		Kind:     domain.KindMarkdown,
		Content:  []byte(src),
	})
	require.NoError(t, err)
	return doc
}

func TestLoader_Load_KeepsMarkupSearchable(t *testing.T) {
	doc := load(t, "# Title\n\nsome **bold** text\n")

	assert.Contains(t, doc.Text, "# Title")
	assert.Contains(t, doc.Text, "**bold**")
}

func TestLoader_Load_LineNumbersMatchSource(t *testing.T) {
	doc := load(t, "# Title\n\n- alpha\n- beta\n")

	first, ok := doc.Offsets.LineText(1)
	require.True(t, ok)
	assert.Equal(t, "# Title", first)

	third, ok := doc.Offsets.LineText(3)
	require.True(t, ok)
	assert.Equal(t, "- alpha", third)
}

func TestLoader_Load_NormalisesLineEndings(t *testing.T) {
	doc := load(t, "one\r\ntwo\r\nthree")

	assert.Equal(t, "one\ntwo\nthree", doc.Text)
	assert.Equal(t, 3, doc.LineCount())
}

func TestLoader_Load_NilUpload(t *testing.T) {
	_, err := New().Load(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStripMarkup(t *testing.T) {
	t.Run("drops formatting markers", func(t *testing.T) {
		text := StripMarkup([]byte("# Title\n\nSome **bold** and *italic* text.\n"))

		assert.Contains(t, text, "Title")
		assert.Contains(t, text, "Some bold and italic text.")
		assert.NotContains(t, text, "#")
		assert.NotContains(t, text, "*")
	})

	t.Run("links keep their text", func(t *testing.T) {
		text := StripMarkup([]byte("See [the docs](https://example.com/docs) for details."))

		assert.Contains(t, text, "the docs")
		assert.NotContains(t, text, "](")
	})

	t.Run("code blocks stay", func(t *testing.T) {
		text := StripMarkup([]byte("Before\n\n```\nfunc main() {}\n```\n\nAfter"))

		assert.Contains(t, text, "func main() {}")
		assert.Contains(t, text, "Before")
		assert.Contains(t, text, "After")
	})
}
