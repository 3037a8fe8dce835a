package jsondoc

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
		Filename: "data.json",
		Kind:     domain.KindJSON,
		Content:  []byte(src),
	})
	require.NoError(t, err)
	return doc
}

func TestLoader_Load_FlattensScalars(t *testing.T) {
	doc := load(t, `{"name":"alice","age":30,"active":true,"note":null}`)

	// Keys are sorted for a stable line mapping.
	assert.Equal(t,
		"$.active: true\n$.age: 30\n$.name: alice\n$.note: null",
		doc.Text)
	assert.Equal(t, 4, doc.LineCount())
}

func TestLoader_Load_NestedAndArrays(t *testing.T) {
	doc := load(t, `{"users":[{"name":"bob"},{"name":"carol"}]}`)

	assert.Equal(t,
		"$.users[0].name: bob\n$.users[1].name: carol",
		doc.Text)
}

func TestLoader_Load_NumbersKeptAsWritten(t *testing.T) {
	doc := load(t, `{"pi":3.14159265358979,"big":12345678901234567890}`)

	assert.Contains(t, doc.Text, "3.14159265358979")
	assert.Contains(t, doc.Text, "12345678901234567890")
}

func TestLoader_Load_EmptyContainers(t *testing.T) {
	doc := load(t, `{"a":{},"b":[]}`)

	assert.Equal(t, "$.a: {}\n$.b: []", doc.Text)
}

func TestLoader_Load_RootScalar(t *testing.T) {
	doc := load(t, `"just a string"`)

	assert.Equal(t, "$: just a string", doc.Text)
}

func TestLoader_Load_InvalidJSON(t *testing.T) {
	_, err := New().Load(context.Background(), &driven.Upload{
		Filename: "bad.json",
		Kind:     domain.KindJSON,
		Content:  []byte("{not json"),
	})
	assert.ErrorIs(t, err, domain.ErrCorruptDocument)
}

func TestLoader_Load_MultilineStringStaysOneLine(t *testing.T) {
	doc := load(t, `{"msg":"line one\nline two"}`)

	assert.Equal(t, 1, doc.LineCount())
	assert.Contains(t, doc.Text, "line one line two")
}
