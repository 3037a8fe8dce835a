package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrequencyTable_Merge(t *testing.T) {
	a := FrequencyTable{"the": 2, "cat": 1}
	b := FrequencyTable{"the": 2, "dog": 1}

	merged := a.Merge(b)

	assert.Equal(t, FrequencyTable{"the": 4, "cat": 1, "dog": 1}, merged)
	assert.Equal(t, 6, merged.Total())
}

func TestFrequencyTable_TopN(t *testing.T) {
	table := FrequencyTable{"b": 3, "a": 3, "c": 5, "d": 1}

	top := table.TopN(3)

	// Descending count, ties broken lexically ascending.
	assert.Equal(t, []TokenCount{
		{Token: "c", Count: 5},
		{Token: "a", Count: 3},
		{Token: "b", Count: 3},
	}, top)
}

func TestFrequencyTable_TopN_ZeroReturnsAll(t *testing.T) {
	table := FrequencyTable{"a": 1, "b": 2}

	top := table.TopN(0)

	assert.Len(t, top, 2)
	assert.Equal(t, "b", top[0].Token)
}

func TestDocumentStats_Add(t *testing.T) {
	total := DocumentStats{}
	total.Add(DocumentStats{CharCount: 10, WordCount: 2, LineCount: 1})
	total.Add(DocumentStats{CharCount: 5, WordCount: 1, LineCount: 3})

	assert.Equal(t, DocumentStats{CharCount: 15, WordCount: 3, LineCount: 4}, total)
}

func TestSourceKind_Valid(t *testing.T) {
	for _, k := range Kinds() {
		assert.True(t, k.Valid(), string(k))
	}
	assert.False(t, KindUnknown.Valid())
	assert.False(t, SourceKind("docx").Valid())
}
