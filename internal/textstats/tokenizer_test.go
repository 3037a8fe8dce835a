package textstats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		opts TokenizerOptions
		want []string
	}{
		{
			name: "simple words case folded",
			text: "The cat SAT",
			opts: DefaultTokenizerOptions(),
			want: []string{"the", "cat", "sat"},
		},
		{
			name: "case sensitive keeps case",
			text: "The cat SAT",
			opts: TokenizerOptions{CaseSensitive: true, IntraWord: "'-"},
			want: []string{"The", "cat", "SAT"},
		},
		{
			name: "digits and underscores",
			text: "foo_bar 42 x9",
			opts: DefaultTokenizerOptions(),
			want: []string{"foo_bar", "42", "x9"},
		},
		{
			name: "intra-word apostrophe kept",
			text: "don't stop",
			opts: DefaultTokenizerOptions(),
			want: []string{"don't", "stop"},
		},
		{
			name: "leading and trailing punctuation dropped",
			text: "'quoted' -dash-",
			opts: DefaultTokenizerOptions(),
			want: []string{"quoted", "dash"},
		},
		{
			name: "apostrophe splits without intra-word config",
			text: "don't",
			opts: TokenizerOptions{},
			want: []string{"don", "t"},
		},
		{
			name: "hyphenated word",
			text: "re-entry point",
			opts: DefaultTokenizerOptions(),
			want: []string{"re-entry", "point"},
		},
		{
			name: "unicode letters",
			text: "naïve café",
			opts: DefaultTokenizerOptions(),
			want: []string{"naïve", "café"},
		},
		{
			name: "empty text",
			text: "",
			opts: DefaultTokenizerOptions(),
			want: nil,
		},
		{
			name: "punctuation only",
			text: "... !!! ---",
			opts: DefaultTokenizerOptions(),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text, tt.opts)
			assert.Equal(t, tt.want, got)
		})
	}
}
