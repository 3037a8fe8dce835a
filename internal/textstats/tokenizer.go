// Package textstats provides corpus analytics: tokenization, word
// frequency tables and document size statistics.
//
// The frequency analyzer and the statistics collector share one tokenizer,
// so the total of a document's frequency table always equals its word count.
package textstats

import (
	"strings"
	"unicode"
)

// TokenizerOptions configures tokenization.
type TokenizerOptions struct {
	// CaseSensitive disables case folding when true.
	CaseSensitive bool

	// IntraWord lists punctuation runes allowed inside a token when
	// surrounded by word runes on both sides, such as the apostrophe in
	// "don't". Leading and trailing punctuation is never included.
	IntraWord string
}

// DefaultTokenizerOptions returns the tokenizer configuration used by the
// engine unless a caller overrides it: case-folded, with apostrophes and
// hyphens kept inside words.
func DefaultTokenizerOptions() TokenizerOptions {
	return TokenizerOptions{IntraWord: "'-"}
}

// isWordRune reports whether r belongs to a token on its own.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// allowsIntra reports whether r may appear inside a token.
func (o TokenizerOptions) allowsIntra(r rune) bool {
	return strings.ContainsRune(o.IntraWord, r)
}

// Tokenize splits text into tokens: maximal runs of letters, digits and
// underscores, optionally joined by configured intra-word punctuation.
// Tokens are case-folded unless opts.CaseSensitive is set. The returned
// slice preserves text order.
func Tokenize(text string, opts TokenizerOptions) []string {
	var tokens []string

	runes := []rune(text)
	n := len(runes)

	for i := 0; i < n; {
		if !isWordRune(runes[i]) {
			i++
			continue
		}

		j := i + 1
		for j < n {
			if isWordRune(runes[j]) {
				j++
				continue
			}
			// Intra-word punctuation only counts with word runes on
			// both sides.
			if opts.allowsIntra(runes[j]) && j+1 < n && isWordRune(runes[j+1]) {
				j += 2
				continue
			}
			break
		}

		token := string(runes[i:j])
		if !opts.CaseSensitive {
			token = strings.ToLower(token)
		}
		tokens = append(tokens, token)
		i = j
	}

	return tokens
}
