package textstats

import (
	"strings"

	"github.com/bbalet/stopwords"

	"github.com/docsift/docsift-cli/internal/core/domain"
)

// StopwordFilter reports whether a token should be excluded from a
// frequency table. A nil filter keeps every token: complete coverage is
// the default and filtering is strictly opt-in.
type StopwordFilter func(token string) bool

// StopwordSet builds a filter from an explicit set of tokens. The set is
// matched case-insensitively against already-normalised tokens.
func StopwordSet(tokens []string) StopwordFilter {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[strings.ToLower(strings.TrimSpace(t))] = struct{}{}
	}
	return func(token string) bool {
		_, ok := set[strings.ToLower(token)]
		return ok
	}
}

// LanguageStopwords builds a filter from the built-in stopword list for an
// ISO 639-1 language code ("en", "fr", ...). Unknown codes yield a filter
// that keeps everything.
func LanguageStopwords(langCode string) StopwordFilter {
	return func(token string) bool {
		// CleanString strips registered stopwords; a token that comes
		// back empty is one of them.
		return strings.TrimSpace(stopwords.CleanString(token, langCode, false)) == ""
	}
}

// Frequencies builds a frequency table from a token sequence, excluding
// tokens matched by the optional filter.
func Frequencies(tokens []string, filter StopwordFilter) domain.FrequencyTable {
	table := make(domain.FrequencyTable, len(tokens)/2+1)
	for _, token := range tokens {
		if filter != nil && filter(token) {
			continue
		}
		table.Add(token)
	}
	return table
}
