package domain

import "sort"

// FrequencyTable maps normalised tokens to occurrence counts.
type FrequencyTable map[string]int

// Add increments the count for a token.
func (t FrequencyTable) Add(token string) {
	t[token]++
}

// Merge adds every count from other into t and returns t.
// Corpus-level tables are the elementwise sum of per-document tables.
func (t FrequencyTable) Merge(other FrequencyTable) FrequencyTable {
	for token, count := range other {
		t[token] += count
	}
	return t
}

// Total returns the sum of all counts, which equals the number of tokens
// the table was built from.
func (t FrequencyTable) Total() int {
	total := 0
	for _, count := range t {
		total += count
	}
	return total
}

// TokenCount is one (token, count) pair from a frequency table.
type TokenCount struct {
	// Token is the normalised token.
	Token string

	// Count is its number of occurrences.
	Count int
}

// TopN returns the n most frequent tokens. Ordering is deterministic:
// descending count, ties broken by ascending token. n <= 0 or n larger
// than the table returns the whole table, ordered.
func (t FrequencyTable) TopN(n int) []TokenCount {
	entries := make([]TokenCount, 0, len(t))
	for token, count := range t {
		entries = append(entries, TokenCount{Token: token, Count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Token < entries[j].Token
	})

	if n > 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// DocumentStats holds size counts for one document or for a whole corpus.
type DocumentStats struct {
	// CharCount is the text length in characters, not bytes.
	CharCount int

	// WordCount is the number of tokens produced by the tokenizer.
	WordCount int

	// LineCount is the number of lines in the offset map.
	LineCount int
}

// Add accumulates other into s. Aggregate corpus stats are the sum of
// per-document stats.
func (s *DocumentStats) Add(other DocumentStats) {
	s.CharCount += other.CharCount
	s.WordCount += other.WordCount
	s.LineCount += other.LineCount
}
