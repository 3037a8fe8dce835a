package textstats

import (
	"github.com/docsift/docsift-cli/internal/core/domain"
)

// Collect derives size statistics for one document. It is pure and always
// succeeds on a valid document. Word counting uses the same tokenizer as
// the frequency analyzer.
func Collect(doc *domain.Document, opts TokenizerOptions) domain.DocumentStats {
	return domain.DocumentStats{
		CharCount: doc.CharCount(),
		WordCount: len(Tokenize(doc.Text, opts)),
		LineCount: doc.LineCount(),
	}
}
