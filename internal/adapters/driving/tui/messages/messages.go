// Package messages defines the bubbletea messages exchanged between the
// TUI model and its asynchronous commands.
package messages

import (
	"github.com/docsift/docsift-cli/internal/core/domain"
	"github.com/docsift/docsift-cli/internal/core/ports/driving"
)

// ViewType identifies which screen the TUI is showing.
type ViewType int

const (
	// ViewSearch is the query input screen with the result list.
	ViewSearch ViewType = iota

	// ViewAnalyze is the frequency and statistics screen.
	ViewAnalyze

	// ViewDocument is the paginated document reader.
	ViewDocument

	// ViewHelp is the key binding reference.
	ViewHelp
)

// String returns a human-readable name for the view type.
func (v ViewType) String() string {
	switch v {
	case ViewSearch:
		return "search"
	case ViewAnalyze:
		return "analyze"
	case ViewDocument:
		return "document"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// CorpusLoaded reports the outcome of loading the corpus from the
// file arguments. Failures carries per-file loader errors.
type CorpusLoaded struct {
	Report *driving.BatchReport
	Err    error
}

// SearchCompleted carries the outcome of an asynchronous search.
type SearchCompleted struct {
	Report *driving.SearchReport
	Err    error
}

// AnalyzeCompleted carries the outcome of an asynchronous analysis.
type AnalyzeCompleted struct {
	Report *driving.AnalyzeReport
	Err    error
}

// PageLoaded carries one viewer page of the document being read.
type PageLoaded struct {
	Page *domain.ViewPage
	Err  error
}

// FileChanged reports that a watched file was modified on disk.
type FileChanged struct {
	Path string
}

// WatchClosed reports that the file watcher stopped, with the reason
// if it stopped on an error.
type WatchClosed struct {
	Err error
}
