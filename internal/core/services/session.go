package services

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/docsift/docsift-cli/internal/core/domain"
	"github.com/docsift/docsift-cli/internal/core/ports/driven"
	"github.com/docsift/docsift-cli/internal/core/ports/driving"
	"github.com/docsift/docsift-cli/internal/logger"
)

// Ensure Session implements the interface.
var _ driving.SessionService = (*Session)(nil)

// historyCap bounds the retained search history.
const historyCap = 50

// Session owns one corpus and answers queries against it. All state is
// volatile; dropping the Session discards everything.
type Session struct {
	id       string
	loaders  driven.LoaderRegistry
	corpus   driven.CorpusStore
	settings domain.Settings

	histMu  sync.Mutex
	history []string
}

// NewSession creates a session over an empty corpus.
func NewSession(loaders driven.LoaderRegistry, corpus driven.CorpusStore, settings domain.Settings) *Session {
	return &Session{
		id:       uuid.NewString(),
		loaders:  loaders,
		corpus:   corpus,
		settings: settings,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Settings returns the session's resolved settings.
func (s *Session) Settings() domain.Settings {
	return s.settings
}

// Ingest loads one upload into the corpus. The raw bytes pass through
// the size ceiling, the format loader and sanitisation before the
// document is admitted; a rejected upload leaves the corpus untouched.
func (s *Session) Ingest(ctx context.Context, raw []byte, filename string) (*domain.Document, error) {
	start := time.Now()

	if len(raw) == 0 {
		return nil, fmt.Errorf("ingest %q: empty upload: %w", filename, domain.ErrInvalidInput)
	}
	// The ceiling applies to the original bytes, before any parsing.
	if int64(len(raw)) > s.settings.MaxFileSizeBytes() {
		return nil, fmt.Errorf("ingest %q: %d bytes over %d MB ceiling: %w",
			filename, len(raw), s.settings.MaxFileSizeMB, domain.ErrSizeExceeded)
	}

	name := domain.SanitizeFilename(filename)
	kind := domain.KindFromFilename(name)
	if !kind.Valid() {
		return nil, fmt.Errorf("ingest %q: %w", filename, domain.ErrUnsupportedFormat)
	}

	loader, err := s.loaders.Get(kind)
	if err != nil {
		return nil, fmt.Errorf("ingest %q: %w", filename, err)
	}

	logger.Debug("ingesting %q as %s (%d bytes)", name, kind, len(raw))

	doc, err := loader.Load(ctx, &driven.Upload{
		Filename: name,
		Kind:     kind,
		Content:  raw,
	})
	if err != nil {
		return nil, fmt.Errorf("ingest %q: %w", filename, err)
	}

	id, err := s.corpus.NextID(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("ingest %q: %w", filename, err)
	}
	doc.ID = id

	if err := s.corpus.Add(ctx, doc); err != nil {
		return nil, fmt.Errorf("ingest %q: %w", filename, err)
	}

	for _, w := range doc.Warnings {
		logger.Warn("%s: %s", doc.ID, w)
	}
	logger.Timing("ingest "+doc.ID, time.Since(start))

	return doc, nil
}

// IngestBatch loads a batch of uploads, one by one in the given order.
// A failed upload is recorded and never aborts the rest of the batch.
func (s *Session) IngestBatch(ctx context.Context, uploads []driving.Upload) *driving.BatchReport {
	report := &driving.BatchReport{}

	for _, up := range uploads {
		doc, err := s.Ingest(ctx, up.Content, up.Filename)
		if err != nil {
			report.Failures = append(report.Failures, driving.UploadFailure{
				Filename: up.Filename,
				Err:      err,
			})
			continue
		}
		report.Loaded = append(report.Loaded, doc)
	}

	logger.Info("batch: %d loaded, %d failed", len(report.Loaded), len(report.Failures))
	return report
}

// Documents lists the corpus in insertion order.
func (s *Session) Documents(ctx context.Context) ([]*domain.Document, error) {
	return s.corpus.List(ctx)
}

// Remove discards one document from the corpus.
func (s *Session) Remove(ctx context.Context, documentID string) error {
	return s.corpus.Remove(ctx, documentID)
}

// Reset discards the whole corpus and the search history.
func (s *Session) Reset(ctx context.Context) error {
	if err := s.corpus.Clear(ctx); err != nil {
		return err
	}
	s.histMu.Lock()
	s.history = nil
	s.histMu.Unlock()
	return nil
}

// History returns up to n recent distinct search patterns, most recent
// first.
func (s *Session) History(n int) []string {
	s.histMu.Lock()
	defer s.histMu.Unlock()

	if n <= 0 || n > len(s.history) {
		n = len(s.history)
	}
	out := make([]string, 0, n)
	// history is stored oldest-first; read it back to front.
	for i := len(s.history) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, s.history[i])
	}
	return out
}

// recordHistory appends a pattern to the history, deduplicating and
// bounding retention.
func (s *Session) recordHistory(pattern string) {
	s.histMu.Lock()
	defer s.histMu.Unlock()

	for i, p := range s.history {
		if p == pattern {
			s.history = append(s.history[:i], s.history[i+1:]...)
			break
		}
	}
	s.history = append(s.history, pattern)
	if len(s.history) > historyCap {
		s.history = s.history[len(s.history)-historyCap:]
	}
}

// searchWorkers resolves the search fan-out width.
func (s *Session) searchWorkers() int {
	if s.settings.Workers > 0 {
		return s.settings.Workers
	}
	return runtime.NumCPU()
}
