package loaders

import (
	"fmt"

	"github.com/docsift/docsift-cli/internal/core/domain"
	"github.com/docsift/docsift-cli/internal/core/ports/driven"
	"github.com/docsift/docsift-cli/internal/loaders/csvdoc"
	"github.com/docsift/docsift-cli/internal/loaders/jsondoc"
	"github.com/docsift/docsift-cli/internal/loaders/markdown"
	"github.com/docsift/docsift-cli/internal/loaders/pdf"
	"github.com/docsift/docsift-cli/internal/loaders/plaintext"
)

// Ensure Registry implements the interface.
var _ driven.LoaderRegistry = (*Registry)(nil)

// Registry dispatches uploads to the loader for their source kind.
// Adding a format means adding one loader package and one Register call.
type Registry struct {
	loaders map[domain.SourceKind]driven.Loader
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{loaders: make(map[domain.SourceKind]driven.Loader)}
}

// DefaultRegistry creates a registry with every built-in loader.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(plaintext.New())
	r.Register(markdown.New())
	r.Register(pdf.New())
	r.Register(csvdoc.New())
	r.Register(jsondoc.New())
	return r
}

// Register adds a loader, replacing any previous loader for its kind.
func (r *Registry) Register(loader driven.Loader) {
	r.loaders[loader.Kind()] = loader
}

// Get returns the loader for a kind.
func (r *Registry) Get(kind domain.SourceKind) (driven.Loader, error) {
	loader, ok := r.loaders[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, string(kind))
	}
	return loader, nil
}

// Kinds returns every registered source kind.
func (r *Registry) Kinds() []domain.SourceKind {
	kinds := make([]domain.SourceKind, 0, len(r.loaders))
	for _, k := range domain.Kinds() {
		if _, ok := r.loaders[k]; ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}
