package tui

import (
	"github.com/docsift/docsift-cli/internal/core/ports/driving"
)

// Ports holds the driven-side dependencies the TUI needs.
type Ports struct {
	Session driving.SessionService
}

// Validate checks that all required ports are set.
func (p *Ports) Validate() error {
	if p.Session == nil {
		return ErrMissingSession
	}
	return nil
}
