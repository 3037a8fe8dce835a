package tui

import "errors"

// ErrMissingSession is returned when Ports is missing its session service.
var ErrMissingSession = errors.New("session service is required")
