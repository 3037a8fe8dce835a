// Package mcp provides an MCP (Model Context Protocol) server adapter
// for docsift. It lets AI assistants load documents into the in-memory
// corpus and run searches, analyses and views against it.
package mcp

import "errors"

// ErrMissingSession is returned when the session service is not provided.
var ErrMissingSession = errors.New("mcp: session service is required")
