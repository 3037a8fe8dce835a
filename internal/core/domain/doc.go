// Package domain defines the core business entities for Docsift.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: A normalised, immutable in-memory document
//   - OffsetMap: Character-position to page/line translation
//   - Match: A single pattern hit with its context window
//   - FrequencyTable: Token occurrence counts
//   - DocumentStats: Character/word/line counts
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
