// Package loaders provides implementations of the Loader interface for
// each supported source kind, plus the registry that dispatches on kind.
// Each loader knows how to extract normalised text and an offset map from
// one format.
//
// Loaders operate on byte buffers only. No loader performs disk I/O, and
// no loader ever executes content embedded in a document.
package loaders
