// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage
//
// Only settings live on disk. Document content never does; the corpus
// is strictly in-memory.
package file
