// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Loader: Converts one upload format into a normalised Document
//   - LoaderRegistry: Selects the loader for a source kind
//   - CorpusStore: The in-memory, insertion-ordered document collection
//   - ConfigStore: Application configuration defaults
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or loader package
package driven
