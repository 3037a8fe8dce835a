// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The engine is strictly in-memory: services never touch the
// filesystem or the network. Adapters hand in bytes and read back
// value results.
package services
