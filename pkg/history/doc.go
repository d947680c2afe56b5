// Package history records the outcome of validation runs.
//
// Each run is stored as a Record: a UUID, the source that was validated,
// the structural outcome, and error/warning/unknown-field counts. Two
// Store implementations are provided:
//
//   - MemoryStore: fast, bounded, no persistence (the default)
//   - SQLiteStore: durable storage for long-lived watch sessions
//
// Both are safe for concurrent use.
package history
