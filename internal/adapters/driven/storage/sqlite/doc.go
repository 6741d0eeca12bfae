// Package sqlite provides the SQLite-backed render cache.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation
// that requires no CGO, enabling easy cross-compilation. Rendered SVGs
// are keyed by a content hash over the full trio, so an unchanged block
// never recompiles.
//
// # Schema
//
// The schema is managed through versioned migrations stored in the
// migrations/ directory.
//
// # Data Location
//
// By default, the database is stored at ~/.penrose-vault/data/renders.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking
// provided by SQLite in WAL mode.
package sqlite
