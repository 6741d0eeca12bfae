// Package file provides the TOML-backed configuration store.
//
// Settings, including the user-maintained alias table, live in a single
// TOML file (default ~/.penrose-vault/config.toml). Keys are exposed to
// core as flattened dot-notation paths and written back as nested TOML
// tables, so the file stays hand-editable:
//
//	[aliases.foo]
//	domain = "vectors.domain"
//	style = "euclidean.style"
package file
