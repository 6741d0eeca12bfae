// Package domain defines the core business entities for penrose-vault.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Trio: The resolved diagram bundle handed to the Penrose compiler
//   - Metadata: Annotation references extracted from diagram source
//   - AliasEntry / AliasTable: Named (domain, style) reference pairs
//   - DiagramBlock: A fenced diagram block discovered inside a note
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
