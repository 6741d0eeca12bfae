// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for trio resolution to function:
//
//   - DocumentFetcher: Resolves a document reference to its body
//   - Diagnostics: Side channel for fetch failure reporting
//   - AliasStore: Read-only alias table lookup
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Compiler: External Penrose compiler service. Without it,
//     trios are resolved but never rendered.
//   - RenderCache: Rendered SVG cache. Without it, every render
//     recompiles.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
