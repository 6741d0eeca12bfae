// Package services implements the driving port interfaces.
// Services contain the trio-resolution pipeline and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no external service dependencies.
package services
