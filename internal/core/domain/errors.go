package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrCompilerUnavailable indicates no compiler endpoint is configured.
	// Rendering is disabled; trio resolution still works.
	ErrCompilerUnavailable = errors.New("compiler service unavailable")

	// ErrCompileFailed indicates the compiler rejected a trio.
	ErrCompileFailed = errors.New("compile failed")

	// ErrOptimizeFailed indicates layout optimization failed.
	ErrOptimizeFailed = errors.New("optimize failed")

	// ErrRenderFailed indicates SVG emission failed.
	ErrRenderFailed = errors.New("render failed")

	// ErrVaultNotConfigured indicates no vault root is set.
	ErrVaultNotConfigured = errors.New("vault not configured")

	// ErrRateLimited indicates a remote fetch hit its rate limit.
	ErrRateLimited = errors.New("rate limited")
)

// StageError carries the human-readable description returned by the
// external compiler service for a failed pipeline stage. The description
// is substituted for rendered output, never raised past the caller.
type StageError struct {
	// Stage is the pipeline stage that failed.
	Stage RenderStage

	// Message is the service's human-readable failure description.
	Message string

	// Err is the matching sentinel (ErrCompileFailed, ErrOptimizeFailed,
	// ErrRenderFailed).
	Err error
}

// Error returns the human-readable description.
func (e *StageError) Error() string {
	return e.Message
}

// Unwrap returns the sentinel error for errors.Is checks.
func (e *StageError) Unwrap() error {
	return e.Err
}
