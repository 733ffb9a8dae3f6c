package domain

import (
	"errors"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
// Implementing this interface lets the presentation layer map new error
// kinds without touching the handlers.
type HTTPError interface {
	error
	StatusCode() int
}

// Domain error types implementing HTTPError interface
type (
	// NotFoundError indicates a referenced folder or document id does
	// not exist in the store
	NotFoundError struct {
		Message string
	}

	// ValidationError indicates caller-supplied data fails a structural
	// precondition (empty name or title, unrecognized permission)
	ValidationError struct {
		Message string
	}

	// CycleError indicates a folder re-parent would make a folder its
	// own ancestor; rejected before any mutation
	CycleError struct {
		Message string
	}
)

// Error implementations
func (e *NotFoundError) Error() string   { return e.Message }
func (e *ValidationError) Error() string { return e.Message }
func (e *CycleError) Error() string      { return e.Message }

// StatusCode implementations (HTTPError interface)
func (e *NotFoundError) StatusCode() int   { return http.StatusNotFound }
func (e *ValidationError) StatusCode() int { return http.StatusBadRequest }
func (e *CycleError) StatusCode() int      { return http.StatusConflict }

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrCycle      = errors.New("folder cycle")
)

// Is implementations so errors.Is() matches struct errors against the
// corresponding sentinel
func (e *NotFoundError) Is(target error) bool   { return target == ErrNotFound }
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
func (e *CycleError) Is(target error) bool      { return target == ErrCycle }
