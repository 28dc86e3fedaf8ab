package domain

import (
	"errors"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
type HTTPError interface {
	error
	StatusCode() int
}

// Domain error types implementing HTTPError interface
type (
	// NotFoundError indicates a template, book or source was not found
	NotFoundError struct {
		Message string
	}

	// ValidationError indicates invalid input
	ValidationError struct {
		Message string
	}

	// UnavailableError indicates an optional backend (persistence, remote
	// site) cannot serve the request
	UnavailableError struct {
		Message string
	}
)

func (e *NotFoundError) Error() string    { return e.Message }
func (e *ValidationError) Error() string  { return e.Message }
func (e *UnavailableError) Error() string { return e.Message }

func (e *NotFoundError) StatusCode() int    { return http.StatusNotFound }
func (e *ValidationError) StatusCode() int  { return http.StatusBadRequest }
func (e *UnavailableError) StatusCode() int { return http.StatusServiceUnavailable }

// Is allows errors.Is() to match the typed errors against the sentinels.
func (e *NotFoundError) Is(target error) bool    { return target == ErrNotFound }
func (e *ValidationError) Is(target error) bool  { return target == ErrValidation }
func (e *UnavailableError) Is(target error) bool { return target == ErrUnavailable }

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("already exists")
	ErrValidation  = errors.New("validation failed")
	ErrUnavailable = errors.New("unavailable")
)

// ConflictError represents a resource conflict with details about the existing resource
type ConflictError struct {
	Message      string // Human-readable error message
	ResourceType string // book, chapter or verse
	ResourceID   string // ID of the existing/conflicting resource
}

// Error implements the error interface
func (e *ConflictError) Error() string {
	return e.Message
}

// StatusCode implements the HTTPError interface
func (e *ConflictError) StatusCode() int {
	return http.StatusConflict
}

// Is allows errors.Is() to match against ErrConflict
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}
