package models

import "errors"

// ValidationError describes a rejected request field. Surfaced as a 400
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Message
}

// Error codes for rendering failures
const (
	ErrCodeRenderTimeout  = "RENDER_TIMEOUT"
	ErrCodeRenderFailed   = "RENDER_FAILED"
	ErrCodeStorageFailed  = "STORAGE_FAILED"
	ErrCodeBinaryNotFound = "BINARY_NOT_FOUND"
)

// RenderError represents a fatal failure of the external rasterizer or of
// artifact persistence. Surfaced as a 500 and never retried automatically
type RenderError struct {
	Code    string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// NewRenderError creates a new RenderError
func NewRenderError(code, message string, cause error) *RenderError {
	return &RenderError{Code: code, Message: message, Cause: cause}
}

// ErrNotFound is returned when an artifact no longer exists, e.g. after its
// retention window expired
var ErrNotFound = errors.New("file not found")
