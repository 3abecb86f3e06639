package application

import (
	"errors"
	"fmt"

	"notedock/internal/domain"
)

// Sentinel errors for common conditions
var (
	ErrInvalidPath      = domain.ErrInvalidPath
	ErrInvalidExtension = domain.ErrInvalidExtension
	ErrPathTraversal    = domain.ErrPathTraversal
	ErrInvalidName      = domain.ErrInvalidName
	ErrNotFound         = domain.ErrNotFound
	ErrParentNotFound   = domain.ErrParentNotFound
	ErrAlreadyExists    = domain.ErrAlreadyExists
	ErrUnsupportedImage = domain.ErrUnsupportedImage
	ErrMissingParams    = errors.New("missing required parameters")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is lets callers match any ValidationError against ErrMissingParams
func (e *ValidationError) Is(target error) bool {
	return target == ErrMissingParams
}

// userErrors are failures caused by the request rather than by the host
var userErrors = []error{
	ErrInvalidPath,
	ErrInvalidExtension,
	ErrPathTraversal,
	ErrInvalidName,
	ErrNotFound,
	ErrParentNotFound,
	ErrAlreadyExists,
	ErrUnsupportedImage,
}

// IsUserError reports whether err should be answered as a structured
// failure result rather than a server error
func IsUserError(err error) bool {
	if err == nil {
		return false
	}
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return true
	}
	for _, target := range userErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
