package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the domain and the adapters built on it
var (
	ErrInvalidPath      = errors.New("invalid path")
	ErrInvalidExtension = errors.New("invalid extension")
	ErrPathTraversal    = errors.New("path traversal")
	ErrInvalidName      = errors.New("invalid name")
	ErrNotFound         = errors.New("not found")
	ErrParentNotFound   = errors.New("parent not found")
	ErrAlreadyExists    = errors.New("already exists")
	ErrUnsupportedImage = errors.New("unsupported image type")
	ErrNoFrontMatter    = errors.New("no front matter")
)

// PathError reports which inbound path failed validation
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Path)
}

func (e *PathError) Unwrap() error {
	return e.Err
}
