package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingFile indicates a raw source file is absent from the season directory.
	ErrMissingFile = errors.New("missing data file")
	// ErrMalformedField indicates a field value that does not match its declared shape.
	ErrMalformedField = errors.New("malformed field")

	// errCacheMiss never leaves the package; a miss falls back to computing the table.
	errCacheMiss = errors.New("cache miss")
)

// MissingFileError reports the raw source path that could not be found.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingFile, e.Path)
}

func (e *MissingFileError) Unwrap() error { return ErrMissingFile }

// MalformedFieldError reports a value that could not be parsed.
type MalformedFieldError struct {
	Field string
	Value string
	Want  string
}

func (e *MalformedFieldError) Error() string {
	return fmt.Sprintf("%s %s: %q does not match %s", ErrMalformedField, e.Field, e.Value, e.Want)
}

func (e *MalformedFieldError) Unwrap() error { return ErrMalformedField }
