// Package signature normalizes, migrates and (de)serializes signature documents.
package signature

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is matched by errors.Is for every *MalformedInputError.
var ErrMalformedInput = errors.New("malformed input")

// MalformedInputError reports data that cannot be read as any known schema version
type MalformedInputError struct {
	Message string
	Cause   error
}

func (e *MalformedInputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed input: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed input: %s", e.Message)
}

func (e *MalformedInputError) Unwrap() error {
	return e.Cause
}

// Is makes errors.Is(err, ErrMalformedInput) hold.
func (e *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

// LoadError represents an error during file I/O
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

func malformed(format string, args ...any) *MalformedInputError {
	return &MalformedInputError{Message: fmt.Sprintf(format, args...)}
}
