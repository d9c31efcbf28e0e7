package deck

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation matches any *ValidationError
	ErrValidation = errors.New("validation failed")
	// ErrStorageCorrupt matches any *CorruptError
	ErrStorageCorrupt = errors.New("storage corrupt")
	// ErrStorageWrite matches any *WriteError
	ErrStorageWrite = errors.New("storage write failed")
)

// ValidationError lists the card fields that were blank after trimming
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing fields: %s", strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// CorruptError is returned by Load when the data file cannot be parsed
// as a sequence of cards.
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("data file %s is corrupt: %v", e.Path, e.Err)
}

func (e *CorruptError) Unwrap() []error { return []error{ErrStorageCorrupt, e.Err} }

// WriteError is returned by Save when the deck could not be persisted
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() []error { return []error{ErrStorageWrite, e.Err} }
