package salesgen

import (
	"errors"
	"fmt"
)

// ErrInvalidOptions indicates generation options that cannot produce a fixture.
var ErrInvalidOptions = errors.New("invalid options")

// ErrInvalidCatalog indicates a catalog with empty or inconsistent tables.
var ErrInvalidCatalog = errors.New("invalid catalog")

// ErrFixtureInvalid indicates a workbook that does not satisfy the fixture invariants.
var ErrFixtureInvalid = errors.New("fixture invalid")

// WriteError represents a failure to create or save the output file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("cannot write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// NewWriteError creates a new WriteError.
func NewWriteError(path string, err error) *WriteError {
	return &WriteError{
		Path: path,
		Err:  err,
	}
}
