package core

import (
	"errors"
	"fmt"
	"strings"
)

// Fatal load failures. Each one halts the session.
var (
	ErrNoDataFileFound = errors.New("no data file found")
	ErrParse           = errors.New("parse error")
	ErrSchemaMismatch  = errors.New("schema mismatch")
)

// ErrInvalidQuantity is returned when the requested quantity is below one.
var ErrInvalidQuantity = errors.New("invalid quantity: requested quantity must be a whole number of at least 1")

// LoadError records which file a load failure relates to.
// errors.Is matches both Kind and the underlying Err.
type LoadError struct {
	Kind error  // One of ErrNoDataFileFound, ErrParse, ErrSchemaMismatch
	Path string // File or directory involved
	Err  error  // Underlying cause, may be nil
}

func (e *LoadError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %s", e.Kind, e.Path)
	}
	return fmt.Sprintf("%v: %s: %v", e.Kind, e.Path, e.Err)
}

func (e *LoadError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// SchemaMismatchError lists the columns a workbook is missing.
type SchemaMismatchError struct {
	Required []string
	Missing  []string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("workbook must contain columns [%s]; missing [%s]",
		strings.Join(e.Required, ", "), strings.Join(e.Missing, ", "))
}

// Is reports whether target is ErrSchemaMismatch.
func (e *SchemaMismatchError) Is(target error) bool {
	return target == ErrSchemaMismatch
}
