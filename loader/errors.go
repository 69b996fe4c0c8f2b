package loader

import (
	"errors"
	"fmt"
	"strings"
)

// ParseError reports a descriptor document that is not valid YAML or does
// not have the required shape (missing top-level keys, mistyped fields)
type ParseError struct {
	Err    error
	Causes []string
}

func (e *ParseError) Error() string {
	if len(e.Causes) > 0 {
		return fmt.Sprintf("invalid suite descriptor: %s", strings.Join(e.Causes, "; "))
	}
	return fmt.Sprintf("invalid suite descriptor: %v", e.Err)
}

// Unwrap implements the errors.Unwrap interface
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError checks if the error is or wraps a ParseError
func IsParseError(err error) bool {
	var parseErr *ParseError
	return err != nil && errors.As(err, &parseErr)
}

// SpecError reports structural violations in an otherwise well-formed
// descriptor: duplicate or missing check identifiers, unknown levels, an
// empty check list. Every problem in the document is listed, not just the
// first.
type SpecError struct {
	SuiteName string
	Problems  []string
}

func (e *SpecError) Error() string {
	return fmt.Sprintf("invalid suite %q: %s", e.SuiteName, strings.Join(e.Problems, "; "))
}

// IsSpecError checks if the error is or wraps a SpecError
func IsSpecError(err error) bool {
	var specErr *SpecError
	return err != nil && errors.As(err, &specErr)
}
