package synth

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError reports a check spec whose merged parameters do not
// satisfy the base check's declared schema. Every missing or mismatched key
// is listed so the caller sees the complete problem set.
type ValidationError struct {
	CheckID  string
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid parameters for check %q: %s", e.CheckID, strings.Join(e.Problems, "; "))
}

// IsValidationError checks if the error is or wraps a ValidationError
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return err != nil && errors.As(err, &valErr)
}

// SynthesisError aggregates every faulty check spec in a suite. Synthesis
// is all-or-nothing: when this is returned, no partial suite exists.
type SynthesisError struct {
	SuiteName string
	Errs      []error
}

func (e *SynthesisError) Error() string {
	msgs := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("cannot synthesize suite %q: %s", e.SuiteName, strings.Join(msgs, "; "))
}

// Unwrap exposes the per-spec errors for errors.Is / errors.As
func (e *SynthesisError) Unwrap() []error {
	return e.Errs
}

// IsSynthesisError checks if the error is or wraps a SynthesisError
func IsSynthesisError(err error) bool {
	var synthErr *SynthesisError
	return err != nil && errors.As(err, &synthErr)
}
