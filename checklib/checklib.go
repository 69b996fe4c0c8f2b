// Package checklib defines the base-check contract consumed by the suite
// synthesizer, plus the stock checks shipped with the service. Deployments
// with their own check library register their definitions alongside (or
// instead of) the stock ones.
package checklib

import (
	"fmt"
	"strings"

	"github.com/compliance-tools/suitegen/types"
)

// Spec describes a base check's declared metadata: the parameter schema it
// validates against, the dataset kinds it supports, its default severity,
// and the templates its results are formatted from.
type Spec struct {
	// ShortName is the display label template for results, formatted with
	// the merged parameters
	ShortName string
	// MessageTemplates are the per-assertion failure messages. The check's
	// maximum score equals the number of templates; each failed assertion
	// loses one point and contributes its formatted template.
	MessageTemplates []string
	// SupportedKinds lists the dataset kinds this check can run against
	SupportedKinds []string
	// Level is the check's default severity, overridable per suite descriptor
	Level types.Level
	// Required maps parameter names to the kind they must decode to
	Required types.ParamSchema
	// Defaults supplies values for parameters omitted from the descriptor
	Defaults map[string]any
}

// OutOf returns the check's maximum score
func (s Spec) OutOf() int {
	return len(s.MessageTemplates)
}

// Supports reports whether the spec covers the given dataset kind
func (s Spec) Supports(kind string) bool {
	for _, k := range s.SupportedKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Outcome is the (score, max score, label, messages) tuple a check produces
// for a dataset
type Outcome struct {
	Score    int
	OutOf    int
	Label    string
	Messages []string
}

// BaseCheck is the lifecycle contract every check implementation exposes.
// The synthesizer drives the hooks in order: Setup once per invocation,
// then CheckPrimaryArg with the dataset, then GetResult if the check was
// not aborted.
type BaseCheck interface {
	// Spec returns the check's declared metadata
	Spec() Spec
	// Setup performs parameter validation and side effects; it takes no
	// dataset
	Setup() error
	// CheckPrimaryArg examines the dataset before scoring. Returning a
	// *FileError aborts the check with a zero score without failing the
	// surrounding run.
	CheckPrimaryArg(ds types.Dataset) error
	// GetResult scores the dataset
	GetResult(ds types.Dataset) (Outcome, error)
}

// Definition pairs a check's metadata with its constructor. The registry
// hands these to the synthesizer; New receives the merged parameter map.
type Definition struct {
	Spec Spec
	New  func(params map[string]any) (BaseCheck, error)
}

// FileError signals a recoverable, check-local failure: the dataset could
// not be read or is otherwise unusable by this check. The check scores zero
// with a diagnostic message and sibling checks keep running.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("cannot use dataset %s: %v", e.Path, e.Err)
}

// Unwrap implements the errors.Unwrap interface
func (e *FileError) Unwrap() error {
	return e.Err
}

// FormatTemplate substitutes {name} placeholders with values from the
// merged parameter map. Unknown placeholders are left intact so a bad
// template is visible in output rather than silently blanked.
func FormatTemplate(tmpl string, params map[string]any) string {
	out := tmpl
	for name, value := range params {
		out = strings.ReplaceAll(out, "{"+name+"}", fmt.Sprintf("%v", value))
	}
	return out
}

// CheckBase carries the spec and merged parameters common to every check
// implementation. Embed it and override the hooks that matter.
type CheckBase struct {
	spec   Spec
	params map[string]any
}

// NewCheckBase creates the embedded base for a check instance
func NewCheckBase(spec Spec, params map[string]any) CheckBase {
	return CheckBase{spec: spec, params: params}
}

// Spec returns the check's declared metadata
func (b *CheckBase) Spec() Spec {
	return b.spec
}

// Params returns the merged parameter map captured at synthesis time
func (b *CheckBase) Params() map[string]any {
	return b.params
}

// Setup is a no-op by default
func (b *CheckBase) Setup() error {
	return nil
}

// CheckPrimaryArg accepts every dataset by default
func (b *CheckBase) CheckPrimaryArg(ds types.Dataset) error {
	return nil
}

// Result builds an Outcome from the indices of failed assertions. The label
// and messages are formatted from the spec's templates with the merged
// parameters.
func (b *CheckBase) Result(failures ...int) Outcome {
	out := Outcome{
		Score: b.spec.OutOf(),
		OutOf: b.spec.OutOf(),
		Label: FormatTemplate(b.spec.ShortName, b.params),
	}
	for _, idx := range failures {
		if idx < 0 || idx >= len(b.spec.MessageTemplates) {
			continue
		}
		out.Score--
		out.Messages = append(out.Messages, FormatTemplate(b.spec.MessageTemplates[idx], b.params))
	}
	if out.Score < 0 {
		out.Score = 0
	}
	return out
}
