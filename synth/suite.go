package synth

import (
	"errors"
	"time"

	"github.com/compliance-tools/suitegen/checklib"
	"github.com/compliance-tools/suitegen/types"
)

// SynthesizedCheck is one callable check bound to a resolved base check,
// its merged parameters and its effective level. The merged parameter map
// is captured read-only at synthesis time; Run never mutates it.
type SynthesizedCheck struct {
	// ID is the descriptor's check_id, unique within the suite
	ID string
	// MethodName is the discovery name the host enumerates, check_<id>
	MethodName string
	// Suite is the owning suite's name
	Suite string
	// Level is the effective severity after applying any descriptor override
	Level types.Level
	// Params is the merged parameter map (defaults overlaid with spec values)
	Params map[string]any
	// OutOf is the check's maximum score
	OutOf int

	check checklib.BaseCheck
}

// Spec returns the bound base check's declared metadata
func (c *SynthesizedCheck) Spec() checklib.Spec {
	return c.check.Spec()
}

// Supports reports whether the bound check can run against the dataset kind
func (c *SynthesizedCheck) Supports(kind string) bool {
	return c.check.Spec().Supports(kind)
}

// Run invokes the check lifecycle against a dataset: Setup, then
// CheckPrimaryArg, then GetResult. A FileError from CheckPrimaryArg aborts
// this check only, with a zero score and a diagnostic message.
func (c *SynthesizedCheck) Run(ds types.Dataset) *types.CheckResult {
	start := time.Now()
	result := &types.CheckResult{
		CheckID: c.ID,
		Suite:   c.Suite,
		Dataset: ds.Path(),
		Level:   c.Level,
		OutOf:   c.OutOf,
		Label:   checklib.FormatTemplate(c.check.Spec().ShortName, c.Params),
	}
	defer func() {
		result.Duration = time.Since(start)
	}()

	if err := c.check.Setup(); err != nil {
		result.Status = types.CheckStatusError
		result.Error = err
		return result
	}

	if err := c.check.CheckPrimaryArg(ds); err != nil {
		var fileErr *checklib.FileError
		if errors.As(err, &fileErr) {
			// Recoverable, check-local: zero score plus a diagnostic,
			// siblings keep running
			result.Status = types.CheckStatusError
			result.Score = 0
			result.Messages = []string{fileErr.Error()}
			result.Error = fileErr
			return result
		}
		result.Status = types.CheckStatusError
		result.Error = err
		return result
	}

	outcome, err := c.check.GetResult(ds)
	if err != nil {
		result.Status = types.CheckStatusError
		result.Error = err
		return result
	}

	result.Score = outcome.Score
	result.OutOf = outcome.OutOf
	result.Messages = outcome.Messages
	if outcome.Label != "" {
		result.Label = outcome.Label
	}
	if result.FullScore() {
		result.Status = types.CheckStatusPass
	} else {
		result.Status = types.CheckStatusFail
	}
	return result
}

// Suite is an assembled check suite: a stable name plus the ordered,
// enumerable list of synthesized checks the host discovers.
type Suite struct {
	// Name is the descriptor's suite_name
	Name string
	// SupportedKinds are the dataset kinds supported by every member check
	SupportedKinds []string

	checks  []*SynthesizedCheck
	checkID map[string]*SynthesizedCheck
}

// Checks returns the suite's checks in descriptor order
func (s *Suite) Checks() []*SynthesizedCheck {
	return s.checks
}

// Check looks up a synthesized check by its check_id
func (s *Suite) Check(id string) (*SynthesizedCheck, bool) {
	c, ok := s.checkID[id]
	return c, ok
}

// CheckIDs returns the check identifiers in descriptor order
func (s *Suite) CheckIDs() []string {
	ids := make([]string, len(s.checks))
	for i, c := range s.checks {
		ids[i] = c.ID
	}
	return ids
}

// Supports reports whether every check in the suite supports the kind
func (s *Suite) Supports(kind string) bool {
	for _, k := range s.SupportedKinds {
		if k == kind {
			return true
		}
	}
	return false
}
