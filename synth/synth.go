// Package synth turns suite descriptors into assembled check suites. For
// each check spec it resolves the named base check through the registry,
// merges and validates parameters against the check's declared schema, and
// binds the result into a callable the host framework can discover.
// Synthesis is all-or-nothing: one faulty spec fails the whole suite with
// an aggregated error before any check runs.
package synth

import (
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/log"

	"github.com/compliance-tools/suitegen/checklib"
	"github.com/compliance-tools/suitegen/registry"
	"github.com/compliance-tools/suitegen/types"
)

// Synthesize assembles a suite from a descriptor, resolving every check
// through the given registry
func Synthesize(desc *types.SuiteDescriptor, reg *registry.Registry) (*Suite, error) {
	if desc == nil {
		return nil, fmt.Errorf("suite descriptor is required")
	}
	if reg == nil {
		return nil, fmt.Errorf("registry is required")
	}

	suite := &Suite{
		Name:    desc.SuiteName,
		checkID: make(map[string]*SynthesizedCheck, len(desc.Checks)),
	}

	var errs []error
	kindSets := make([][]string, 0, len(desc.Checks))
	seen := make(map[string]bool, len(desc.Checks))

	for _, spec := range desc.Checks {
		// The loader rejects duplicate check_ids in YAML; guard here too so
		// programmatically built descriptors never silently overwrite a check
		if seen[spec.CheckID] {
			errs = append(errs, fmt.Errorf("duplicate check_id %q", spec.CheckID))
			continue
		}
		seen[spec.CheckID] = true

		check, err := synthesizeCheck(spec, desc.SuiteName, reg)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		suite.checks = append(suite.checks, check)
		suite.checkID[check.ID] = check
		kindSets = append(kindSets, check.Spec().SupportedKinds)
	}

	if len(errs) > 0 {
		return nil, &SynthesisError{SuiteName: desc.SuiteName, Errs: errs}
	}

	suite.SupportedKinds = intersectKinds(kindSets)

	log.Debug("Synthesized suite", "suite", suite.Name,
		"checks", len(suite.checks), "supportedKinds", suite.SupportedKinds)
	return suite, nil
}

// SynthesizeAll assembles one suite per descriptor; suite names must be
// unique across the load
func SynthesizeAll(descs []*types.SuiteDescriptor, reg *registry.Registry) ([]*Suite, error) {
	suites := make([]*Suite, 0, len(descs))
	seen := make(map[string]bool)

	for _, desc := range descs {
		if seen[desc.SuiteName] {
			return nil, fmt.Errorf("duplicate suite name %q", desc.SuiteName)
		}
		seen[desc.SuiteName] = true

		suite, err := Synthesize(desc, reg)
		if err != nil {
			return nil, err
		}
		suites = append(suites, suite)
	}
	return suites, nil
}

// synthesizeCheck builds one callable check from its spec
func synthesizeCheck(spec types.CheckSpec, suiteName string, reg *registry.Registry) (*SynthesizedCheck, error) {
	def, err := reg.Resolve(spec.CheckName)
	if err != nil {
		return nil, fmt.Errorf("check %q: %w", spec.GetName(), err)
	}

	params := MergeParams(def.Spec.Defaults, spec.Parameters)
	if err := validateParams(spec.CheckID, def.Spec.Required, params); err != nil {
		return nil, err
	}

	level := effectiveLevel(spec, def.Spec)

	base, err := def.New(params)
	if err != nil {
		return nil, fmt.Errorf("check %q: constructing %s: %w", spec.GetName(), spec.CheckName, err)
	}

	return &SynthesizedCheck{
		ID:         spec.CheckID,
		MethodName: "check_" + spec.CheckID,
		Suite:      suiteName,
		Level:      level,
		Params:     params,
		OutOf:      def.Spec.OutOf(),
		check:      base,
	}, nil
}

// MergeParams overlays spec parameters onto the check's defaults. Spec
// values win. Neither input map is mutated and the merge is deterministic,
// so merging twice yields identical results.
func MergeParams(defaults, params map[string]any) map[string]any {
	merged := make(map[string]any, len(defaults)+len(params))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range params {
		merged[k] = v
	}
	return merged
}

// validateParams confirms every required key is present in the merged map
// with the declared kind, reporting all violations at once
func validateParams(checkID string, required types.ParamSchema, merged map[string]any) error {
	if len(required) == 0 {
		return nil
	}

	names := make([]string, 0, len(required))
	for name := range required {
		names = append(names, name)
	}
	sort.Strings(names)

	var problems []string
	for _, name := range names {
		want := required[name]
		value, ok := merged[name]
		if !ok {
			problems = append(problems, fmt.Sprintf("required parameter %q is missing", name))
			continue
		}
		if got := types.KindOf(value); got != want {
			problems = append(problems, fmt.Sprintf("parameter %q must be %s, got %s", name, want, got))
		}
	}

	if len(problems) > 0 {
		return &ValidationError{CheckID: checkID, Problems: problems}
	}
	return nil
}

// effectiveLevel applies the descriptor's override, falling back to the
// check's declared level, with LOW as the floor default
func effectiveLevel(spec types.CheckSpec, checkSpec checklib.Spec) types.Level {
	if spec.CheckLevel != "" {
		return spec.Level()
	}
	if checkSpec.Level.Valid() {
		return checkSpec.Level
	}
	return types.LevelLow
}

// intersectKinds computes the dataset kinds supported by every check,
// preserving the first check's declaration order
func intersectKinds(sets [][]string) []string {
	if len(sets) == 0 {
		return nil
	}

	var out []string
	for _, kind := range sets[0] {
		inAll := true
		for _, set := range sets[1:] {
			found := false
			for _, k := range set {
				if k == kind {
					found = true
					break
				}
			}
			if !found {
				inAll = false
				break
			}
		}
		if inAll {
			out = append(out, kind)
		}
	}
	return out
}
