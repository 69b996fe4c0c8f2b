// Package loader parses suite descriptor YAML documents into in-memory
// descriptors, rejecting malformed or structurally invalid input before
// anything reaches the synthesizer.
package loader

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/compliance-tools/suitegen/types"
)

// LoadFile reads and parses a suite descriptor from a YAML file
func LoadFile(path string) (*types.SuiteDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading suite descriptor %s: %w", path, err)
	}
	desc, err := LoadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("loading suite descriptor %s: %w", path, err)
	}
	return desc, nil
}

// Load parses a suite descriptor from a reader
func Load(r io.Reader) (*types.SuiteDescriptor, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading suite descriptor: %w", err)
	}
	return LoadBytes(data)
}

// LoadBytes parses a suite descriptor from raw YAML. The document is
// validated against the embedded JSON Schema before decoding, then checked
// for structural rules the schema cannot express (duplicate identifiers,
// level names, empty check lists). Check order follows the YAML document.
func LoadBytes(data []byte) (*types.SuiteDescriptor, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Err: err}
	}
	if _, ok := doc.(map[string]any); !ok {
		return nil, &ParseError{Causes: []string{"document is not a mapping"}}
	}

	if causes := validateAgainstSchema(doc); len(causes) > 0 {
		return nil, &ParseError{Causes: causes}
	}

	var desc types.SuiteDescriptor
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return nil, &ParseError{Err: err}
	}

	if err := validateDescriptor(&desc); err != nil {
		return nil, err
	}

	// Parameters default to an empty mapping so merge logic downstream
	// never sees nil
	for i := range desc.Checks {
		if desc.Checks[i].Parameters == nil {
			desc.Checks[i].Parameters = map[string]any{}
		}
	}

	return &desc, nil
}

// validateDescriptor enforces per-check structural rules, collecting every
// problem in the document
func validateDescriptor(desc *types.SuiteDescriptor) error {
	var problems []string

	if len(desc.Checks) == 0 {
		problems = append(problems, "list of checks cannot be empty")
	}

	seen := make(map[string]bool)
	for i, check := range desc.Checks {
		where := fmt.Sprintf("checks[%d]", i)
		if check.CheckID == "" {
			problems = append(problems, fmt.Sprintf("%s: check_id is required", where))
		} else if seen[check.CheckID] {
			problems = append(problems, fmt.Sprintf("%s: duplicate check_id %q", where, check.CheckID))
		}
		seen[check.CheckID] = true

		if check.CheckName == "" {
			problems = append(problems, fmt.Sprintf("%s: check_name is required", where))
		}

		if check.CheckLevel != "" {
			if _, err := types.ParseLevel(check.CheckLevel); err != nil {
				problems = append(problems, fmt.Sprintf("%s: %v", where, err))
			}
		}
	}

	if len(problems) > 0 {
		return &SpecError{SuiteName: desc.SuiteName, Problems: problems}
	}
	return nil
}
