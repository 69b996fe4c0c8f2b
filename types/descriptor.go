package types

// SuiteDescriptor represents the complete suite configuration parsed from YAML.
// It only lives long enough to be handed to the synthesizer.
type SuiteDescriptor struct {
	SuiteName string      `yaml:"suite_name"`
	Checks    []CheckSpec `yaml:"checks"`
}

// CheckSpec represents one check instantiation in a suite descriptor
type CheckSpec struct {
	CheckID    string         `yaml:"check_id"`
	CheckName  string         `yaml:"check_name"`
	Parameters map[string]any `yaml:"parameters,omitempty"`
	CheckLevel string         `yaml:"check_level,omitempty"`
}

// Level returns the spec's level override, or "" when the base check's own
// declared level should apply
func (s CheckSpec) Level() Level {
	return Level(s.CheckLevel)
}

// GetName returns a display name for the spec based on available fields
func (s CheckSpec) GetName() string {
	if s.CheckID != "" {
		return s.CheckID
	}
	return s.CheckName
}
