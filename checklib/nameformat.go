package checklib

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/go-viper/mapstructure/v2"

	"github.com/compliance-tools/suitegen/types"
)

// NameFormatSpec declares the NameFormatCheck metadata
var NameFormatSpec = Spec{
	ShortName:        "File name matches '{pattern}'",
	MessageTemplates: []string{"File name does not match pattern '{pattern}'"},
	SupportedKinds:   []string{types.DatasetKindFile},
	Level:            types.LevelMedium,
	Required:         types.ParamSchema{"pattern": types.KindString},
	Defaults:         map[string]any{},
}

// NameFormatCheck verifies a dataset's file name matches a naming convention
// expressed as a regular expression
type NameFormatCheck struct {
	CheckBase
	pattern string
	re      *regexp.Regexp
}

// NewNameFormatCheck constructs a NameFormatCheck from merged parameters
func NewNameFormatCheck(params map[string]any) (BaseCheck, error) {
	var p struct {
		Pattern string `mapstructure:"pattern"`
	}
	if err := mapstructure.Decode(params, &p); err != nil {
		return nil, fmt.Errorf("decoding name format parameters: %w", err)
	}

	return &NameFormatCheck{
		CheckBase: NewCheckBase(NameFormatSpec, params),
		pattern:   p.Pattern,
	}, nil
}

// Setup compiles the pattern; a malformed regex fails the check before any
// dataset is examined
func (c *NameFormatCheck) Setup() error {
	re, err := regexp.Compile(c.pattern)
	if err != nil {
		return fmt.Errorf("invalid name pattern %q: %w", c.pattern, err)
	}
	c.re = re
	return nil
}

// GetResult scores the dataset's base name against the pattern
func (c *NameFormatCheck) GetResult(ds types.Dataset) (Outcome, error) {
	if c.re == nil {
		if err := c.Setup(); err != nil {
			return Outcome{}, err
		}
	}
	if !c.re.MatchString(filepath.Base(ds.Path())) {
		return c.Result(0), nil
	}
	return c.Result(), nil
}
