package checklib

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"github.com/compliance-tools/suitegen/types"
)

// AttributeSpec declares the AttributeCheck metadata
var AttributeSpec = Spec{
	ShortName: "Required attribute '{attribute}'",
	MessageTemplates: []string{
		"Attribute '{attribute}' is missing",
		"Attribute '{attribute}' is empty",
	},
	SupportedKinds: []string{types.DatasetKindFile},
	Level:          types.LevelHigh,
	Required:       types.ParamSchema{"attribute": types.KindString},
	Defaults:       map[string]any{},
}

// AttributeCheck verifies a dataset declares a named global attribute with a
// non-empty value
type AttributeCheck struct {
	CheckBase
	attribute string
}

// NewAttributeCheck constructs an AttributeCheck from merged parameters
func NewAttributeCheck(params map[string]any) (BaseCheck, error) {
	var p struct {
		Attribute string `mapstructure:"attribute"`
	}
	if err := mapstructure.Decode(params, &p); err != nil {
		return nil, fmt.Errorf("decoding attribute parameters: %w", err)
	}

	return &AttributeCheck{
		CheckBase: NewCheckBase(AttributeSpec, params),
		attribute: p.Attribute,
	}, nil
}

// Setup validates the decoded parameters
func (c *AttributeCheck) Setup() error {
	if c.attribute == "" {
		return fmt.Errorf("attribute name must not be empty")
	}
	return nil
}

// GetResult scores attribute presence and non-emptiness in order. A missing
// attribute also fails the emptiness assertion, so the check scores zero.
func (c *AttributeCheck) GetResult(ds types.Dataset) (Outcome, error) {
	attrs, ok := ds.(types.Attributed)
	if !ok {
		return c.Result(0, 1), nil
	}

	value, present := attrs.Attr(c.attribute)
	if !present {
		return c.Result(0, 1), nil
	}
	if value == "" {
		return c.Result(1), nil
	}
	return c.Result(), nil
}
