package checklib

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"github.com/compliance-tools/suitegen/types"
)

const bytesPerMegabyte = 1 << 20

// FileSizeSpec declares the FileSizeCheck metadata
var FileSizeSpec = Spec{
	ShortName:        "File size within {threshold}Mb",
	MessageTemplates: []string{"File size exceeds the limit of {threshold}Mb"},
	SupportedKinds:   []string{types.DatasetKindFile},
	Level:            types.LevelLow,
	Required:         types.ParamSchema{"threshold": types.KindInt},
	Defaults:         map[string]any{"threshold": 4},
}

// FileSizeCheck verifies a dataset file does not exceed a size threshold,
// expressed in megabytes
type FileSizeCheck struct {
	CheckBase
	threshold int
}

// NewFileSizeCheck constructs a FileSizeCheck from merged parameters
func NewFileSizeCheck(params map[string]any) (BaseCheck, error) {
	var p struct {
		Threshold int `mapstructure:"threshold"`
	}
	if err := mapstructure.Decode(params, &p); err != nil {
		return nil, fmt.Errorf("decoding file size parameters: %w", err)
	}

	return &FileSizeCheck{
		CheckBase: NewCheckBase(FileSizeSpec, params),
		threshold: p.Threshold,
	}, nil
}

// Setup validates the decoded parameters
func (c *FileSizeCheck) Setup() error {
	if c.threshold <= 0 {
		return fmt.Errorf("threshold must be positive, got %d", c.threshold)
	}
	return nil
}

// CheckPrimaryArg confirms the dataset's size is readable
func (c *FileSizeCheck) CheckPrimaryArg(ds types.Dataset) error {
	sizer, ok := ds.(types.Sizer)
	if !ok {
		return &FileError{Path: ds.Path(), Err: fmt.Errorf("dataset does not expose a size")}
	}
	if _, err := sizer.Size(); err != nil {
		return &FileError{Path: ds.Path(), Err: err}
	}
	return nil
}

// GetResult scores the dataset against the threshold
func (c *FileSizeCheck) GetResult(ds types.Dataset) (Outcome, error) {
	size, err := ds.(types.Sizer).Size()
	if err != nil {
		return Outcome{}, err
	}
	if size > int64(c.threshold)*bytesPerMegabyte {
		return c.Result(0), nil
	}
	return c.Result(), nil
}
