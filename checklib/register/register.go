// Package register wires the stock checklib checks into a registry under
// the names suite descriptors refer to them by. Names keep the
// module.ClassName form so descriptors written for the original check
// library keep working unchanged.
package register

import (
	"github.com/compliance-tools/suitegen/checklib"
	"github.com/compliance-tools/suitegen/registry"
)

// Stock check names as they appear in suite descriptors
const (
	FileSizeCheck   = "checklib.register.FileSizeCheck"
	AttributeCheck  = "checklib.register.AttributeCheck"
	NameFormatCheck = "checklib.register.NameFormatCheck"
)

// Definitions returns the stock check definitions keyed by descriptor name
func Definitions() map[string]checklib.Definition {
	return map[string]checklib.Definition{
		FileSizeCheck:   {Spec: checklib.FileSizeSpec, New: checklib.NewFileSizeCheck},
		AttributeCheck:  {Spec: checklib.AttributeSpec, New: checklib.NewAttributeCheck},
		NameFormatCheck: {Spec: checklib.NameFormatSpec, New: checklib.NewNameFormatCheck},
	}
}

// Register adds every stock check to the given registry
func Register(reg *registry.Registry) error {
	for name, def := range Definitions() {
		if err := reg.Register(name, def); err != nil {
			return err
		}
	}
	return nil
}
