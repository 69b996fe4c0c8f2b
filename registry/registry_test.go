package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compliance-tools/suitegen/checklib"
)

func testDefinition() checklib.Definition {
	return checklib.Definition{
		Spec: checklib.Spec{ShortName: "test check"},
		New: func(params map[string]any) (checklib.BaseCheck, error) {
			return nil, nil
		},
	}
}

func TestRegisterAndResolve(t *testing.T) {
	reg := NewRegistry(Config{})

	require.NoError(t, reg.Register("checklib.register.TestCheck", testDefinition()))

	def, err := reg.Resolve("checklib.register.TestCheck")
	require.NoError(t, err)
	assert.Equal(t, "test check", def.Spec.ShortName)
}

func TestResolveUnknownName(t *testing.T) {
	reg := NewRegistry(Config{})

	_, err := reg.Resolve("checklib.register.Nope")
	require.Error(t, err)
	assert.True(t, IsResolutionError(err))
	assert.Contains(t, err.Error(), "checklib.register.Nope")
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	reg := NewRegistry(Config{})

	require.NoError(t, reg.Register("dup", testDefinition()))
	err := reg.Register("dup", testDefinition())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegisterRejectsInvalidInput(t *testing.T) {
	reg := NewRegistry(Config{})

	assert.Error(t, reg.Register("", testDefinition()))
	assert.Error(t, reg.Register("no-constructor", checklib.Definition{}))
}

func TestNamesSorted(t *testing.T) {
	reg := NewRegistry(Config{})
	require.NoError(t, reg.Register("zeta", testDefinition()))
	require.NoError(t, reg.Register("alpha", testDefinition()))
	require.NoError(t, reg.Register("mid", testDefinition()))

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, reg.Names())
}

func TestDefaultRegistryIsSingleton(t *testing.T) {
	assert.Same(t, Default(), Default())
}
