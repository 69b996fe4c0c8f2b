package checklib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAttributeCheck(t *testing.T, attribute string) BaseCheck {
	t.Helper()
	check, err := NewAttributeCheck(map[string]any{"attribute": attribute})
	require.NoError(t, err)
	require.NoError(t, check.Setup())
	return check
}

func TestAttributeCheckPresent(t *testing.T) {
	check := newAttributeCheck(t, "license")
	ds := &fakeDataset{kind: "file", path: "/data/a.nc", attrs: map[string]string{"license": "CC-BY-4.0"}}

	out, err := check.GetResult(ds)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Score)
	assert.Equal(t, "Required attribute 'license'", out.Label)
	assert.Empty(t, out.Messages)
}

func TestAttributeCheckMissingScoresZero(t *testing.T) {
	check := newAttributeCheck(t, "license")
	ds := &fakeDataset{kind: "file", path: "/data/a.nc", attrs: map[string]string{}}

	out, err := check.GetResult(ds)
	require.NoError(t, err)

	// A missing attribute fails both assertions
	assert.Equal(t, 0, out.Score)
	assert.Equal(t, []string{
		"Attribute 'license' is missing",
		"Attribute 'license' is empty",
	}, out.Messages)
}

func TestAttributeCheckEmptyValue(t *testing.T) {
	check := newAttributeCheck(t, "license")
	ds := &fakeDataset{kind: "file", path: "/data/a.nc", attrs: map[string]string{"license": ""}}

	out, err := check.GetResult(ds)
	require.NoError(t, err)
	assert.Equal(t, 1, out.Score)
	assert.Equal(t, []string{"Attribute 'license' is empty"}, out.Messages)
}

func TestAttributeCheckUnattributedDataset(t *testing.T) {
	check := newAttributeCheck(t, "license")

	out, err := check.GetResult(&bareDataset{path: "/data/plain.txt"})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Score)
}

func TestAttributeCheckRejectsEmptyName(t *testing.T) {
	check, err := NewAttributeCheck(map[string]any{"attribute": ""})
	require.NoError(t, err)
	assert.Error(t, check.Setup())
}
