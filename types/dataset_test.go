package types

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b,c\n"), 0644))

	ds := NewFileDataset(path)
	assert.Equal(t, DatasetKindFile, ds.Kind())
	assert.Equal(t, path, ds.Path())
	assert.Equal(t, "report.csv", ds.Name())

	size, err := ds.Size()
	require.NoError(t, err)
	assert.Equal(t, int64(6), size)
}

func TestFileDatasetSizeMissingFile(t *testing.T) {
	ds := NewFileDataset(filepath.Join(t.TempDir(), "missing.csv"))
	_, err := ds.Size()
	assert.Error(t, err)
}
