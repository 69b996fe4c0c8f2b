package types

import (
	"os"
	"path/filepath"
)

// Dataset is the object checks are invoked against. The host hands one
// dataset per check invocation; checks never mutate it.
type Dataset interface {
	// Kind identifies the dataset type, matched against a check's
	// supported kinds
	Kind() string
	// Path is the dataset's location, used in diagnostics and file checks
	Path() string
}

// Sizer is an optional dataset capability exposing a byte size
type Sizer interface {
	Size() (int64, error)
}

// Attributed is an optional dataset capability exposing named global
// attributes (metadata headers, conventions fields and the like)
type Attributed interface {
	Attr(name string) (string, bool)
}

// DatasetKindFile is the kind reported by plain file datasets
const DatasetKindFile = "file"

// FileDataset is a dataset backed by a single file on disk
type FileDataset struct {
	path string
}

// NewFileDataset creates a FileDataset for the given path
func NewFileDataset(path string) *FileDataset {
	return &FileDataset{path: path}
}

func (d *FileDataset) Kind() string { return DatasetKindFile }
func (d *FileDataset) Path() string { return d.path }

// Name returns the file's base name
func (d *FileDataset) Name() string {
	return filepath.Base(d.path)
}

// Size implements the Sizer capability by statting the file
func (d *FileDataset) Size() (int64, error) {
	info, err := os.Stat(d.path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}
