package writer

import "os"

// FS abstracts the filesystem lookups the CLI layer performs around Write.
type FS interface {
	// MkdirAll creates a directory path and all necessary parents.
	MkdirAll(path string) error

	// ReadFile returns the contents of the file at path.
	ReadFile(path string) ([]byte, error)

	// Exists reports whether the given path exists.
	Exists(path string) bool
}

// OSFS implements FS using the real filesystem.
type OSFS struct{}

var _ FS = (*OSFS)(nil)

func (fs *OSFS) MkdirAll(path string) error {
	return os.MkdirAll(path, 0755)
}

func (fs *OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (fs *OSFS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
