package source

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Local implements Source using the local file system.
// Stat and read calls block until complete; there is no asynchronous path.
type Local struct {
	root string
}

// NewLocal creates a Local source rooted at the given directory.
func NewLocal(root string) *Local {
	return &Local{root: root}
}

// Root returns the root directory of the source.
func (s *Local) Root() string {
	return s.root
}

// Exists reports whether name exists under the root and is a regular file.
// Errors other than "does not exist" (e.g. permission denied) are returned
// to the caller unhandled.
func (s *Local) Exists(_ context.Context, name string) (bool, error) {
	info, err := os.Stat(filepath.Join(s.root, filepath.FromSlash(name)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// ReadFile returns the full contents of name under the root.
func (s *Local) ReadFile(_ context.Context, name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.root, filepath.FromSlash(name)))
}
