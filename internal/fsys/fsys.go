// Package fsys applies scaffold output to a filesystem: it creates parent
// directories and writes (overwrites) files. It sits on go-billy so the same
// code drives the real disk and an in-memory tree.
package fsys

import (
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/pkg/errors"
)

const (
	PermDir  os.FileMode = 0o755
	PermFile os.FileMode = 0o644
)

// Writer creates directories and files under one root.
type Writer struct {
	fs billy.Filesystem
}

// New wraps an existing billy filesystem.
func New(fs billy.Filesystem) *Writer {
	return &Writer{fs: fs}
}

// NewOS returns a writer rooted at dir on the local disk.
func NewOS(dir string) *Writer {
	return New(osfs.New(dir))
}

// NewMemory returns a writer over an empty in-memory filesystem.
func NewMemory() *Writer {
	return New(memfs.New())
}

// Filesystem exposes the underlying billy filesystem.
func (w *Writer) Filesystem() billy.Filesystem { return w.fs }

// Root returns the root the writer resolves paths against.
func (w *Writer) Root() string { return w.fs.Root() }

// EnsureDirForFile creates every missing ancestor of path. Existing
// directories are fine.
func (w *Writer) EnsureDirForFile(path string) error {
	dir := filepath.Dir(filepath.FromSlash(path))
	if dir == "." {
		return nil
	}
	if err := w.fs.MkdirAll(dir, PermDir); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", filepath.ToSlash(dir))
	}
	return nil
}

// WriteFile writes data to path, truncating any existing file.
func (w *Writer) WriteFile(path string, data []byte) error {
	if err := util.WriteFile(w.fs, filepath.FromSlash(path), data, PermFile); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}

// ReadFile returns the contents of path.
func (w *Writer) ReadFile(path string) ([]byte, error) {
	data, err := util.ReadFile(w.fs, filepath.FromSlash(path))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", path)
	}
	return data, nil
}

// Exists reports whether path exists.
func (w *Writer) Exists(path string) bool {
	_, err := w.fs.Stat(filepath.FromSlash(path))
	return err == nil
}
