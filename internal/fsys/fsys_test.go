package fsys

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCreatesParents(t *testing.T) {
	w := NewMemory()

	require.NoError(t, w.EnsureDirForFile("src/pages/admin/Settings.jsx"))
	require.NoError(t, w.WriteFile("src/pages/admin/Settings.jsx", []byte("x")))

	fi, err := w.Filesystem().Stat("src/pages/admin")
	require.NoError(t, err)
	assert.True(t, fi.IsDir())

	data, err := w.ReadFile("src/pages/admin/Settings.jsx")
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}

func TestEnsureDirIsIdempotent(t *testing.T) {
	w := NewMemory()
	require.NoError(t, w.EnsureDirForFile("a/b/c.txt"))
	require.NoError(t, w.EnsureDirForFile("a/b/d.txt"))
	require.NoError(t, w.EnsureDirForFile("top.txt"))
}

func TestWriteOverwrites(t *testing.T) {
	w := NewOS(t.TempDir())

	require.NoError(t, w.WriteFile("f.txt", []byte("a much longer first version")))
	require.NoError(t, w.WriteFile("f.txt", []byte("short")))

	data, err := w.ReadFile("f.txt")
	require.NoError(t, err)
	assert.Equal(t, "short", string(data))
}

func TestWriteEmptyFile(t *testing.T) {
	dir := t.TempDir()
	w := NewOS(dir)

	require.NoError(t, w.WriteFile("empty.png", nil))

	fi, err := os.Stat(filepath.Join(dir, "empty.png"))
	require.NoError(t, err)
	assert.Zero(t, fi.Size())
}

func TestWriteOntoDirectoryFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "package.json"), 0o755))

	err := NewOS(dir).WriteFile("package.json", []byte("{}"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write package.json")
}

func TestMkdirUnderFileFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src"), []byte("file"), 0o644))

	err := NewOS(dir).EnsureDirForFile("src/App.jsx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create directory src")
}

func TestExists(t *testing.T) {
	w := NewMemory()
	assert.False(t, w.Exists("a.txt"))
	require.NoError(t, w.WriteFile("a.txt", nil))
	assert.True(t, w.Exists("a.txt"))
}
