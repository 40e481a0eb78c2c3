package search

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestEnumerate_RecursiveAndSorted(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "z.txt"), "z")
	writeFile(t, filepath.Join(dir, "sub", "deep", "a.txt"), "a")
	writeFile(t, filepath.Join(dir, "sub", "b.txt"), "b")
	writeFile(t, filepath.Join(dir, "notes.md"), "ignored")

	files, err := Enumerate(dir, "*.txt")
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.True(t, sort.StringsAreSorted(files))
	for _, f := range files {
		assert.Equal(t, ".txt", filepath.Ext(f))
	}
}

func TestEnumerate_DefaultPattern(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "a")
	writeFile(t, filepath.Join(dir, "b.log"), "b")

	files, err := Enumerate(dir, "")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "a.txt", filepath.Base(files[0]))
}

func TestEnumerate_MissingRoot(t *testing.T) {
	_, err := Enumerate(filepath.Join(t.TempDir(), "nope"), "*.txt")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEnumerate_RootIsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	writeFile(t, path, "content")

	_, err := Enumerate(path, "*.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestEnumerate_EmptyDirectory(t *testing.T) {
	files, err := Enumerate(t.TempDir(), "*.txt")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestEnumerate_CustomPattern(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.log"), "a")
	writeFile(t, filepath.Join(dir, "b.txt"), "b")

	files, err := Enumerate(dir, "*.log")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "a.log", filepath.Base(files[0]))
}
