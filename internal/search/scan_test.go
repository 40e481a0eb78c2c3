package search

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanChunk_CaseInsensitiveMembership(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	c := filepath.Join(dir, "c.txt")
	writeFile(t, a, "hello Rose garden")
	writeFile(t, b, "no match here")
	writeFile(t, c, "ROSE is a flower")

	out := scanChunk([]string{a, b, c}, []string{"rose"})
	require.Contains(t, out, "rose")
	assert.Equal(t, []string{a, c}, out["rose"])
}

func TestScanChunk_AllKeywordsKeyed(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	writeFile(t, a, "only flowers here")

	out := scanChunk([]string{a}, []string{"flowers", "absent"})
	assert.Equal(t, []string{a}, out["flowers"])
	assert.Empty(t, out["absent"])
	require.Len(t, out, 2)
}

func TestScanChunk_OriginalKeywordCasingPreserved(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	writeFile(t, a, "rose")

	out := scanChunk([]string{a}, []string{"RoSe"})
	assert.Equal(t, []string{a}, out["RoSe"])
}

func TestScanChunk_UnreadableFileSkipped(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	bad := filepath.Join(dir, "bad.txt")
	writeFile(t, good, "needle")
	writeFile(t, bad, "needle")
	require.NoError(t, os.Chmod(bad, 0o000))
	t.Cleanup(func() { _ = os.Chmod(bad, 0o644) })

	out := scanChunk([]string{bad, good}, []string{"needle"})
	assert.Equal(t, []string{good}, out["needle"])
}

func TestScanChunk_MissingFileSkipped(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.txt")
	writeFile(t, good, "needle")
	gone := filepath.Join(dir, "gone.txt")

	out := scanChunk([]string{gone, good}, []string{"needle"})
	assert.Equal(t, []string{good}, out["needle"])
}

func TestScanChunk_InvalidUTF8Tolerated(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mixed.txt")
	content := append([]byte("prefix "), 0xff, 0xfe)
	content = append(content, []byte(" NEEDLE suffix")...)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	out := scanChunk([]string{path}, []string{"needle"})
	assert.Equal(t, []string{path}, out["needle"])
}

func TestScanChunk_NonASCIIKeyword(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ua.txt")
	writeFile(t, path, "у саду росте ТРОЯНДА весною")

	out := scanChunk([]string{path}, []string{"троянда"})
	assert.Equal(t, []string{path}, out["троянда"])
}

func TestDedupeKeywords(t *testing.T) {
	got := dedupeKeywords([]string{"rose", "love", "rose", "Rose", "love"})
	assert.Equal(t, []string{"rose", "love", "Rose"}, got)
}
