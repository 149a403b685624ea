package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*LocalStore, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "uploads")
	s, err := NewLocalStore(dir, "/uploads")
	require.NoError(t, err)
	return s, dir
}

func TestSaveReturnsServableURL(t *testing.T) {
	s, dir := newTestStore(t)

	url, err := s.Save(strings.NewReader("fake image bytes"), "shopfront.JPG")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".jpg")) // extension lowercased

	data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(url, "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	s, _ := newTestStore(t)

	a, err := s.Save(strings.NewReader("one"), "photo.png")
	require.NoError(t, err)
	b, err := s.Save(strings.NewReader("two"), "photo.png")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestRemoveDeletesFile(t *testing.T) {
	s, dir := newTestStore(t)

	url, err := s.Save(strings.NewReader("bytes"), "photo.png")
	require.NoError(t, err)
	require.NoError(t, s.Remove(url))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRemoveMissingFile(t *testing.T) {
	s, _ := newTestStore(t)
	assert.Error(t, s.Remove("/uploads/never-saved.jpg"))
}

func TestRemoveRejectsTraversal(t *testing.T) {
	s, _ := newTestStore(t)
	assert.Error(t, s.Remove("/uploads/../secrets.txt"))
	assert.Error(t, s.Remove("../../etc/passwd"))
}
