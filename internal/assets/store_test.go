package assets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreDeleteIfExists(t *testing.T) {
	t.Run("removes an existing file", func(t *testing.T) {
		dir := t.TempDir()
		name := "old-banner.jpg"
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("jpg"), 0o600))

		store := NewStore(dir)
		assert.NoError(t, store.DeleteIfExists(name))
		assert.NoFileExists(t, filepath.Join(dir, name))
	})

	t.Run("missing file is not an error", func(t *testing.T) {
		store := NewStore(t.TempDir())
		assert.NoError(t, store.DeleteIfExists("never-uploaded.jpg"))
	})

	t.Run("empty path is a no-op", func(t *testing.T) {
		store := NewStore(t.TempDir())
		assert.NoError(t, store.DeleteIfExists(""))
	})

	t.Run("path escaping the root is ignored", func(t *testing.T) {
		dir := t.TempDir()
		outside := filepath.Join(dir, "outside.txt")
		require.NoError(t, os.WriteFile(outside, []byte("keep"), 0o600))

		store := NewStore(filepath.Join(dir, "uploads"))
		require.NoError(t, os.MkdirAll(store.Root(), 0o750))

		assert.NoError(t, store.DeleteIfExists("../outside.txt"))
		assert.FileExists(t, outside)
	})
}

func TestStorePath(t *testing.T) {
	store := NewStore("/srv/uploads")

	assert.Equal(t, filepath.Join("/srv/uploads", "a.jpg"), store.Path("a.jpg"))
}

func TestFilename(t *testing.T) {
	name := Filename("image", "Photo.JPG")

	assert.True(t, strings.HasPrefix(name, "image-"))
	assert.True(t, strings.HasSuffix(name, ".jpg"))
	assert.NotEqual(t, name, Filename("image", "Photo.JPG"))
}

func TestAllowedExtension(t *testing.T) {
	testCases := []struct {
		name     string
		expected bool
	}{
		{"a.jpg", true},
		{"a.JPG", true},
		{"a.jpeg", true},
		{"a.png", true},
		{"a.gif", true},
		{"a.webp", true},
		{"a.svg", false},
		{"a.pdf", false},
		{"a", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, AllowedExtension(tc.name))
		})
	}
}
