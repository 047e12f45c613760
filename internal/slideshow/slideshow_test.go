package slideshow

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
}

func TestDiscoverFiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.png")
	touch(t, dir, "b.txt")

	assert.Equal(t, []string{"a.png"}, Discover(dir, zap.NewNop()))
}

func TestDiscoverAllExtensions(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"1.jpg", "2.jpeg", "3.png", "4.gif", "5.webp", "6.JPG", "notes.md", "movie.mp4"} {
		touch(t, dir, name)
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.png"), 0o755))

	assert.ElementsMatch(t, []string{"1.jpg", "2.jpeg", "3.png", "4.gif", "5.webp", "6.JPG"}, Discover(dir, zap.NewNop()))
}

func TestDiscoverCreatesMissingFolder(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "slideshow_folder")

	assert.Empty(t, Discover(dir, zap.NewNop()))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestIsImage(t *testing.T) {
	assert.True(t, IsImage("photo.WebP"))
	assert.False(t, IsImage("photo"))
	assert.False(t, IsImage("png"))
}
