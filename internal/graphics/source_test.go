package graphics_test

import (
	"os"
	"path/filepath"
	"testing"

	"glsample/internal/graphics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "point.vert")
	require.NoError(t, os.WriteFile(path, []byte("#version 150 core\nvoid main() {}\n"), 0o644))

	src, err := graphics.ReadSource(path)
	require.NoError(t, err)
	assert.Equal(t, "#version 150 core\nvoid main() {}\n\x00", src)
}

func TestReadSourceEmptyPath(t *testing.T) {
	_, err := graphics.ReadSource("")
	assert.ErrorIs(t, err, graphics.ErrEmptyPath)
}

func TestReadSourceMissingFile(t *testing.T) {
	_, err := graphics.ReadSource(filepath.Join(t.TempDir(), "missing.frag"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "missing.frag")
}

func TestShippedShadersAreReadable(t *testing.T) {
	for _, name := range []string{"point.vert", "point.frag"} {
		src, err := graphics.ReadSource(filepath.Join("..", "..", "assets", "shaders", name))
		require.NoError(t, err, name)
		assert.Contains(t, src, "#version 150 core")
	}
}
