package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	require.NoError(t, EnsureDir(dir, 0))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, os.FileMode(DefaultDirPerm), info.Mode().Perm())

	// Idempotent
	assert.NoError(t, EnsureDir(dir, 0))
}

func TestConfigDir(t *testing.T) {
	assert.Equal(t, "deepl-mcp", filepath.Base(ConfigDir()))
}

func TestDownloadDir(t *testing.T) {
	assert.Equal(t, "downloads", filepath.Base(DownloadDir()))
}
