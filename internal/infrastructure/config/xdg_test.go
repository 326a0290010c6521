package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setXDGHome(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(root, "cache"))
	return root
}

func TestGetXDGDirs_FromEnv(t *testing.T) {
	root := setXDGHome(t)

	dirs, err := GetXDGDirs()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "config", "webdeck"), dirs.ConfigHome)
	assert.Equal(t, filepath.Join(root, "data", "webdeck"), dirs.DataHome)
	assert.Equal(t, filepath.Join(root, "cache", "webdeck"), dirs.CacheHome)
}

func TestGetXDGDirs_DevMode(t *testing.T) {
	setXDGHome(t)
	t.Setenv("ENV", "dev")

	cwd, err := os.Getwd()
	require.NoError(t, err)

	dirs, err := GetXDGDirs()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, ".dev", "webdeck"), dirs.ConfigHome)
	assert.Equal(t, dirs.ConfigHome, dirs.DataHome)
}

func TestGetStorageFile(t *testing.T) {
	root := setXDGHome(t)
	dataDir := filepath.Join(root, "data", "webdeck")

	tests := []struct {
		backend StorageBackend
		want    string
	}{
		{StorageSQLite, filepath.Join(dataDir, "webdeck.sqlite")},
		{StorageJSON, filepath.Join(dataDir, "apps.json")},
		{StorageBolt, filepath.Join(dataDir, "webdeck.db")},
	}
	for _, tt := range tests {
		t.Run(string(tt.backend), func(t *testing.T) {
			got, err := GetStorageFile(tt.backend)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnsureDirectories(t *testing.T) {
	root := setXDGHome(t)
	require.NoError(t, EnsureDirectories())

	for _, dir := range []string{"config", "data", "cache"} {
		info, err := os.Stat(filepath.Join(root, dir, "webdeck"))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}
