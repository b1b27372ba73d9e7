package configpaths_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/dactylkeys/internal/configpaths"
)

func TestExt(t *testing.T) {
	for in, want := range map[string]string{
		"json": "json",
		"":     "json",
		"yaml": "yaml",
		"YML":  "yaml",
		"toml": "toml",
	} {
		assert.Equal(t, want, configpaths.Ext(in), in)
	}
}

func TestConfigCandidatePathsUserPathFirst(t *testing.T) {
	tests := []struct {
		user  string
		which int
	}{
		{"/tmp/custom.json", 0},
		{"/tmp/custom.jsonc", 0},
		{"/tmp/custom", 0},
		{"/tmp/custom.yml", 1},
		{"/tmp/custom.yaml", 1},
		{"/tmp/custom.toml", 2},
	}
	for _, tt := range tests {
		t.Run(tt.user, func(t *testing.T) {
			j, y, tm := configpaths.ConfigCandidatePaths(tt.user)
			lists := [][]string{j, y, tm}
			require.NotEmpty(t, lists[tt.which])
			assert.Equal(t, tt.user, lists[tt.which][0])
			for i, l := range lists {
				if i != tt.which {
					assert.NotContains(t, l, tt.user)
				}
			}
		})
	}
}

func TestConfigCandidatePathsIncludeWorkingDir(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	j, y, tm := configpaths.ConfigCandidatePaths("")
	assert.Contains(t, j, filepath.Join(wd, "dactylkeys.json"))
	assert.Contains(t, j, filepath.Join(wd, "config.jsonc"))
	assert.Contains(t, y, filepath.Join(wd, "config.yml"))
	assert.Contains(t, tm, filepath.Join(wd, "config.toml"))
	if runtime.GOOS != "windows" {
		assert.Contains(t, tm, "/etc/dactylkeys/config.toml")
	}
}

func TestDefaultNamedConfigPath(t *testing.T) {
	dir, err := configpaths.DefaultConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "dactylkeys", filepath.Base(dir))

	p, err := configpaths.DefaultNamedConfigPath("config", "yml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), p)
}

func TestDefaultStorePathWithoutFile(t *testing.T) {
	for _, backend := range []string{"memory", "none"} {
		p, err := configpaths.DefaultStorePath(backend)
		require.NoError(t, err)
		assert.Empty(t, p)
	}
}

func TestEnsureDir(t *testing.T) {
	target := filepath.Join(t.TempDir(), "a", "b", "file.json")
	require.NoError(t, configpaths.EnsureDir(target))
	info, err := os.Stat(filepath.Dir(target))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
