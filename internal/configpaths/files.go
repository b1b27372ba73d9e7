// Package configpaths resolves where configuration and saved layouts live.
package configpaths

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/adrg/xdg"
)

const (
	appName    = "dactylkeys"
	systemDir  = "/etc/dactylkeys"
	configBase = "config"
)

// DefaultConfigDir returns the platform-specific configuration directory.
func DefaultConfigDir() (string, error) {
	if xdg.ConfigHome == "" {
		return "", errors.New("no user config directory")
	}
	return filepath.Join(xdg.ConfigHome, appName), nil
}

// DefaultConfigPath returns the default config file path for the given format.
func DefaultConfigPath(format string) (string, error) {
	return DefaultNamedConfigPath(configBase, format)
}

// DefaultNamedConfigPath returns the default config file path for the given
// format and base name.
func DefaultNamedConfigPath(baseName, format string) (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, baseName+"."+Ext(format)), nil
}

// Ext returns the file extension used for a config format.
func Ext(format string) string {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return "yaml"
	case "toml":
		return "toml"
	default:
		return "json"
	}
}

// DefaultStorePath returns the path of the saved layout for a store backend,
// creating its parent directory. Backends without a file return "".
func DefaultStorePath(backend string) (string, error) {
	var name string
	switch strings.ToLower(backend) {
	case "file", "":
		name = "keymap.json"
	case "sqlite":
		name = "keymap.db"
	default:
		return "", nil
	}
	return xdg.DataFile(filepath.Join(appName, name))
}

// EnsureDir ensures the directory for a given file path exists.
func EnsureDir(filePath string) error {
	return os.MkdirAll(filepath.Dir(filePath), 0o755)
}

// ConfigCandidatePaths builds candidate paths for config files per format.
// If userPath is provided, it is prioritized and routed to the matching loader by extension.
func ConfigCandidatePaths(userPath string) (jsonPaths, yamlPaths, tomlPaths []string) {
	add := func(slice *[]string, p string) { *slice = append(*slice, p) }
	addAll := func(dir string, bases ...string) {
		for _, base := range bases {
			add(&jsonPaths, filepath.Join(dir, base+".json"))
			add(&jsonPaths, filepath.Join(dir, base+".jsonc"))
			add(&yamlPaths, filepath.Join(dir, base+".yaml"))
			add(&yamlPaths, filepath.Join(dir, base+".yml"))
			add(&tomlPaths, filepath.Join(dir, base+".toml"))
		}
	}

	if userPath != "" {
		switch filepath.Ext(userPath) {
		case ".yaml", ".yml":
			add(&yamlPaths, userPath)
		case ".toml":
			add(&tomlPaths, userPath)
		default:
			add(&jsonPaths, userPath)
		}
	}

	if wd, err := os.Getwd(); err == nil {
		addAll(wd, appName, configBase)
	}

	if dir, err := DefaultConfigDir(); err == nil {
		addAll(dir, configBase)
	}

	if runtime.GOOS != "windows" {
		addAll(systemDir, configBase)
	}

	return
}
