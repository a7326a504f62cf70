// Package configpaths resolves the candidate configuration file locations.
package configpaths

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultConfigDir returns the per-user configuration directory for VPAD.
func DefaultConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "vpad"), nil
}

// ConfigCandidatePaths returns config file candidates grouped by format,
// lowest priority first: /etc/vpad, the user config dir, the working
// directory, then an explicitly supplied file.
func ConfigCandidatePaths(userCfg string) (jsonPaths, yamlPaths, tomlPaths []string) {
	dirs := []string{filepath.Join(string(os.PathSeparator), "etc", "vpad")}
	if dir, err := DefaultConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	dirs = append(dirs, ".")

	for _, d := range dirs {
		jsonPaths = append(jsonPaths, filepath.Join(d, "config.json"))
		yamlPaths = append(yamlPaths, filepath.Join(d, "config.yaml"), filepath.Join(d, "config.yml"))
		tomlPaths = append(tomlPaths, filepath.Join(d, "config.toml"))
	}

	if userCfg != "" {
		switch strings.ToLower(filepath.Ext(userCfg)) {
		case ".yaml", ".yml":
			yamlPaths = append(yamlPaths, userCfg)
		case ".toml":
			tomlPaths = append(tomlPaths, userCfg)
		default:
			jsonPaths = append(jsonPaths, userCfg)
		}
	}
	return jsonPaths, yamlPaths, tomlPaths
}
