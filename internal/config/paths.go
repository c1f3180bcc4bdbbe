package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the XDG-compliant user config path
// (~/.config/relpub/config.yml).
func UserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "relpub", "config.yml"), nil
}

// ProjectConfigPath returns the project-level config path relative to the
// working directory.
func ProjectConfigPath() string {
	return filepath.Join(".relpub", "config.yml")
}

// LegacyProjectConfigPath returns the deprecated JSON project config path.
func LegacyProjectConfigPath() string {
	return filepath.Join(".relpub", "config.json")
}
