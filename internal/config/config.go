// Package config provides hierarchical configuration management for relpub
// using koanf. Configuration is loaded with priority: environment variables >
// project config (.relpub/config.yml) > user config (~/.config/relpub/config.yml)
// > defaults. A legacy JSON project config (.relpub/config.json) is still
// read when no YAML config is present.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration holds every path and name the publish pipeline needs.
// These were process-wide constants in earlier tooling; making them a
// struct lets tests point the pipeline at temporary directories.
type Configuration struct {
	// ArtifactsDir is the directory containing the built artifacts.
	ArtifactsDir string `koanf:"artifacts_dir"`
	// RepoDir is the checkout of the public releases repository.
	RepoDir string `koanf:"repo_dir"`
	// SetupFile is the installer artifact file name inside ArtifactsDir.
	SetupFile string `koanf:"setup_file"`
	// PortableFile is the portable package file name inside ArtifactsDir.
	PortableFile string `koanf:"portable_file"`
	// HistoryFile is the release history file name inside RepoDir.
	HistoryFile string `koanf:"history_file"`
	// RepoOwner and RepoName identify the hosted releases repository.
	RepoOwner string `koanf:"repo_owner"`
	RepoName  string `koanf:"repo_name"`
	// Remote and Branch are where the history update is pushed.
	Remote string `koanf:"remote"`
	Branch string `koanf:"branch"`
}

// RepoSlug returns the "owner/name" form used by the gh CLI.
func (c *Configuration) RepoSlug() string {
	return c.RepoOwner + "/" + c.RepoName
}

// SetupPath returns the full path of the installer artifact.
func (c *Configuration) SetupPath() string {
	return filepath.Join(c.ArtifactsDir, c.SetupFile)
}

// PortablePath returns the full path of the portable artifact.
func (c *Configuration) PortablePath() string {
	return filepath.Join(c.ArtifactsDir, c.PortableFile)
}

// HistoryPath returns the full path of the history file in the releases repo.
func (c *Configuration) HistoryPath() string {
	return filepath.Join(c.RepoDir, c.HistoryFile)
}

// LocalHistoryPath returns the path of the history copy kept next to the
// artifacts, mirroring what downstream packaging expects.
func (c *Configuration) LocalHistoryPath() string {
	return filepath.Join(c.ArtifactsDir, c.HistoryFile)
}

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Project config > User config > Defaults.
// projectConfigPath overrides the default project config location when
// non-empty (used by the --config flag).
func Load(projectConfigPath string) (*Configuration, error) {
	k := koanf.New(".")

	loadDefaults(k)

	if err := loadUserConfig(k); err != nil {
		return nil, err
	}

	if err := loadProjectConfig(k, projectConfigPath); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider("RELPUB_", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.ArtifactsDir = expandHomePath(cfg.ArtifactsDir)
	cfg.RepoDir = expandHomePath(cfg.RepoDir)

	return &cfg, nil
}

// loadDefaults applies default configuration values.
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadUserConfig loads the user-level YAML config when present.
func loadUserConfig(k *koanf.Koanf) error {
	path, err := UserConfigPath()
	if err != nil {
		return nil
	}
	if !fileExists(path) {
		return nil
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("loading user config %s: %w", path, err)
	}
	return nil
}

// loadProjectConfig loads the project config. YAML is preferred; the
// legacy JSON config is read only when no YAML config exists.
func loadProjectConfig(k *koanf.Koanf, override string) error {
	if override != "" {
		return loadConfigFile(k, override)
	}

	yamlPath := ProjectConfigPath()
	if fileExists(yamlPath) {
		return loadConfigFile(k, yamlPath)
	}

	legacyPath := LegacyProjectConfigPath()
	if fileExists(legacyPath) {
		return loadConfigFile(k, legacyPath)
	}

	return nil
}

// loadConfigFile loads a single config file, choosing the parser by extension.
func loadConfigFile(k *koanf.Koanf, path string) error {
	var parser koanf.Parser = yaml.Parser()
	if strings.HasSuffix(path, ".json") {
		parser = json.Parser()
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return fmt.Errorf("loading config %s: %w", path, err)
	}
	return nil
}

// envTransform converts environment variable names to config keys.
// Example: RELPUB_ARTIFACTS_DIR -> artifacts_dir
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "RELPUB_"))
}

// expandHomePath expands a leading ~ to the user's home directory.
func expandHomePath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
	}
	return path
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
