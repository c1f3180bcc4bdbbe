package config

// GetDefaults returns the default configuration values keyed by koanf path.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"artifacts_dir": "./release_artifacts",
		"repo_dir":      "",
		"setup_file":    "Setup.exe",
		"portable_file": "Portable.zip",
		"history_file":  "release-history.json",
		"repo_owner":    "",
		"repo_name":     "",
		"remote":        "origin",
		"branch":        "main",
	}
}

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options.
func GetDefaultConfigTemplate() string {
	return `# relpub configuration
# All values can be overridden with RELPUB_* environment variables,
# e.g. RELPUB_ARTIFACTS_DIR=/tmp/artifacts

# Where the built artifacts live
artifacts_dir: ./release_artifacts    # Directory containing the two build artifacts
setup_file: Setup.exe                 # Installer artifact file name
portable_file: Portable.zip           # Portable package file name

# The public releases repository
repo_dir: ""                          # Local checkout of the releases repository (required)
repo_owner: ""                        # GitHub owner of the releases repository (required)
repo_name: ""                         # GitHub repository name (required)
history_file: release-history.json    # Release history file name inside repo_dir
remote: origin                        # Remote the history update is pushed to
branch: main                          # Branch the history update is pushed to
`
}
