package config

import (
	"fmt"
	"strings"
)

// Validate checks that every field the publish pipeline depends on is set.
// It reports all missing fields at once rather than one at a time.
func (c *Configuration) Validate() error {
	var missing []string

	check := func(key, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, key)
		}
	}

	check("artifacts_dir", c.ArtifactsDir)
	check("repo_dir", c.RepoDir)
	check("setup_file", c.SetupFile)
	check("portable_file", c.PortableFile)
	check("history_file", c.HistoryFile)
	check("repo_owner", c.RepoOwner)
	check("repo_name", c.RepoName)
	check("remote", c.Remote)
	check("branch", c.Branch)

	if len(missing) > 0 {
		return fmt.Errorf("missing required config: %s", strings.Join(missing, ", "))
	}
	return nil
}
