// Package release creates hosted GitHub releases through the gh CLI.
// The gh tool is optional: its absence downgrades release creation to a
// warning, while a non-zero exit from gh itself is a hard failure.
package release

import (
	"context"
	"fmt"

	"github.com/blackflame7983/relpub/internal/run"
)

// GHCommand is the executable name probed on PATH.
const GHCommand = "gh"

// Creator builds and runs gh release invocations.
type Creator struct {
	Runner run.Runner
	// Look resolves executables; split from Runner so tests can script
	// gh absence without intercepting process execution.
	Look run.LookPather
	// RepoSlug is the "owner/name" target repository.
	RepoSlug string
}

// Available reports whether the gh CLI can be found on PATH.
func (c *Creator) Available() bool {
	_, err := c.Look.LookPath(GHCommand)
	return err == nil
}

// Create publishes a tagged release with the given assets attached.
// The release title is "<version> - <title>".
func (c *Creator) Create(ctx context.Context, version, title, notes string, assets ...string) error {
	if notes == "" {
		notes = fmt.Sprintf("Release %s", version)
	}

	args := append([]string{"release", "create", version}, assets...)
	args = append(args,
		"--repo", c.RepoSlug,
		"--title", fmt.Sprintf("%s - %s", version, title),
		"--notes", notes,
	)

	if err := c.Runner.Run(ctx, "", GHCommand, args...); err != nil {
		return fmt.Errorf("creating release %s: %w", version, err)
	}
	return nil
}
