// Package git publishes the release history update to the public
// releases repository. Mutating operations (add, commit, push) shell out
// to the git CLI through a run.Runner; read-side validation uses the
// go-git library so the doctor checks work without spawning processes.
package git

import (
	"context"
	"fmt"

	gogit "github.com/go-git/go-git/v5"

	"github.com/blackflame7983/relpub/internal/run"
)

// Publisher stages, commits, and pushes the history file in the
// releases repository.
type Publisher struct {
	Runner run.Runner
	// RepoDir is the checkout of the releases repository.
	RepoDir string
	// Remote and Branch name the push destination.
	Remote string
	Branch string
}

// CommitMessage builds the commit message for a release.
func CommitMessage(version, title string) string {
	return fmt.Sprintf("Release %s: %s", version, title)
}

// PublishHistory stages the history file, commits it with a message
// derived from the version and title, and pushes to the configured
// remote branch. A non-zero exit from any step aborts the rest.
func (p *Publisher) PublishHistory(ctx context.Context, historyFile, version, title string) error {
	if err := p.Runner.Run(ctx, p.RepoDir, "git", "add", historyFile); err != nil {
		return fmt.Errorf("staging %s: %w", historyFile, err)
	}

	msg := CommitMessage(version, title)
	if err := p.Runner.Run(ctx, p.RepoDir, "git", "commit", "-m", msg); err != nil {
		return fmt.Errorf("committing %s: %w", historyFile, err)
	}

	if err := p.Runner.Run(ctx, p.RepoDir, "git", "push", p.Remote, p.Branch); err != nil {
		return fmt.Errorf("pushing to %s/%s: %w", p.Remote, p.Branch, err)
	}

	return nil
}

// IsRepository reports whether dir is inside a git repository.
func IsRepository(dir string) bool {
	_, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	return err == nil
}

// CurrentBranch returns the name of the branch checked out in dir.
// Returns empty string in detached HEAD state.
func CurrentBranch(dir string) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("opening repository at %s: %w", dir, err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD reference: %w", err)
	}

	if !head.Name().IsBranch() {
		return "", nil
	}
	return head.Name().Short(), nil
}
