package git

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackflame7983/relpub/internal/testutil"
)

// initRepo creates a git repository with one commit using go-git, so the
// tests don't depend on a git CLI being installed.
func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	path := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(path, []byte("releases\n"), 0o644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("README.md")
	require.NoError(t, err)
	_, err = wt.Commit("initial", &gogit.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	return dir
}

func TestIsRepository(t *testing.T) {
	assert.True(t, IsRepository(initRepo(t)))
	assert.False(t, IsRepository(t.TempDir()))
}

func TestIsRepository_Subdirectory(t *testing.T) {
	dir := initRepo(t)
	sub := filepath.Join(dir, "nested", "deeper")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	assert.True(t, IsRepository(sub))
}

func TestCurrentBranch(t *testing.T) {
	branch, err := CurrentBranch(initRepo(t))
	require.NoError(t, err)
	assert.Equal(t, "master", branch)
}

func TestCurrentBranch_NotARepo(t *testing.T) {
	_, err := CurrentBranch(t.TempDir())
	assert.Error(t, err)
}

func TestCommitMessage(t *testing.T) {
	assert.Equal(t, "Release v0.3.0: Faster rendering", CommitMessage("v0.3.0", "Faster rendering"))
}

func TestPublishHistory_CommandSequence(t *testing.T) {
	runner := &testutil.RecordingRunner{}
	p := &Publisher{Runner: runner, RepoDir: "/repos/releases", Remote: "origin", Branch: "main"}

	err := p.PublishHistory(context.Background(), "release-history.json", "v0.3.0", "Faster rendering")
	require.NoError(t, err)

	lines := runner.CommandLines()
	require.Len(t, lines, 3)
	assert.Equal(t, "git add release-history.json", lines[0])
	assert.Equal(t, "git commit -m Release v0.3.0: Faster rendering", lines[1])
	assert.Equal(t, "git push origin main", lines[2])

	for _, call := range runner.Calls() {
		assert.Equal(t, "/repos/releases", call.Dir)
	}
}

func TestPublishHistory_AbortsAfterFailure(t *testing.T) {
	runner := &testutil.RecordingRunner{
		FailOn: map[string]error{"git commit": errors.New("exit status 1")},
	}
	p := &Publisher{Runner: runner, RepoDir: "/r", Remote: "origin", Branch: "main"}

	err := p.PublishHistory(context.Background(), "release-history.json", "v1.0.0", "T")
	require.Error(t, err)

	// The push must not run once the commit failed.
	lines := runner.CommandLines()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "git commit")
}

// TestPublishHistory_TitleIsSingleArg guards against shell quoting
// hazards: the title travels as one argv element no matter its content.
func TestPublishHistory_TitleIsSingleArg(t *testing.T) {
	runner := &testutil.RecordingRunner{}
	p := &Publisher{Runner: runner, RepoDir: "/r", Remote: "origin", Branch: "main"}

	title := `Fix "critical" bug; rm -rf /`
	require.NoError(t, p.PublishHistory(context.Background(), "release-history.json", "v1.0.0", title))

	commit := runner.Calls()[1]
	require.Equal(t, "git", commit.Name)
	require.Len(t, commit.Args, 3)
	assert.Equal(t, "Release v1.0.0: "+title, commit.Args[2])
}
