// Package publish implements the release pipeline: locate artifacts,
// compute checksums, build the history record, persist it, and publish
// through git and the gh CLI. The pipeline is strictly sequential; any
// hard failure aborts the remaining steps and nothing is rolled back.
package publish

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/blackflame7983/relpub/internal/changelog"
	"github.com/blackflame7983/relpub/internal/checksum"
	"github.com/blackflame7983/relpub/internal/config"
	"github.com/blackflame7983/relpub/internal/errors"
	"github.com/blackflame7983/relpub/internal/git"
	"github.com/blackflame7983/relpub/internal/output"
	"github.com/blackflame7983/relpub/internal/release"
	"github.com/blackflame7983/relpub/internal/run"
)

const totalSteps = 5

// Request carries the caller-supplied inputs for one release.
type Request struct {
	Version string
	Title   string
	// Notes overrides the hosted release notes. It never affects the
	// history record itself.
	Notes string
	// DryRun stops the pipeline after building the record: nothing is
	// written and no external command runs.
	DryRun bool
}

// Publisher wires the pipeline's collaborators together.
type Publisher struct {
	Config *config.Configuration
	Runner run.Runner
	Look   run.LookPather
	Out    io.Writer

	// Now supplies the record date; overridable in tests.
	Now func() time.Time
}

// New creates a Publisher with an exec-backed runner. Command echoes
// follow p.Out so callers that redirect output capture them too.
func New(cfg *config.Configuration) *Publisher {
	p := &Publisher{
		Config: cfg,
		Out:    os.Stdout,
		Now:    time.Now,
	}
	runner := &run.ExecRunner{
		Echo: func(command string) { output.PrintExecutingCommand(p.Out, command) },
	}
	p.Runner = runner
	p.Look = runner
	return p
}

// Publish runs the five-step pipeline for the given request.
func (p *Publisher) Publish(ctx context.Context, req Request) error {
	cfg := p.Config

	// Step 1: locate artifacts and the releases repository.
	output.PrintStepHeader(p.Out, 1, totalSteps, "Locating artifacts")
	if err := p.locate(); err != nil {
		return err
	}
	output.PrintSuccess(p.Out, "Artifacts found in "+cfg.ArtifactsDir)

	// Step 2: compute checksums.
	output.PrintStepHeader(p.Out, 2, totalSteps, "Computing SHA-256 checksums")
	digests, err := p.computeDigests()
	if err != nil {
		return err
	}
	output.PrintDigest(p.Out, "setup", digests.Setup)
	output.PrintDigest(p.Out, "portable", digests.Portable)

	// Step 3: build the record.
	rec := changelog.Release{
		Version: req.Version,
		Date:    p.Now().Format("2006-01-02"),
		Title:   req.Title,
		SHA256:  digests,
		Changes: []changelog.Change{{Type: "feature", Text: "New release"}},
	}

	if req.DryRun {
		return p.printDryRun(rec)
	}

	// Step 4: prepend to the history and rewrite it.
	output.PrintStepHeader(p.Out, 3, totalSteps, "Updating "+cfg.HistoryFile)
	if err := p.persist(rec); err != nil {
		return err
	}
	output.PrintSuccess(p.Out, cfg.HistoryFile+" updated")

	// Step 5a: commit and push the history update.
	output.PrintStepHeader(p.Out, 4, totalSteps, "Pushing history update")
	publisher := &git.Publisher{
		Runner:  p.Runner,
		RepoDir: cfg.RepoDir,
		Remote:  cfg.Remote,
		Branch:  cfg.Branch,
	}
	if err := publisher.PublishHistory(ctx, cfg.HistoryFile, req.Version, req.Title); err != nil {
		return errors.WrapWithMessage(err, errors.Tool, "publishing history update")
	}
	output.PrintSuccess(p.Out, "History pushed to "+cfg.Remote+"/"+cfg.Branch)

	// Step 5b: create the hosted release, soft-skipped when gh is absent.
	output.PrintStepHeader(p.Out, 5, totalSteps, "Creating GitHub release")
	creator := &release.Creator{Runner: p.Runner, Look: p.Look, RepoSlug: cfg.RepoSlug()}
	if !creator.Available() {
		output.PrintWarning(p.Out, "'gh' CLI not found, skipping release upload")
		return nil
	}

	sp := output.StartSpinner("uploading release assets")
	err = creator.Create(ctx, req.Version, req.Title, req.Notes, cfg.SetupPath(), cfg.PortablePath())
	sp.Stop()
	if err != nil {
		return errors.WrapWithMessage(err, errors.Tool, "creating GitHub release")
	}

	output.PrintSuccess(p.Out, "Release "+req.Version+" created")
	return nil
}

// locate verifies the releases repository and both artifacts exist
// before anything is hashed or written.
func (p *Publisher) locate() error {
	cfg := p.Config

	if !dirExists(cfg.RepoDir) {
		return errors.NewConfigError(
			fmt.Sprintf("releases repository not found at %s", cfg.RepoDir),
			"Clone the releases repository",
			"Set repo_dir in .relpub/config.yml or RELPUB_REPO_DIR")
	}

	var missing []string
	for _, path := range []string{cfg.SetupPath(), cfg.PortablePath()} {
		if !fileExists(path) {
			missing = append(missing, path)
		}
	}
	if len(missing) > 0 {
		return errors.NewArtifactError(
			fmt.Sprintf("artifacts not found in %s", cfg.ArtifactsDir),
			"Run the build to produce "+cfg.SetupFile+" and "+cfg.PortableFile,
			"Check artifacts_dir in your config")
	}

	return nil
}

// computeDigests hashes both artifacts sequentially.
func (p *Publisher) computeDigests() (changelog.Digests, error) {
	sp := output.StartSpinner("hashing artifacts")
	defer sp.Stop()

	setup, err := checksum.FileSHA256(p.Config.SetupPath())
	if err != nil {
		return changelog.Digests{}, errors.WrapWithMessage(err, errors.Artifact, "hashing setup artifact")
	}
	portable, err := checksum.FileSHA256(p.Config.PortablePath())
	if err != nil {
		return changelog.Digests{}, errors.WrapWithMessage(err, errors.Artifact, "hashing portable artifact")
	}
	return changelog.Digests{Setup: setup, Portable: portable}, nil
}

// persist prepends rec to the history and rewrites it in the releases
// repository and next to the artifacts. The history must parse before
// any write happens.
func (p *Publisher) persist(rec changelog.Release) error {
	cfg := p.Config

	history, err := changelog.Load(cfg.HistoryPath())
	if err != nil {
		return errors.WrapWithMessage(err, errors.History, "reading release history",
			"Check that "+cfg.HistoryPath()+" exists and is a JSON array")
	}

	if history.Contains(rec.Version) {
		output.PrintWarning(p.Out, rec.Version+" is already in the history, prepending anyway")
	}

	updated := history.Prepend(rec)

	if err := changelog.Save(cfg.HistoryPath(), updated); err != nil {
		return errors.WrapWithMessage(err, errors.History, "writing release history")
	}
	if err := changelog.Save(cfg.LocalHistoryPath(), updated); err != nil {
		return errors.WrapWithMessage(err, errors.History, "writing local history copy")
	}

	return nil
}

// printDryRun shows the record that would have been prepended.
func (p *Publisher) printDryRun(rec changelog.Release) error {
	data, err := changelog.Marshal(changelog.History{rec})
	if err != nil {
		return errors.WrapWithMessage(err, errors.History, "encoding record")
	}
	fmt.Fprintln(p.Out, "Dry run: would prepend the following record")
	fmt.Fprint(p.Out, string(data))
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
