// Package health provides dependency health checks for relpub. It
// validates that the external tools and directories the publish pipeline
// needs are present, returning structured reports used by the
// 'relpub doctor' command.
package health

import (
	"fmt"
	"os"

	"github.com/blackflame7983/relpub/internal/config"
	"github.com/blackflame7983/relpub/internal/git"
	"github.com/blackflame7983/relpub/internal/run"
)

// CheckResult represents the result of a single health check.
// Optional checks report failure as a warning rather than an error.
type CheckResult struct {
	Name     string
	Passed   bool
	Optional bool
	Message  string
}

// Report contains all health check results.
type Report struct {
	Checks []CheckResult
	Passed bool
}

// RunChecks runs all health checks against the given configuration.
// look resolves executables on PATH; pass a run.ExecRunner in production.
func RunChecks(cfg *config.Configuration, look run.LookPather) *Report {
	report := &Report{Passed: true}

	add := func(c CheckResult) {
		report.Checks = append(report.Checks, c)
		if !c.Passed && !c.Optional {
			report.Passed = false
		}
	}

	add(checkTool(look, "git", false))
	add(checkTool(look, "gh", true))
	add(checkDir("artifacts directory", cfg.ArtifactsDir))
	add(checkReleasesRepo(cfg))

	return report
}

// checkTool probes PATH for an executable.
func checkTool(look run.LookPather, name string, optional bool) CheckResult {
	path, err := look.LookPath(name)
	if err != nil {
		msg := fmt.Sprintf("'%s' not found on PATH", name)
		if optional {
			msg += " (release upload will be skipped)"
		}
		return CheckResult{Name: name + " CLI", Passed: false, Optional: optional, Message: msg}
	}
	return CheckResult{Name: name + " CLI", Passed: true, Optional: optional, Message: path}
}

// checkDir verifies a directory exists.
func checkDir(name, path string) CheckResult {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return CheckResult{Name: name, Passed: false, Message: fmt.Sprintf("%s does not exist", path)}
	}
	return CheckResult{Name: name, Passed: true, Message: path}
}

// checkReleasesRepo verifies the releases checkout exists, is a git
// repository, and reports the branch it has checked out.
func checkReleasesRepo(cfg *config.Configuration) CheckResult {
	name := "releases repository"

	info, err := os.Stat(cfg.RepoDir)
	if err != nil || !info.IsDir() {
		return CheckResult{Name: name, Passed: false, Message: fmt.Sprintf("%s does not exist", cfg.RepoDir)}
	}

	if !git.IsRepository(cfg.RepoDir) {
		return CheckResult{Name: name, Passed: false, Message: fmt.Sprintf("%s is not a git repository", cfg.RepoDir)}
	}

	branch, err := git.CurrentBranch(cfg.RepoDir)
	if err != nil || branch == "" {
		return CheckResult{Name: name, Passed: true, Message: cfg.RepoDir + " (detached HEAD)"}
	}
	return CheckResult{Name: name, Passed: true, Message: fmt.Sprintf("%s (branch %s)", cfg.RepoDir, branch)}
}
