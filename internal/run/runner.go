// Package run abstracts external command execution so the publish
// pipeline can be tested without invoking real tools. Commands are
// always executed with an argument vector, never a shell string, so
// user-supplied titles cannot cause quoting hazards.
package run

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Runner executes an external command and reports only its exit status.
// dir is the working directory for the command; empty means the current
// directory.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// LookPather reports whether an executable is available on PATH.
// Split from Runner because availability checks never spawn a process.
type LookPather interface {
	LookPath(name string) (string, error)
}

// ExecRunner runs commands via os/exec, streaming output to the
// process's stdout and stderr. Only the exit status is inspected.
type ExecRunner struct {
	// Echo, when non-nil, receives a printable form of each command
	// before it runs.
	Echo func(command string)
}

// Run executes name with args in dir, blocking until completion.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	if r.Echo != nil {
		r.Echo(FormatCommand(name, args))
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", FormatCommand(name, args), err)
	}
	return nil
}

// LookPath reports whether name resolves to an executable on PATH.
func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// FormatCommand returns a human-readable command string for display and
// error messages.
func FormatCommand(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}
