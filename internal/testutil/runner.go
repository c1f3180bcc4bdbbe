// Package testutil provides test doubles and helpers shared across relpub tests.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Call records a single command invocation seen by the RecordingRunner.
type Call struct {
	Dir  string
	Name string
	Args []string
}

// String renders the call the way it would appear on a shell prompt,
// which keeps test assertions readable.
func (c Call) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// RecordingRunner is a run.Runner that records every invocation in order
// and returns scripted errors for matching commands.
type RecordingRunner struct {
	mu    sync.Mutex
	calls []Call

	// FailOn maps a command prefix (e.g. "git push") to the error
	// returned when a call matches it.
	FailOn map[string]error

	// Missing lists executable names LookPath reports as absent.
	Missing []string
}

// Run records the call and returns a scripted error if one matches.
func (r *RecordingRunner) Run(_ context.Context, dir, name string, args ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	call := Call{Dir: dir, Name: name, Args: args}
	r.calls = append(r.calls, call)

	for prefix, err := range r.FailOn {
		if strings.HasPrefix(call.String(), prefix) {
			return err
		}
	}
	return nil
}

// LookPath reports executables in Missing as absent, everything else as present.
func (r *RecordingRunner) LookPath(name string) (string, error) {
	for _, m := range r.Missing {
		if m == name {
			return "", fmt.Errorf("exec: %q: executable file not found in $PATH", name)
		}
	}
	return "/usr/bin/" + name, nil
}

// Calls returns a copy of the recorded calls in invocation order.
func (r *RecordingRunner) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// CommandLines returns the recorded calls rendered as command strings.
func (r *RecordingRunner) CommandLines() []string {
	calls := r.Calls()
	lines := make([]string, len(calls))
	for i, c := range calls {
		lines[i] = c.String()
	}
	return lines
}
