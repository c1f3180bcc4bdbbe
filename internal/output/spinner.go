package output

import (
	"time"

	"github.com/briandowns/spinner"
)

// Spinner wraps a terminal spinner that degrades to a no-op when stdout
// is not a TTY, so piped output stays clean.
type Spinner struct {
	s *spinner.Spinner
}

// StartSpinner starts a spinner with the given suffix text.
// Returns a no-op spinner when stdout is not a terminal.
func StartSpinner(text string) *Spinner {
	if !IsTTY() {
		return &Spinner{}
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + text
	s.Start()
	return &Spinner{s: s}
}

// Stop stops the spinner. Safe to call on a no-op spinner.
func (sp *Spinner) Stop() {
	if sp.s != nil {
		sp.s.Stop()
	}
}
