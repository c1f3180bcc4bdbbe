package changelog

import (
	"fmt"
	"regexp"
	"time"
)

var hexDigestRe = regexp.MustCompile(`^[0-9a-f]{64}$`)

// Problem describes a single structural defect found in a history record.
type Problem struct {
	Index   int
	Version string
	Message string
}

func (p Problem) String() string {
	return fmt.Sprintf("record %d (%s): %s", p.Index, p.Version, p.Message)
}

// Verify checks every record for structural validity: non-empty version
// and title, a parseable YYYY-MM-DD date, and well-formed SHA-256 hex
// digests for both artifact roles. It returns all problems found rather
// than stopping at the first.
func (h History) Verify() []Problem {
	var problems []Problem

	add := func(i int, version, msg string) {
		if version == "" {
			version = "?"
		}
		problems = append(problems, Problem{Index: i, Version: version, Message: msg})
	}

	for i, r := range h {
		if r.Version == "" {
			add(i, r.Version, "empty version")
		}
		if r.Title == "" {
			add(i, r.Version, "empty title")
		}
		if _, err := time.Parse("2006-01-02", r.Date); err != nil {
			add(i, r.Version, fmt.Sprintf("invalid date %q (want YYYY-MM-DD)", r.Date))
		}
		if !hexDigestRe.MatchString(r.SHA256.Setup) {
			add(i, r.Version, "setup digest is not a 64-char hex string")
		}
		if !hexDigestRe.MatchString(r.SHA256.Portable) {
			add(i, r.Version, "portable digest is not a 64-char hex string")
		}
	}

	return problems
}
