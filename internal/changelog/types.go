// Package changelog defines the release history record format and its
// JSON persistence. The history is an ordered list of releases, newest
// first; new records are always prepended.
package changelog

// Release represents a single published release in the history file.
type Release struct {
	Version string   `json:"version"`
	Date    string   `json:"date"`
	Title   string   `json:"title"`
	SHA256  Digests  `json:"sha256"`
	Changes []Change `json:"changes"`
}

// Digests holds the SHA-256 hex digests of the two release artifacts,
// keyed by artifact role.
type Digests struct {
	Setup    string `json:"setup"`
	Portable string `json:"portable"`
}

// Change is one change entry attached to a release.
type Change struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// History is the ordered list of releases, newest first.
type History []Release

// Prepend returns a new history with rec at index 0 and all prior
// records unchanged in their original relative order.
func (h History) Prepend(rec Release) History {
	out := make(History, 0, len(h)+1)
	out = append(out, rec)
	out = append(out, h...)
	return out
}

// Versions returns the version identifiers in history order (newest first).
func (h History) Versions() []string {
	versions := make([]string, len(h))
	for i, r := range h {
		versions[i] = r.Version
	}
	return versions
}

// Latest returns the most recent release, or nil if the history is empty.
func (h History) Latest() *Release {
	if len(h) == 0 {
		return nil
	}
	return &h[0]
}
