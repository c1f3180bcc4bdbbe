package changelog

import (
	"fmt"
	"strings"
)

// VersionNotFoundError is returned when a requested version doesn't exist.
type VersionNotFoundError struct {
	Version           string
	AvailableVersions []string
}

func (e *VersionNotFoundError) Error() string {
	return fmt.Sprintf("version %q not found (available: %s)",
		e.Version, strings.Join(e.AvailableVersions, ", "))
}

// FindVersion retrieves a specific release from the history.
// Accepts both "v0.6.0" and "0.6.0" forms (normalizes the input).
// Returns VersionNotFoundError if the version doesn't exist.
func (h History) FindVersion(version string) (*Release, error) {
	normalized := normalizeVersion(version)

	for i := range h {
		if normalizeVersion(h[i].Version) == normalized {
			return &h[i], nil
		}
	}

	return nil, &VersionNotFoundError{
		Version:           version,
		AvailableVersions: h.Versions(),
	}
}

// Contains reports whether a release with the given version already exists.
func (h History) Contains(version string) bool {
	_, err := h.FindVersion(version)
	return err == nil
}

// normalizeVersion strips a leading "v" so lookups match either form.
func normalizeVersion(v string) string {
	return strings.TrimPrefix(strings.TrimSpace(v), "v")
}
