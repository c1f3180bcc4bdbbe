package changelog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Load reads and parses the release history at path. A missing file or
// content that does not parse as a JSON array of releases is an error;
// callers treat both as the unreadable-history condition.
func Load(path string) (History, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading release history %s: %w", path, err)
	}

	var history History
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("parsing release history %s: %w", path, err)
	}

	return history, nil
}

// Marshal serializes the history with 4-space indentation and without
// HTML escaping, so non-ASCII titles survive byte-for-byte.
func Marshal(history History) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(history); err != nil {
		return nil, fmt.Errorf("encoding release history: %w", err)
	}
	return buf.Bytes(), nil
}

// Save rewrites the history file at path in full.
func Save(path string, history History) error {
	data, err := Marshal(history)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing release history %s: %w", path, err)
	}
	return nil
}
