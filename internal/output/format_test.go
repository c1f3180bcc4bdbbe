package output

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestPrintStepHeader(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	PrintStepHeader(&buf, 2, 5, "Computing checksums")

	assert.Equal(t, "[Step 2/5] Computing checksums...\n", buf.String())
}

func TestPrintWarning(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	PrintWarning(&buf, "'gh' CLI not found, skipping release upload")

	assert.Equal(t, "Warning: 'gh' CLI not found, skipping release upload\n", buf.String())
}

func TestPrintDigest(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	PrintDigest(&buf, "setup", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855")

	assert.Contains(t, buf.String(), "setup:")
	assert.Contains(t, buf.String(), "e3b0c442")
}

func TestGetTerminalWidth_DefaultsWithoutTTY(t *testing.T) {
	// Tests run without a terminal attached, so the width falls back to 80.
	assert.Equal(t, 80, GetTerminalWidth())
}

func TestStartSpinner_NoTTY(t *testing.T) {
	// Tests run without a terminal attached, so the spinner is a no-op.
	sp := StartSpinner("uploading")
	assert.NotNil(t, sp)
	sp.Stop()
}
