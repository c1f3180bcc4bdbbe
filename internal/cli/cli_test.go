package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackflame7983/relpub/internal/changelog"
	"github.com/blackflame7983/relpub/internal/errors"
)

// runCommand executes the root command with args and resets all flag
// state afterwards, so tests don't leak flag values into each other.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	resetFlags(rootCmd)
	return buf.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if f.Changed {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// writeTestConfig writes a config file pointing at temp dirs and returns
// its path plus the config values needed by assertions.
func writeTestConfig(t *testing.T, repoDir, artifactsDir string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	content := "repo_dir: " + repoDir + "\n" +
		"artifacts_dir: " + artifactsDir + "\n" +
		"repo_owner: owner\n" +
		"repo_name: releases\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestPublish_MissingFlags(t *testing.T) {
	tests := map[string][]string{
		"no flags":      {"publish"},
		"version only":  {"publish", "--version", "v1.0.0"},
		"title only":    {"publish", "--title", "Title"},
		"empty version": {"publish", "--version", "", "--title", "Title"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := runCommand(t, args...)
			require.Error(t, err)

			cliErr := errors.AsCLIError(err)
			require.NotNil(t, cliErr)
			assert.Equal(t, errors.Argument, cliErr.Category)
			assert.NotEmpty(t, cliErr.Usage)
		})
	}
}

func TestPublish_IncompleteConfigFailsValidation(t *testing.T) {
	// Config with no repo settings: validation must reject before the
	// pipeline starts.
	chdir(t, t.TempDir())

	_, err := runCommand(t, "publish", "--version", "v1.0.0", "--title", "T")
	require.Error(t, err)

	cliErr := errors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, errors.Configuration, cliErr.Category)
	assert.Contains(t, cliErr.Message, "repo_dir")
}

func TestChecksum_ExplicitFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.bin")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	out, err := runCommand(t, "checksum", path)
	require.NoError(t, err)
	assert.Contains(t, out, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855  empty.bin")
}

func TestChecksum_MissingFile(t *testing.T) {
	_, err := runCommand(t, "checksum", filepath.Join(t.TempDir(), "nope.exe"))
	require.Error(t, err)

	cliErr := errors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, errors.Artifact, cliErr.Category)
}

func TestHistoryList_JSON(t *testing.T) {
	repoDir := t.TempDir()
	history := changelog.History{{
		Version: "v0.1.0",
		Date:    "2026-08-30",
		Title:   "First",
		SHA256: changelog.Digests{
			Setup:    "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
			Portable: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		Changes: []changelog.Change{{Type: "feature", Text: "New release"}},
	}}
	require.NoError(t, changelog.Save(filepath.Join(repoDir, "release-history.json"), history))

	configPath := writeTestConfig(t, repoDir, t.TempDir())

	out, err := runCommand(t, "history", "list", "--json", "--config", configPath)
	require.NoError(t, err)
	assert.Contains(t, out, `"version": "v0.1.0"`)
	assert.Contains(t, out, `"title": "First"`)
}

func TestHistoryList_Table(t *testing.T) {
	repoDir := t.TempDir()
	history := changelog.History{{
		Version: "v0.2.0",
		Date:    "2026-08-30",
		Title:   "Second",
		SHA256: changelog.Digests{
			Setup:    "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
			Portable: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
	}}
	require.NoError(t, changelog.Save(filepath.Join(repoDir, "release-history.json"), history))

	configPath := writeTestConfig(t, repoDir, t.TempDir())

	out, err := runCommand(t, "history", "list", "--config", configPath)
	require.NoError(t, err)
	assert.Contains(t, out, "v0.2.0")
	assert.Contains(t, out, "e3b0c44298fc")
}

func TestHistoryVerify_CorruptFile(t *testing.T) {
	repoDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(repoDir, "release-history.json"), []byte("{oops"), 0o644))

	configPath := writeTestConfig(t, repoDir, t.TempDir())

	_, err := runCommand(t, "history", "verify", "--config", configPath)
	require.Error(t, err)

	cliErr := errors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, errors.History, cliErr.Category)
}

func TestHistoryVerify_BadRecords(t *testing.T) {
	repoDir := t.TempDir()
	history := changelog.History{{Version: "v1.0.0", Date: "not-a-date", Title: "T"}}
	require.NoError(t, changelog.Save(filepath.Join(repoDir, "release-history.json"), history))

	configPath := writeTestConfig(t, repoDir, t.TempDir())

	_, err := runCommand(t, "history", "verify", "--config", configPath)
	require.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	// Unreleased builds are marked so the output is unambiguous.
	assert.Contains(t, out, "relpub dev (dev build)")
}

func TestConfigInit(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := runCommand(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(".relpub", "config.yml"))

	data, err := os.ReadFile(filepath.Join(".relpub", "config.yml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "artifacts_dir:")
	assert.Contains(t, string(data), "repo_owner:")
}

func TestConfigInit_ExistingFileNeedsForce(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := runCommand(t, "config", "init")
	require.NoError(t, err)

	_, err = runCommand(t, "config", "init")
	require.Error(t, err)
	cliErr := errors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, errors.Configuration, cliErr.Category)

	_, err = runCommand(t, "config", "init", "--force")
	assert.NoError(t, err)
}

func seedHistoryRepo(t *testing.T, history changelog.History) string {
	t.Helper()
	repoDir := t.TempDir()
	require.NoError(t, changelog.Save(filepath.Join(repoDir, "release-history.json"), history))
	return repoDir
}

func twoReleaseHistory() changelog.History {
	digests := changelog.Digests{
		Setup:    "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		Portable: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
	}
	return changelog.History{
		{Version: "v0.2.0", Date: "2026-08-30", Title: "Second", SHA256: digests},
		{Version: "v0.1.0", Date: "2026-07-01", Title: "First", SHA256: digests},
	}
}

func TestHistoryShow_Latest(t *testing.T) {
	repoDir := seedHistoryRepo(t, twoReleaseHistory())
	configPath := writeTestConfig(t, repoDir, t.TempDir())

	out, err := runCommand(t, "history", "show", "--config", configPath)
	require.NoError(t, err)
	assert.Contains(t, out, `"version": "v0.2.0"`)
	assert.NotContains(t, out, `"version": "v0.1.0"`)
}

func TestHistoryShow_SpecificVersion(t *testing.T) {
	repoDir := seedHistoryRepo(t, twoReleaseHistory())
	configPath := writeTestConfig(t, repoDir, t.TempDir())

	// Lookups accept the bare form too.
	out, err := runCommand(t, "history", "show", "0.1.0", "--config", configPath)
	require.NoError(t, err)
	assert.Contains(t, out, `"version": "v0.1.0"`)
	assert.Contains(t, out, `"title": "First"`)
}

func TestHistoryShow_UnknownVersion(t *testing.T) {
	repoDir := seedHistoryRepo(t, twoReleaseHistory())
	configPath := writeTestConfig(t, repoDir, t.TempDir())

	_, err := runCommand(t, "history", "show", "v9.9.9", "--config", configPath)
	require.Error(t, err)
	cliErr := errors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, errors.History, cliErr.Category)
}

func TestHistoryShow_EmptyHistory(t *testing.T) {
	repoDir := seedHistoryRepo(t, changelog.History{})
	configPath := writeTestConfig(t, repoDir, t.TempDir())

	_, err := runCommand(t, "history", "show", "--config", configPath)
	require.Error(t, err)
	cliErr := errors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, errors.History, cliErr.Category)
}

func TestHistoryShow_TooManyArgs(t *testing.T) {
	_, err := runCommand(t, "history", "show", "v0.1.0", "v0.2.0")
	require.Error(t, err)
	cliErr := errors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, errors.Argument, cliErr.Category)
}

func TestShortDigest(t *testing.T) {
	assert.Equal(t, "abc", shortDigest("abc"))
	long := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	assert.Equal(t, "e3b0c44298fc…", shortDigest(long))
}

// chdir is a stand-in for t.Chdir, which requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}
