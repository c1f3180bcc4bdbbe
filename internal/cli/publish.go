package cli

import (
	"github.com/spf13/cobra"

	"github.com/blackflame7983/relpub/internal/errors"
	"github.com/blackflame7983/relpub/internal/publish"
)

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish a release: checksum artifacts, update history, push, upload",
	Long: `Publish runs the release pipeline:

  1. Verify both build artifacts exist
  2. Compute their SHA-256 digests
  3. Build the release record for the given version and title
  4. Prepend it to the release history and rewrite the file
  5. Commit and push the history update, then create the GitHub release

The pipeline stops at the first failure. Release creation is skipped
with a warning when the 'gh' CLI is not installed.

Examples:
  relpub publish --version v0.3.0 --title "Faster rendering"
  relpub publish --version v0.3.0 --title "Faster rendering" --dry-run`,
	RunE: func(cmd *cobra.Command, args []string) error {
		version, _ := cmd.Flags().GetString("version")
		title, _ := cmd.Flags().GetString("title")
		notes, _ := cmd.Flags().GetString("notes")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		if version == "" || title == "" {
			return errors.NewArgumentErrorWithUsage(
				"both --version and --title are required",
				`relpub publish --version v0.3.0 --title "Release title"`)
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return errors.NewConfigError(err.Error(),
				"Set the missing keys in .relpub/config.yml",
				"Or export them as RELPUB_* environment variables")
		}

		publisher := publish.New(cfg)
		publisher.Out = cmd.OutOrStdout()
		return publisher.Publish(cmd.Context(), publish.Request{
			Version: version,
			Title:   title,
			Notes:   notes,
			DryRun:  dryRun,
		})
	},
}

func init() {
	publishCmd.Flags().String("version", "", "Version string for the release (e.g., v0.3.0)")
	publishCmd.Flags().String("title", "", "Release title")
	publishCmd.Flags().String("notes", "", "Release notes for the hosted release (default: \"Release <version>\")")
	publishCmd.Flags().Bool("dry-run", false, "Build and print the record without writing or publishing")
	rootCmd.AddCommand(publishCmd)
}
