// Package cli wires the relpub commands together with cobra.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/blackflame7983/relpub/internal/config"
	"github.com/blackflame7983/relpub/internal/errors"
)

var rootCmd = &cobra.Command{
	Use:   "relpub",
	Short: "Publish application releases with checksummed artifacts",
	Long: `relpub publishes one release of the application: it verifies the two
build artifacts, computes their SHA-256 digests, prepends a record to the
release history JSON in the public releases repository, pushes the update,
and creates a GitHub release with the artifacts attached.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a config file (overrides .relpub/config.yml)")
}

// Execute runs the root command and returns the process exit code.
// Structured errors are printed with their remediation steps; plain
// errors fall back to cobra's default rendering on stderr.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	if cliErr := errors.AsCLIError(err); cliErr != nil {
		errors.PrintError(cliErr)
		return cliErr.Category.ExitCode()
	}

	errors.PrintError(errors.NewToolError(err.Error()))
	return 1
}

// loadConfig loads configuration honoring the persistent --config flag.
func loadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, errors.WrapWithMessage(err, errors.Configuration, "loading configuration")
	}
	return cfg, nil
}
