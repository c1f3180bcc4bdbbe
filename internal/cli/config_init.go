package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/blackflame7983/relpub/internal/config"
	"github.com/blackflame7983/relpub/internal/errors"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage relpub configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented starter config to .relpub/config.yml",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		path := config.ProjectConfigPath()

		if _, err := os.Stat(path); err == nil && !force {
			return errors.NewConfigError(
				fmt.Sprintf("%s already exists", path),
				"Use --force to overwrite it")
		}

		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return errors.WrapWithMessage(err, errors.Configuration, "creating config directory")
		}
		if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
			return errors.WrapWithMessage(err, errors.Configuration, "writing config template")
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		fmt.Fprintln(cmd.OutOrStdout(), "Fill in repo_dir, repo_owner, and repo_name before publishing.")
		return nil
	},
}

func init() {
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
