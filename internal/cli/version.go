package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackflame7983/relpub/internal/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print relpub version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		version := build.Version
		if build.IsDevBuild() {
			version += " (dev build)"
		}
		fmt.Fprintf(out, "relpub %s\n", version)
		fmt.Fprintf(out, "  commit: %s\n", build.Commit)
		fmt.Fprintf(out, "  built:  %s\n", build.BuildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
