package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackflame7983/relpub/internal/errors"
	"github.com/blackflame7983/relpub/internal/health"
	"github.com/blackflame7983/relpub/internal/run"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that everything publish needs is in place",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		report := health.RunChecks(cfg, &run.ExecRunner{})

		out := cmd.OutOrStdout()
		green := color.New(color.FgGreen, color.Bold).SprintFunc()
		red := color.New(color.FgRed, color.Bold).SprintFunc()
		yellow := color.New(color.FgYellow, color.Bold).SprintFunc()

		for _, check := range report.Checks {
			mark := green("✓")
			if !check.Passed {
				if check.Optional {
					mark = yellow("!")
				} else {
					mark = red("✗")
				}
			}
			fmt.Fprintf(out, "%s %-22s %s\n", mark, check.Name, check.Message)
		}

		if !report.Passed {
			return errors.NewToolError("one or more health checks failed",
				"Install the missing tools or fix the paths above")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
