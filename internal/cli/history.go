package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/blackflame7983/relpub/internal/changelog"
	"github.com/blackflame7983/relpub/internal/errors"
	"github.com/blackflame7983/relpub/internal/output"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect the release history",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List releases newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		history, err := loadHistory(cmd)
		if err != nil {
			return err
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			data, err := changelog.Marshal(history)
			if err != nil {
				return errors.WrapWithMessage(err, errors.History, "encoding history")
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), renderHistoryTable(history))
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show [version]",
	Short: "Show a single release record (latest when no version is given)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 1 {
			return errors.NewArgumentError(
				"expected at most one version argument",
				"Run 'relpub history show v0.3.0' or 'relpub history show' for the latest release")
		}

		history, err := loadHistory(cmd)
		if err != nil {
			return err
		}

		var rec *changelog.Release
		if len(args) == 0 {
			rec = history.Latest()
			if rec == nil {
				return errors.NewHistoryError("release history is empty")
			}
		} else {
			rec, err = history.FindVersion(args[0])
			if err != nil {
				return errors.WrapWithMessage(err, errors.History, "looking up release")
			}
		}

		data, err := changelog.Marshal(changelog.History{*rec})
		if err != nil {
			return errors.WrapWithMessage(err, errors.History, "encoding record")
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var historyVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Validate the structure of every history record",
	RunE: func(cmd *cobra.Command, args []string) error {
		history, err := loadHistory(cmd)
		if err != nil {
			return err
		}

		problems := history.Verify()
		if len(problems) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "%d records, no problems found\n", len(history))
			return nil
		}

		for _, p := range problems {
			fmt.Fprintln(cmd.ErrOrStderr(), p.String())
		}
		return errors.NewHistoryError(
			fmt.Sprintf("%d problem(s) found in release history", len(problems)))
	},
}

// loadHistory loads the history file from the configured releases repo.
func loadHistory(cmd *cobra.Command) (changelog.History, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	history, err := changelog.Load(cfg.HistoryPath())
	if err != nil {
		return nil, errors.WrapWithMessage(err, errors.History, "reading release history",
			"Check that "+cfg.HistoryPath()+" exists and is a JSON array")
	}
	return history, nil
}

// renderHistoryTable renders releases as a rounded table, newest first.
func renderHistoryTable(history changelog.History) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Version", "Date", "Title", "Setup SHA-256", "Portable SHA-256"})

	for _, r := range history {
		tw.AppendRow(table.Row{r.Version, r.Date, r.Title, shortDigest(r.SHA256.Setup), shortDigest(r.SHA256.Portable)})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 3, WidthMax: 40},
	})
	if output.IsTTY() {
		tw.SetAllowedRowLength(output.GetTerminalWidth())
	}
	return tw.Render()
}

// shortDigest truncates a digest for table display.
func shortDigest(d string) string {
	if len(d) <= 12 {
		return d
	}
	return d[:12] + "…"
}

func init() {
	historyListCmd.Flags().Bool("json", false, "Output the full history as JSON")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyVerifyCmd)
	rootCmd.AddCommand(historyCmd)
}
