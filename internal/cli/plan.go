package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/youware-labs/ywscaffold/internal/layout"
	"github.com/youware-labs/ywscaffold/internal/rules"
	"github.com/youware-labs/ywscaffold/internal/scaffold"
)

func init() {
	rootCmd.AddCommand(planCmd)
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show what would be written without touching the disk",
	Long: `List every file in the layout with the rule that produces it, the
content kind and its size in bytes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := layout.Paths()
		if err != nil {
			return err
		}

		entries, err := scaffold.Plan(paths, rules.Default())
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.Style().Format.Footer = text.FormatDefault
		t.AppendHeader(table.Row{"Path", "Rule", "Kind", "Bytes"})
		for _, e := range entries {
			t.AppendRow(table.Row{e.Path, e.Rule, e.Kind.String(), e.Size})
		}
		t.AppendFooter(table.Row{printer.Sprintf("%d files", len(entries)), "", "", ""})
		t.Render()
		return nil
	},
}
