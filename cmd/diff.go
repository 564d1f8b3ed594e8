package cmd

import (
	"encoding/json"
	"fmt"

	"objmask-workaround/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var diffJSON bool

// diffCmd compares the shipped table with the rebuilt one.
var diffCmd = &cobra.Command{
	Use:   "diff [balance.xml | directory]",
	Short: "Show how the rebuild would change balance.xml",
	Long: `Rebuilds the table in memory and compares it with the shipped balance.xml.

Reports entries only one side has, cells whose rounded value changes, and
cells the rebuild adds. Nothing is written.

Examples:
  # Summary and sample changes
  diff ./data

  # Full comparison as JSON
  diff ./data/balance.xml --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		rt, err := newRuntime(ctx, false)
		if err != nil {
			return err
		}
		defer rt.Close()

		res, err := rt.rebuild(ctx, args[0])
		if err != nil {
			return err
		}

		plan := rt.service.Diff(res)
		if diffJSON {
			data, err := json.MarshalIndent(plan, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		}

		printDiffReport(rt.log, plan)
		return nil
	},
}

func init() {
	diffCmd.Flags().BoolVar(&diffJSON, "json", false, "Print the full comparison as JSON to stdout")
	RootCmd.AddCommand(diffCmd)
}

// printDiffReport prints a formatted comparison using logger.
func printDiffReport(l *zap.Logger, plan *reconcile.Plan) {
	s := plan.Summary

	l.Info("Diff report",
		zap.Int("total_entries", s.TotalEntries),
		zap.Int("new_entries", s.MissingBefore),
		zap.Int("dropped_entries", s.MissingAfter),
		zap.Int("changed_entries", s.ChangedEntries),
		zap.Int("changed_cells", s.ChangedCells),
		zap.Int("added_cells", s.AddedCells),
	)

	// Show a sample of changed entries
	maxShow := 5
	shown := 0
	for _, r := range plan.Results {
		if len(r.Changed) == 0 {
			continue
		}
		if shown == maxShow {
			break
		}
		l.Info("Changed entry", zap.String("name", r.Name), zap.Strings("cells", r.Changed))
		shown++
	}
	if rest := countChanged(plan) - shown; rest > 0 {
		l.Info("Additional changed entries not shown", zap.Int("count", rest))
	}
}

func countChanged(plan *reconcile.Plan) int {
	n := 0
	for _, r := range plan.Results {
		if len(r.Changed) > 0 {
			n++
		}
	}
	return n
}
