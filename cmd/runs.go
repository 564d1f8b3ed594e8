package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var runsLimit int

// runsCmd lists recorded rebuilds.
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recent rebuilds from the run history",
	Long:  `Lists recorded rebuilds, newest first. Requires DATABASE_DRIVER to be set.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		rt, err := newRuntime(ctx, false)
		if err != nil {
			return err
		}
		defer rt.Close()

		runs, err := rt.service.Runs(ctx, runsLimit)
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(runs, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	},
}

func init() {
	runsCmd.Flags().IntVar(&runsLimit, "limit", 20, "Maximum number of runs to list")
	RootCmd.AddCommand(runsCmd)
}
