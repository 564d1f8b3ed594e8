package cmd

import (
	"fmt"

	"objmask-workaround/feature/balance/objmask"

	"github.com/spf13/cobra"
)

// categoriesCmd prints the OBJ_MASK code table.
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the OBJ_MASK category codes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, c := range objmask.All() {
			if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%c\t%s\n", c.Code, c.Name); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(categoriesCmd)
}
