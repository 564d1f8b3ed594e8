package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// publishCmd rebuilds the table and uploads it to object storage.
var publishCmd = &cobra.Command{
	Use:   "publish [balance.xml | directory]",
	Short: "Rebuild balance.xml and upload it to object storage",
	Long: `Rebuilds the table and uploads it to the configured bucket under
<BALANCE_PUBLISH_PREFIX>/<BALANCE_OUTPUT_FILE>. The bucket is created when it
does not exist.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		rt, err := newRuntime(ctx, true)
		if err != nil {
			return err
		}
		defer rt.Close()

		res, err := rt.rebuild(ctx, args[0])
		if err != nil {
			return err
		}

		data, err := rt.service.Render(res, rt.cfg.Storage.Bucket)
		if err != nil {
			return err
		}

		object, err := rt.service.Publish(ctx, data)
		if err != nil {
			return err
		}

		rt.record(ctx, res, data, object)
		rt.log.Info("Complete", zap.String("object", object), zap.Int("bytes", len(data)))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(publishCmd)
}
