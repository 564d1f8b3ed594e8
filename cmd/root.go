package cmd

import (
	"fmt"
	"os"

	"objmask-workaround/core/logger"
	"objmask-workaround/feature/balance"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	outFlag   string
	rulesFlag string
)

// RootCmd rebuilds balance.xml when given a path, and holds the subcommands.
var RootCmd = &cobra.Command{
	Use:   "objmask-workaround [balance.xml | directory]",
	Short: "Rebuild a Rise of Nations balance table",
	Long: `Rebuilds balance.xml so that every unit-to-unit cell carries the product
of all modifiers between the two units and their OBJ_MASK categories, and
every category row and column is neutral.

The argument is balance.xml (unitrules.xml is read from the same directory)
or a directory holding both. The rebuilt table goes to stdout unless --out
is given. Progress and warnings go to stderr.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		return runFix(cmd, args[0])
	},
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with the debug config gives ISO8601 timestamps.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.Flags().StringVarP(&outFlag, "out", "o", "", "Write the rebuilt table to this file instead of stdout")
	RootCmd.PersistentFlags().StringVar(&rulesFlag, "rules", "", "Path to unitrules.xml (default: next to balance.xml)")
}

func runFix(cmd *cobra.Command, arg string) error {
	ctx := cmd.Context()

	rt, err := newRuntime(ctx, false)
	if err != nil {
		return err
	}
	defer rt.Close()

	res, err := rt.rebuild(ctx, arg)
	if err != nil {
		return err
	}

	var data []byte
	if outFlag == "" {
		data, err = rt.service.Emit(cmd.OutOrStdout(), "stdout", res)
	} else {
		data, err = writeFile(rt.service, outFlag, res)
	}
	if err != nil {
		return err
	}

	rt.record(ctx, res, data, "")
	return nil
}

// writeFile writes the rebuilt table to path, removing a partial file on failure.
func writeFile(svc *balance.Service, path string, res *balance.Result) ([]byte, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}

	data, err := svc.Emit(f, path, res)
	if closeErr := f.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("failed to close %s: %w", path, closeErr)
	}
	if err != nil {
		_ = os.Remove(path)
		return nil, err
	}
	return data, nil
}
