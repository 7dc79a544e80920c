package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// initLogger replaces the global logger with a development logger
// when verbose output is requested. Otherwise, the global no-op
// logger is kept.
func initLogger(undo *func()) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		verbose, err := cmd.Flags().GetBool("verbose")
		if err != nil || !verbose {
			return err
		}

		l, err := zap.NewDevelopment()
		if err != nil {
			return err
		}

		*undo = zap.ReplaceGlobals(l)
		return nil
	}
}
