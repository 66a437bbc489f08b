package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "0.0.0"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ringctl",
		Short: "Drive a growable ring buffer from the command line",
		Long: `ringctl replays operation scripts against a growable ring buffer and
reports how its region grows.

The allocator and limits come from an optional YAML config file.
`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringP("config", "c", "", "config file (yaml or json)")
	root.PersistentFlags().Bool("debug", false, "log buffer events to stderr")

	root.AddCommand(runCmd())
	root.AddCommand(growCmd())
	root.AddCommand(configCmd())
	root.AddCommand(versionCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
