package main

import (
	"github.com/spf13/cobra"

	"github.com/luhtfiimanal/go-ringbuffer/internal/script"
)

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <script.yaml>",
		Short: "Replay an operation script",
		Long: `Replay the steps of a YAML script against a fresh buffer, then print
its contents and statistics.

Example script:

  steps:
    - {op: push_back, values: [0, 1, 2]}
    - {op: pop_front}
    - {op: insert, index: 1, value: 9}
    - {op: print}
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := script.Load(args[0])
			if err != nil {
				return err
			}
			buf, log, cleanup, err := setup(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			r := &script.Runner{Buf: buf, Out: cmd.OutOrStdout(), Log: log}
			if err := r.Run(s); err != nil {
				return err
			}
			printOut(cmd, buf.Slice())
			printOut(cmd, renderStats(buf))
			return nil
		},
	}
}
