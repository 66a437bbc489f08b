package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func growCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Push values and report every capacity change",
		RunE: func(cmd *cobra.Command, _ []string) error {
			count, _ := cmd.Flags().GetInt("count")
			if count < 0 {
				return errors.Errorf("count %d is negative", count)
			}
			buf, _, cleanup, err := setup(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			t := table.NewWriter()
			t.AppendHeader(table.Row{"Len", "Cap", "Region"})
			last := buf.Cap()
			for i := 0; i < count; i++ {
				if _, err := buf.PushBack(int64(i)); err != nil {
					printOut(cmd, t.Render())
					return err
				}
				if c := buf.Cap(); c != last {
					t.AppendRow(table.Row{buf.Len(), c, regionBytes(c)})
					last = c
				}
			}
			printOut(cmd, t.Render())
			printOut(cmd, renderStats(buf))
			return nil
		},
	}
	cmd.Flags().IntP("count", "n", 100, "number of values to push")
	return cmd
}
