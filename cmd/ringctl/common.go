package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	ringbuffer "github.com/luhtfiimanal/go-ringbuffer"
	"github.com/luhtfiimanal/go-ringbuffer/internal/config"
)

// slotSize is the byte size of one int64 slot.
const slotSize = 8

// loadConfig reads --config, or returns the defaults when it is unset.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// newLogger returns a development logger when --debug or the config asks for
// one, and a no-op logger otherwise.
func newLogger(cmd *cobra.Command, cfg config.Config) (*zap.Logger, error) {
	debug, _ := cmd.Flags().GetBool("debug")
	if !debug && !cfg.Debug {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

// setup loads the config and builds the buffer it describes. The returned
// cleanup flushes the logger and releases allocator resources.
func setup(cmd *cobra.Command) (*ringbuffer.Buffer[int64], *zap.Logger, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	log, err := newLogger(cmd, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	buf, closer, err := cfg.NewBuffer(log)
	if err != nil {
		_ = closer()
		return nil, nil, nil, err
	}
	cleanup := func() {
		buf.Clear()
		if err := closer(); err != nil {
			log.Warn("release allocator", zap.Error(err))
		}
		_ = log.Sync()
	}
	return buf, log, cleanup, nil
}

func regionBytes(capacity int) string {
	if capacity == 0 {
		return humanize.IBytes(0)
	}
	return humanize.IBytes(uint64(capacity+1) * slotSize)
}

var statsHeader = table.Row{"Len", "Cap", "Region", "Allocs", "Deallocs", "Reallocs", "Relocations", "Constructed", "Destroyed"}

func renderStats(b *ringbuffer.Buffer[int64]) string {
	st := b.Stats()
	t := table.NewWriter()
	t.AppendHeader(statsHeader)
	t.AppendRow(table.Row{
		b.Len(),
		b.Cap(),
		regionBytes(b.Cap()),
		humanize.Comma(int64(st.Allocations)),
		humanize.Comma(int64(st.Deallocations)),
		humanize.Comma(int64(st.Reallocations)),
		humanize.Comma(int64(st.Relocations)),
		humanize.Comma(int64(st.Constructed)),
		humanize.Comma(int64(st.Destroyed)),
	})
	return t.Render()
}

func printOut(cmd *cobra.Command, a ...any) {
	fmt.Fprintln(cmd.OutOrStdout(), a...)
}
