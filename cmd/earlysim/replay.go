package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osdevkit/earlymem/mem"
	"github.com/osdevkit/earlymem/mem/alloc"
	"github.com/osdevkit/earlymem/mem/region"
)

var (
	replayRegionSize uint64
	replayPageSize   uint64
)

func init() {
	cmd := newReplayCmd()
	cmd.Flags().Uint64Var(&replayRegionSize, "region-size", uint64(mem.MiB), "Size of the reserved region in bytes")
	cmd.Flags().Uint64Var(&replayPageSize, "page-size", uint64(4*mem.KiB), "Allocator page size in bytes (power of two)")
	rootCmd.AddCommand(cmd)
}

func newReplayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replay <trace.jsonl>",
		Short: "Replay a JSON-lines allocation trace",
		Long: `The replay command reserves a memory region, initializes an early
allocator over it, and applies every operation from the trace file in order.

Example:
  earlysim replay boot-trace.jsonl
  earlysim replay boot-trace.jsonl --region-size 4194304 --json
  earlysim replay - < boot-trace.jsonl`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd, args[0])
		},
	}
}

func runReplay(cmd *cobra.Command, path string) error {
	in := os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	a, err := alloc.NewEarly(mem.Size(replayPageSize))
	if err != nil {
		return fmt.Errorf("page size %d: %w", replayPageSize, err)
	}

	r, err := region.Reserve(mem.Size(replayRegionSize))
	if err != nil {
		return err
	}
	defer r.Release()

	a.Init(r.Base(), r.Size())
	logger.Debug("region reserved", "base", r.Base(), "size", r.Size())

	stats, err := replayTrace(a, in, logger)
	if err != nil {
		return err
	}
	return printStats(cmd.OutOrStdout(), a, stats)
}
