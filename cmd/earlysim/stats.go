package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/osdevkit/earlymem/mem"
	"github.com/osdevkit/earlymem/mem/alloc"
	"github.com/osdevkit/earlymem/mem/region"
)

var (
	statsRegionSize uint64
	statsPageSize   uint64
)

func init() {
	cmd := newStatsCmd()
	cmd.Flags().Uint64Var(&statsRegionSize, "region-size", uint64(mem.MiB), "Size of the reserved region in bytes")
	cmd.Flags().Uint64Var(&statsPageSize, "page-size", uint64(4*mem.KiB), "Allocator page size in bytes (power of two)")
	rootCmd.AddCommand(cmd)
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Run a built-in exercise and report allocator accounting",
		Long: `The stats command reserves a region, runs a fixed mix of byte and
page allocations against an early allocator, and prints the resulting
accounting, including the partition identity
available + used-bytes + used-pages*page-size == total.

Example:
  earlysim stats
  earlysim stats --region-size 8388608 --page-size 16384 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd)
		},
	}
}

// builtinExercise is the canned trace the stats command replays.
const builtinExercise = `
{"op":"alloc","size":64,"align":8}
{"op":"alloc","size":512,"align":16}
{"op":"alloc","size":4096,"align":4096}
{"op":"alloc_pages","pages":4,"align_pow2":0}
{"op":"alloc_pages","pages":1,"align_pow2":14}
{"op":"dealloc","index":1}
{"op":"alloc","size":33,"align":1}
{"op":"alloc_pages","pages":2,"align_pow2":0}
{"op":"dealloc_pages","pages":2}
`

func runStats(cmd *cobra.Command) error {
	a, err := alloc.NewEarly(mem.Size(statsPageSize))
	if err != nil {
		return fmt.Errorf("page size %d: %w", statsPageSize, err)
	}

	r, err := region.Reserve(mem.Size(statsRegionSize))
	if err != nil {
		return err
	}
	defer r.Release()

	a.Init(r.Base(), r.Size())

	stats, err := replayTrace(a, strings.NewReader(builtinExercise), logger)
	if err != nil {
		return err
	}

	if err := printStats(cmd.OutOrStdout(), a, stats); err != nil {
		return err
	}

	if !jsonOut {
		partition := a.AvailableBytes() + a.UsedBytes() + mem.Size(a.UsedPages())*a.PageSize()
		fmt.Fprintf(cmd.OutOrStdout(), "partition check:  %s + %s + %d*%s = %s (total %s)\n",
			a.AvailableBytes(), a.UsedBytes(), a.UsedPages(), a.PageSize(),
			partition, a.TotalBytes())
	}
	return nil
}
