package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/osdevkit/earlymem/mem"
	"github.com/osdevkit/earlymem/mem/alloc"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// traceOp is one line of a JSON-lines allocation trace.
//
//	{"op":"alloc","size":64,"align":8}
//	{"op":"alloc_pages","pages":2,"align_pow2":0}
//	{"op":"dealloc"}            frees the most recent outstanding block
//	{"op":"dealloc","index":0}  frees the n-th recorded block
//	{"op":"dealloc_pages","pages":2}
type traceOp struct {
	Op        string `json:"op"`
	Size      uint64 `json:"size"`
	Align     uint64 `json:"align"`
	Pages     uint   `json:"pages"`
	AlignPow2 uint   `json:"align_pow2"`
	Index     *int   `json:"index"`
}

// traceStats summarizes a replay run for reporting.
type traceStats struct {
	Steps      int    `json:"steps"`
	ByteAllocs int    `json:"byte_allocs"`
	PageAllocs int    `json:"page_allocs"`
	Deallocs   int    `json:"deallocs"`
	NoMemory   int    `json:"no_memory"`
	UsedBytes  uint64 `json:"used_bytes"`
	UsedPages  uint   `json:"used_pages"`
	AvailBytes uint64 `json:"available_bytes"`
}

type outstanding struct {
	addr mem.Addr
	size mem.Size
}

// replayTrace applies every operation in r to the allocator and returns the
// run summary. Blank lines and lines starting with # are skipped. A line
// that fails to parse aborts the replay; allocator-level failures
// (ErrNoMemory) are counted, logged, and replay continues, since traces
// recorded near exhaustion are the interesting ones.
func replayTrace(a *alloc.EarlyAllocator, r io.Reader, log *slog.Logger) (traceStats, error) {
	var stats traceStats
	var live []outstanding

	sc := bufio.NewScanner(r)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var op traceOp
		if err := json.UnmarshalFromString(line, &op); err != nil {
			return stats, fmt.Errorf("line %d: %w", lineNo, err)
		}
		stats.Steps++

		switch op.Op {
		case "alloc":
			addr, err := a.Alloc(mem.Size(op.Size), mem.Size(op.Align))
			if err != nil {
				stats.NoMemory++
				log.Debug("alloc failed", "line", lineNo, "size", op.Size, "err", err)
				continue
			}
			stats.ByteAllocs++
			live = append(live, outstanding{addr, mem.Size(op.Size)})
			log.Debug("alloc", "line", lineNo, "addr", addr, "size", op.Size)

		case "alloc_pages":
			addr, err := a.AllocPages(op.Pages, op.AlignPow2)
			if err != nil {
				stats.NoMemory++
				log.Debug("alloc_pages failed", "line", lineNo, "pages", op.Pages, "err", err)
				continue
			}
			stats.PageAllocs++
			log.Debug("alloc_pages", "line", lineNo, "addr", addr, "pages", op.Pages)

		case "dealloc":
			if len(live) == 0 {
				log.Debug("dealloc with nothing outstanding", "line", lineNo)
				continue
			}
			idx := len(live) - 1
			if op.Index != nil && *op.Index >= 0 && *op.Index < len(live) {
				idx = *op.Index
			}
			a.Dealloc(live[idx].addr, live[idx].size)
			live = append(live[:idx], live[idx+1:]...)
			stats.Deallocs++
			log.Debug("dealloc", "line", lineNo, "index", idx)

		case "dealloc_pages":
			// Accepted for trace completeness; the allocator never
			// reclaims pages.
			a.DeallocPages(0, op.Pages)
			stats.Deallocs++

		default:
			return stats, fmt.Errorf("line %d: unknown op %q", lineNo, op.Op)
		}
	}
	if err := sc.Err(); err != nil {
		return stats, err
	}

	stats.UsedBytes = uint64(a.UsedBytes())
	stats.UsedPages = a.UsedPages()
	stats.AvailBytes = uint64(a.AvailableBytes())
	return stats, nil
}

// printStats writes the run summary as text or JSON per the global flag.
func printStats(w io.Writer, a *alloc.EarlyAllocator, stats traceStats) error {
	if jsonOut {
		out, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(out))
		return nil
	}

	fmt.Fprintf(w, "steps:            %d\n", stats.Steps)
	fmt.Fprintf(w, "byte allocs:      %d\n", stats.ByteAllocs)
	fmt.Fprintf(w, "page allocs:      %d\n", stats.PageAllocs)
	fmt.Fprintf(w, "deallocs:         %d\n", stats.Deallocs)
	fmt.Fprintf(w, "out-of-memory:    %d\n", stats.NoMemory)
	fmt.Fprintf(w, "region:           %s total, %s used as bytes, %d pages used, %s available\n",
		a.TotalBytes(), a.UsedBytes(), a.UsedPages(), a.AvailableBytes())
	return nil
}
