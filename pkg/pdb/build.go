package pdb

import (
	"runtime"
	"sync"

	"github.com/seamusw/cubesolver"
)

// successor chunks streamed from the expansion workers to the writer.
const chunkSize = 1 << 16

// Progress reports one completed level of the backward search.
type Progress struct {
	Depth      int    // level just completed
	Discovered uint64 // indices first reached at this level
	Total      uint64 // indices reached so far
}

// BuildOption configures Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	workers  int
	progress func(Progress)
}

// WithWorkers sets the number of expansion goroutines.
// The default is runtime.GOMAXPROCS(0).
func WithWorkers(n int) BuildOption {
	return func(c *buildConfig) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithProgress installs a callback invoked after each completed level.
// Construction takes minutes for the full corner domain; callers should
// surface this rather than appear hung.
func WithProgress(fn func(Progress)) BuildOption {
	return func(c *buildConfig) {
		c.progress = fn
	}
}

// Build constructs the distance table for a domain by backward breadth-first
// search from the solved projection.
//
// Levels are explored in lockstep: the frontier of indices first reached at
// the current depth is split across worker goroutines, each expanding its
// share through the 18 moves and streaming successor indices back in chunks.
// A single writer assigns distances, so the first-write-wins rule — and with
// it admissibility — needs no per-slot locking: BFS order guarantees the
// first write at any index is its minimal distance, and later rediscoveries
// find the entry taken.
func Build(d Domain, opts ...BuildOption) *Table {
	cfg := &buildConfig{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(cfg)
	}

	data := make([]uint8, d.Size())
	for i := range data {
		data[i] = unreached
	}

	root := d.Index(cubesolver.SolvedCorners())
	data[root] = 0
	frontier := []uint32{root}
	total := uint64(1)

	for depth := 0; len(frontier) > 0; depth++ {
		next := expandLevel(d, data, frontier, uint8(depth+1), cfg.workers)
		total += uint64(len(next))

		if cfg.progress != nil {
			cfg.progress(Progress{Depth: depth, Discovered: uint64(len(next)), Total: total})
		}
		frontier = next
	}

	return &Table{domain: d, data: data}
}

// expandLevel expands one frontier level and returns the indices first
// discovered at the new depth. Workers only read their frontier share; the
// caller's goroutine is the sole writer to the table.
func expandLevel(d Domain, data []uint8, frontier []uint32, depth uint8, workers int) []uint32 {
	if workers > len(frontier) {
		workers = len(frontier)
	}

	out := make(chan []uint32, workers*4)
	var wg sync.WaitGroup

	share := (len(frontier) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * share
		hi := lo + share
		if hi > len(frontier) {
			hi = len(frontier)
		}

		wg.Add(1)
		go func(part []uint32) {
			defer wg.Done()
			buf := make([]uint32, 0, chunkSize)
			for _, idx := range part {
				d.Expand(idx, func(succ uint32) {
					buf = append(buf, succ)
					if len(buf) == chunkSize {
						out <- buf
						buf = make([]uint32, 0, chunkSize)
					}
				})
			}
			if len(buf) > 0 {
				out <- buf
			}
		}(frontier[lo:hi])
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	var next []uint32
	for buf := range out {
		for _, succ := range buf {
			if data[succ] == unreached {
				data[succ] = depth
				next = append(next, succ)
			}
		}
	}
	return next
}
