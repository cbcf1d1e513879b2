package pdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seamusw/cubesolver"
	"github.com/seamusw/cubesolver/internal/cubie"
)

// The corner-orientations domain is small enough to build and verify
// exhaustively in every test run; the full corner domain shares all the code
// paths and differs only in Index/Expand.

func TestBuildSolvedDistanceZero(t *testing.T) {
	table := Build(CornerOrientations())

	d, err := table.Lookup(table.Domain().Index(cubesolver.SolvedCorners()))
	require.NoError(t, err)
	assert.Equal(t, uint8(0), d)
	assert.Equal(t, 0, table.Estimate(cubesolver.SolvedCorners()))
}

func TestBuildReachesEveryIndex(t *testing.T) {
	table := Build(CornerOrientations())

	var total uint64
	for _, count := range table.Histogram() {
		total += count
	}
	assert.Equal(t, uint64(OrientStates), total, "every orientation index should be reachable")
}

func TestBuildDistancesConsistent(t *testing.T) {
	// Adjacent states differ by at most one move, so stored distances may
	// never jump by more than one across a move. This is the local form of
	// admissibility.
	d := CornerOrientations()
	table := Build(d)

	for idx := uint32(0); idx < d.Size(); idx++ {
		here, err := table.Lookup(idx)
		require.NoError(t, err)

		d.Expand(idx, func(succ uint32) {
			there, err := table.Lookup(succ)
			require.NoError(t, err)

			diff := int(here) - int(there)
			if diff < 0 {
				diff = -diff
			}
			require.LessOrEqual(t, diff, 1,
				"indices %d and %d are one move apart but %d and %d moves from solved",
				idx, succ, here, there)
		})
	}
}

func TestBuildEstimateNeverOverestimates(t *testing.T) {
	// A state scrambled with k moves is at most k moves from solved, so an
	// admissible heuristic must report at most k.
	table := Build(CornerOrientations())

	scrambles := []string{"R", "R U", "R U F'", "R U F' D", "R U F' D L2"}
	for _, notation := range scrambles {
		moves, err := cubesolver.ParseMoves(notation)
		require.NoError(t, err)

		c := cubie.Solved().ApplyMoves(moves)
		assert.LessOrEqual(t, table.Estimate(c.Corners()), len(moves), "scramble %q", notation)
	}
}

func TestBuildWorkerCountsAgree(t *testing.T) {
	// The level-synchronous search is deterministic in the distances it
	// assigns no matter how the frontier is split.
	serial := Build(CornerOrientations(), WithWorkers(1))
	parallel := Build(CornerOrientations(), WithWorkers(8))

	for idx := uint32(0); idx < OrientStates; idx++ {
		a, err := serial.Lookup(idx)
		require.NoError(t, err)
		b, err := parallel.Lookup(idx)
		require.NoError(t, err)
		require.Equal(t, a, b, "index %d", idx)
	}
}

func TestBuildProgressReported(t *testing.T) {
	var levels []Progress
	table := Build(CornerOrientations(), WithProgress(func(p Progress) {
		levels = append(levels, p)
	}))

	require.NotEmpty(t, levels)

	// One report per level, depths ascending, totals non-decreasing, and the
	// final total covers the whole domain.
	var discovered uint64 = 1 // root
	for i, p := range levels {
		assert.Equal(t, i, p.Depth)
		discovered += p.Discovered
		assert.Equal(t, discovered, p.Total)
	}
	assert.Equal(t, uint64(table.Size()), levels[len(levels)-1].Total)
	assert.Equal(t, int(table.MaxDistance()), levels[len(levels)-1].Depth)
}

func TestTableLookupPanicsOutOfRange(t *testing.T) {
	table := Build(CornerOrientations())
	assert.Panics(t, func() { table.Lookup(OrientStates) })
}

func TestHistogramMatchesMaxDistance(t *testing.T) {
	table := Build(CornerOrientations())

	h := table.Histogram()
	require.Len(t, h, int(table.MaxDistance())+1)
	assert.NotZero(t, h[table.MaxDistance()], "some state should sit at the maximum distance")
	assert.Equal(t, uint64(1), h[0], "only the solved projection is at distance 0")
}
