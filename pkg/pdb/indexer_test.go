package pdb

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seamusw/cubesolver"
	"github.com/seamusw/cubesolver/internal/cubie"
)

func TestRankSolvedIsZero(t *testing.T) {
	assert.Equal(t, uint32(0), Rank(cubesolver.SolvedCorners()))
}

func TestRankUnrankOrientExhaustive(t *testing.T) {
	for r := uint32(0); r < OrientStates; r++ {
		orient := UnrankOrient(r)

		var sum uint32
		for _, o := range orient {
			require.LessOrEqual(t, o, uint8(2))
			sum += uint32(o)
		}
		require.Zero(t, sum%3, "unranked orientation %v violates the twist-sum invariant", orient)

		require.Equal(t, r, RankOrient(orient))
	}
}

func TestRankUnrankPermExhaustive(t *testing.T) {
	for r := uint32(0); r < PermStates; r++ {
		perm := unrankPerm(r)
		require.Equal(t, r, rankPerm(perm))
	}
}

func TestRankUnrankFullDomainSampled(t *testing.T) {
	// Stride through the 88M indices with a prime step; exhaustive coverage
	// follows from the exhaustive perm and orient tests above.
	for idx := uint32(0); idx < CornerStates; idx += 9973 {
		require.Equal(t, idx, Rank(Unrank(idx)))
	}
}

func TestRankFollowsMoves(t *testing.T) {
	// Ranks of reachable states stay in range and invert cleanly.
	rng := rand.New(rand.NewSource(11))
	c := cubie.Solved()

	for _, m := range cubesolver.Scramble(500, rng) {
		c = c.Apply(m)
		idx := Rank(c.Corners())
		require.Less(t, idx, uint32(CornerStates))
		require.Equal(t, c.Corners(), Unrank(idx))
	}
}

func TestRankPanicsOnMalformedPermutation(t *testing.T) {
	assert.Panics(t, func() {
		Rank(cubesolver.CornerProjection{Perm: [8]uint8{0, 0, 2, 3, 4, 5, 6, 7}})
	})
	assert.Panics(t, func() {
		Rank(cubesolver.CornerProjection{Perm: [8]uint8{0, 1, 2, 3, 4, 5, 6, 9}})
	})
}

func TestRankPanicsOnMalformedOrientation(t *testing.T) {
	assert.Panics(t, func() {
		RankOrient([8]uint8{3, 0, 0, 0, 0, 0, 0, 0})
	})
}

func TestUnrankPanicsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { Unrank(CornerStates) })
	assert.Panics(t, func() { UnrankOrient(OrientStates) })
}
