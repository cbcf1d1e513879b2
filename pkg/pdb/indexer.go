// Package pdb implements the corner pattern database: an exhaustive table of
// minimal solve distances for cube corner configurations, used as an
// admissible heuristic by IDA*.
//
// Corner configurations are ranked into dense integers by a mixed-radix
// code: a factorial-number-system rank of the permutation joined with a
// base-3 rank of the orientations. Only seven orientation digits are stored;
// the eighth twist is forced by the cube's twist-sum invariant, which shrinks
// the table by a factor of three.
package pdb

import (
	"fmt"
	"math/bits"

	"github.com/seamusw/cubesolver"
)

const (
	// PermStates is 8!, the number of corner permutations.
	PermStates = 40320
	// OrientStates is 3^7, the number of reachable corner orientation
	// vectors (the last twist is determined by the first seven).
	OrientStates = 2187
	// CornerStates is the full corner domain size, 8! * 3^7.
	CornerStates = PermStates * OrientStates
)

// factorial[i] = i!
var factorial = [9]uint32{1, 1, 2, 6, 24, 120, 720, 5040, 40320}

// selectBit[b][j] is the position of the j-th set bit of byte b, filled at
// init so permutation unranking stays O(k) instead of rescanning the free
// set per digit.
var selectBit = func() (t [256][8]uint8) {
	for b := 0; b < 256; b++ {
		j := 0
		for pos := uint8(0); pos < 8; pos++ {
			if b&(1<<pos) != 0 {
				t[b][j] = pos
				j++
			}
		}
	}
	return t
}()

// Rank maps a corner projection to a dense index in [0, CornerStates).
// Rank and Unrank are exact inverses over the full domain. A malformed
// projection is a programming error and panics.
func Rank(p cubesolver.CornerProjection) uint32 {
	return rankPerm(p.Perm)*OrientStates + RankOrient(p.Orient)
}

// Unrank recovers the corner projection for an index.
// Indices outside [0, CornerStates) are a programming error and panic.
func Unrank(idx uint32) cubesolver.CornerProjection {
	if idx >= CornerStates {
		panic(fmt.Sprintf("pdb: index %d out of range [0, %d)", idx, CornerStates))
	}
	return cubesolver.CornerProjection{
		Perm:   unrankPerm(idx / OrientStates),
		Orient: UnrankOrient(idx % OrientStates),
	}
}

// rankPerm computes the factorial-number-system rank of a permutation of
// 0..7. Each digit counts the not-yet-seen values smaller than the current
// one, tracked as a bitmask so the whole rank is O(k) with popcount rather
// than O(k^2) rescanning.
func rankPerm(perm [8]uint8) uint32 {
	var r uint32
	var seen uint16

	for i := 0; i < 8; i++ {
		v := perm[i]
		if v > 7 || seen&(1<<v) != 0 {
			panic(fmt.Sprintf("pdb: malformed corner permutation %v", perm))
		}
		smaller := uint8(bits.OnesCount16(seen & (1<<v - 1)))
		r += uint32(v-smaller) * factorial[7-i]
		seen |= 1 << v
	}

	return r
}

// unrankPerm inverts rankPerm: successive division by descending factorials
// yields each digit, and the digit selects the d-th still-unused value via
// the precomputed select table.
func unrankPerm(r uint32) [8]uint8 {
	var perm [8]uint8
	free := uint8(0xFF)

	for i := 0; i < 8; i++ {
		f := factorial[7-i]
		d := r / f
		r %= f

		v := selectBit[free][d]
		perm[i] = v
		free &^= 1 << v
	}

	return perm
}

// RankOrient ranks the first seven twist digits in base 3. The eighth digit
// carries no information: reachable states always twist to a multiple of
// three in total.
func RankOrient(orient [8]uint8) uint32 {
	var r uint32
	for i := 0; i < 7; i++ {
		o := orient[i]
		if o > 2 {
			panic(fmt.Sprintf("pdb: malformed corner orientation %v", orient))
		}
		r = r*3 + uint32(o)
	}
	return r
}

// UnrankOrient inverts RankOrient, reconstructing the forced eighth twist
// from the twist-sum invariant.
func UnrankOrient(r uint32) [8]uint8 {
	if r >= OrientStates {
		panic(fmt.Sprintf("pdb: orientation index %d out of range [0, %d)", r, OrientStates))
	}

	var orient [8]uint8
	var sum uint32
	for i := 6; i >= 0; i-- {
		o := r % 3
		r /= 3
		orient[i] = uint8(o)
		sum += o
	}
	orient[7] = uint8((3 - sum%3) % 3)

	return orient
}
