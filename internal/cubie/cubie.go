// Package cubie models the cube at piece level: permutations and
// orientations of the eight corners and twelve edges. Moves compose as
// permutation-group multiplication against precomputed move cubes, which
// makes this the fast representation and the one the pattern-database
// builder works with.
package cubie

import "github.com/seamusw/cubesolver"

// Corner slots, named by their three adjacent faces.
const (
	URF = iota
	UFL
	ULB
	UBR
	DFR
	DLF
	DBL
	DRB
)

// Edge slots, named by their two adjacent faces.
const (
	UR = iota
	UF
	UL
	UB
	DR
	DF
	DL
	DB
	FR
	FL
	BL
	BR
)

// Cube is a cube configuration at piece level.
//
// CP[i] is the corner piece occupying slot i, CO[i] its twist (0 solved,
// 1 clockwise, 2 counter-clockwise); EP and EO the same for edges with flip
// in {0, 1}. The zero value is not meaningful; use Solved.
//
// Cube is a comparable value type, usable directly as a map key.
type Cube struct {
	CP [8]uint8
	CO [8]uint8
	EP [12]uint8
	EO [12]uint8
}

// Solved returns the solved configuration: every piece home, untwisted.
func Solved() Cube {
	return Cube{
		CP: [8]uint8{0, 1, 2, 3, 4, 5, 6, 7},
		EP: [12]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
	}
}

// IsSolved reports whether the cube is in the solved state.
func (c Cube) IsSolved() bool {
	return c == Solved()
}

// Apply returns the configuration after one face turn.
func (c Cube) Apply(m cubesolver.Move) Cube {
	return multiply(c, moveCubes[m.Token()])
}

// ApplyMoves returns the configuration after a sequence of turns.
func (c Cube) ApplyMoves(moves []cubesolver.Move) Cube {
	for _, m := range moves {
		c = c.Apply(m)
	}
	return c
}

// Corners returns the corner projection consumed by the pattern database.
func (c Cube) Corners() cubesolver.CornerProjection {
	return cubesolver.CornerProjection{Perm: c.CP, Orient: c.CO}
}

// FromCorners lifts a corner projection into a full configuration with
// solved edges. Moves applied to the result act on the corner coordinate
// exactly as they would on any full state sharing the projection, which is
// what the pattern-database builder needs to expand index successors.
func FromCorners(p cubesolver.CornerProjection) Cube {
	c := Solved()
	c.CP = p.Perm
	c.CO = p.Orient
	return c
}

// multiply composes a with b: the configuration reached by performing a,
// then the move b represents. Permutations chain through b's slots;
// orientations add mod 3 (corners) and mod 2 (edges).
func multiply(a, b Cube) Cube {
	var r Cube
	for i := 0; i < 8; i++ {
		r.CP[i] = a.CP[b.CP[i]]
		r.CO[i] = (a.CO[b.CP[i]] + b.CO[i]) % 3
	}
	for i := 0; i < 12; i++ {
		r.EP[i] = a.EP[b.EP[i]]
		r.EO[i] = (a.EO[b.EP[i]] + b.EO[i]) % 2
	}
	return r
}
