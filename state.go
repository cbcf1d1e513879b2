package cubesolver

// CornerProjection is the view of a cube state reduced to its eight corner
// pieces: which piece sits in each corner slot and how it is twisted.
// Slot order is URF, UFL, ULB, UBR, DFR, DLF, DBL, DRB.
//
// Distinct full states may share a projection; the pattern database is keyed
// on it.
type CornerProjection struct {
	Perm   [8]uint8 // piece occupying each slot
	Orient [8]uint8 // twist of that piece: 0 solved, 1 CW, 2 CCW
}

// SolvedCorners returns the projection of the solved cube.
func SolvedCorners() CornerProjection {
	return CornerProjection{Perm: [8]uint8{0, 1, 2, 3, 4, 5, 6, 7}}
}

// State is the capability set the solvers need from a cube representation.
//
// The solvers are generic over State rather than depending on a concrete
// layout, so representations can be swapped without touching search logic.
// The comparable requirement gives BFS its visited-set key: two states equal
// as Go values must be the same cube configuration.
//
// Apply must be deterministic and total over all 18 moves, and must return a
// new value rather than mutating in place.
type State[S comparable] interface {
	comparable
	Apply(Move) S
	IsSolved() bool
	Corners() CornerProjection
}
