package cubesolver

import "math/rand"

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	state = state.Apply(cubesolver.R).Apply(cubesolver.UPrime)
var (
	// Right face moves
	R      = Move{Face: FaceR, Turn: CW}     // Right clockwise
	RPrime = Move{Face: FaceR, Turn: CCW}    // Right counter-clockwise
	R2     = Move{Face: FaceR, Turn: Double} // Right 180

	// Left face moves
	L      = Move{Face: FaceL, Turn: CW}     // Left clockwise
	LPrime = Move{Face: FaceL, Turn: CCW}    // Left counter-clockwise
	L2     = Move{Face: FaceL, Turn: Double} // Left 180

	// Up face moves
	U      = Move{Face: FaceU, Turn: CW}     // Up clockwise
	UPrime = Move{Face: FaceU, Turn: CCW}    // Up counter-clockwise
	U2     = Move{Face: FaceU, Turn: Double} // Up 180

	// Down face moves
	D      = Move{Face: FaceD, Turn: CW}     // Down clockwise
	DPrime = Move{Face: FaceD, Turn: CCW}    // Down counter-clockwise
	D2     = Move{Face: FaceD, Turn: Double} // Down 180

	// Front face moves
	F      = Move{Face: FaceF, Turn: CW}     // Front clockwise
	FPrime = Move{Face: FaceF, Turn: CCW}    // Front counter-clockwise
	F2     = Move{Face: FaceF, Turn: Double} // Front 180

	// Back face moves
	B      = Move{Face: FaceB, Turn: CW}     // Back clockwise
	BPrime = Move{Face: FaceB, Turn: CCW}    // Back counter-clockwise
	B2     = Move{Face: FaceB, Turn: Double} // Back 180
)

// allMoves holds the 18 face turns in token order.
var allMoves = func() [18]Move {
	var ms [18]Move
	for t := uint8(0); t < 18; t++ {
		ms[t] = MoveFromToken(t)
	}
	return ms
}()

// Moves returns all 18 face turns in token order.
func Moves() []Move {
	ms := allMoves
	return ms[:]
}

// Scramble generates n random moves with no two consecutive moves on the
// same face, so the sequence never trivially shortens.
func Scramble(n int, rng *rand.Rand) []Move {
	moves := make([]Move, 0, n)
	var lastFace Face
	for len(moves) < n {
		m := allMoves[rng.Intn(18)]
		if m.Face == lastFace {
			continue
		}
		moves = append(moves, m)
		lastFace = m.Face
	}
	return moves
}
