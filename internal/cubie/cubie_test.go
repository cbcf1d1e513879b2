package cubie

import (
	"math/rand"
	"testing"

	"github.com/seamusw/cubesolver"
	"github.com/seamusw/cubesolver/internal/cube"
)

func TestSolvedIsSolved(t *testing.T) {
	if !Solved().IsSolved() {
		t.Error("Solved() should report solved")
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	c := Solved().Apply(cubesolver.R)
	if c.IsSolved() {
		t.Error("cube should not be solved after R move")
	}
}

func TestQuarterTurnOrder4(t *testing.T) {
	for _, m := range []cubesolver.Move{
		cubesolver.R, cubesolver.L, cubesolver.U,
		cubesolver.D, cubesolver.F, cubesolver.B,
	} {
		c := Solved()
		for i := 0; i < 4; i++ {
			c = c.Apply(m)
		}
		if !c.IsSolved() {
			t.Errorf("%v x 4 should return to solved", m)
		}
	}
}

func TestMoveThenInverse(t *testing.T) {
	for _, m := range cubesolver.Moves() {
		c := Solved().Apply(m).Apply(m.Inverse())
		if !c.IsSolved() {
			t.Errorf("%v then %v should return to solved", m, m.Inverse())
		}
	}
}

func TestDoubleEqualsTwoQuarters(t *testing.T) {
	for _, face := range []cubesolver.Face{
		cubesolver.FaceR, cubesolver.FaceL, cubesolver.FaceU,
		cubesolver.FaceD, cubesolver.FaceF, cubesolver.FaceB,
	} {
		cw := cubesolver.Move{Face: face, Turn: cubesolver.CW}
		double := cubesolver.Move{Face: face, Turn: cubesolver.Double}

		a := Solved().Apply(double)
		b := Solved().Apply(cw).Apply(cw)
		if a != b {
			t.Errorf("%v2 should equal %v %v", face, face, face)
		}
	}
}

func TestSexyMove6TimesReturnsToSolved(t *testing.T) {
	// (R U R' U') x 6 = identity
	c := Solved()
	for i := 0; i < 6; i++ {
		c = c.ApplyMoves([]cubesolver.Move{
			cubesolver.R, cubesolver.U, cubesolver.RPrime, cubesolver.UPrime,
		})
	}
	if !c.IsSolved() {
		t.Error("sexy move x 6 should return to solved")
	}
}

func TestTwistSumInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	c := Solved().ApplyMoves(cubesolver.Scramble(200, rng))

	var twist uint8
	for _, o := range c.CO {
		twist += o
	}
	if twist%3 != 0 {
		t.Errorf("corner twist sum = %d, want multiple of 3", twist)
	}

	var flip uint8
	for _, o := range c.EO {
		flip += o
	}
	if flip%2 != 0 {
		t.Errorf("edge flip sum = %d, want even", flip)
	}
}

func TestCornersOfSolved(t *testing.T) {
	if Solved().Corners() != cubesolver.SolvedCorners() {
		t.Errorf("Corners() of solved = %v, want %v", Solved().Corners(), cubesolver.SolvedCorners())
	}
}

func TestFromCornersRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	c := Solved().ApplyMoves(cubesolver.Scramble(30, rng))

	if FromCorners(c.Corners()).Corners() != c.Corners() {
		t.Error("FromCorners should preserve the corner projection")
	}
}

func TestFromCornersCommutesWithMoves(t *testing.T) {
	// Moves act on the corner projection the same way whether the edges are
	// real or filled in solved; the database builder relies on this.
	rng := rand.New(rand.NewSource(3))
	c := Solved().ApplyMoves(cubesolver.Scramble(30, rng))

	for _, m := range cubesolver.Moves() {
		want := c.Apply(m).Corners()
		got := FromCorners(c.Corners()).Apply(m).Corners()
		if got != want {
			t.Errorf("%v: lifted projection moved to %v, want %v", m, got, want)
		}
	}
}

func TestAgreesWithFaceletModel(t *testing.T) {
	// Both representations implement the same cube; their corner projections
	// must agree after any move sequence.
	scrambles := []string{
		"R",
		"U'",
		"F2",
		"R U R' U'",
		"L2 B D' F R2 U",
		"B' D F2 L' U2 R D' B L F",
	}

	for _, notation := range scrambles {
		moves, err := cubesolver.ParseMoves(notation)
		if err != nil {
			t.Fatalf("bad scramble %q: %v", notation, err)
		}

		fromCubie := Solved().ApplyMoves(moves).Corners()
		fromFacelet := cube.New().ApplyMoves(moves).Corners()
		if fromCubie != fromFacelet {
			t.Errorf("scramble %q: cubie corners %v, facelet corners %v",
				notation, fromCubie, fromFacelet)
		}
	}
}
