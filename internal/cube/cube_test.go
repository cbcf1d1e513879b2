package cube

import (
	"strings"
	"testing"

	"github.com/seamusw/cubesolver"
)

func TestNewCubeIsSolved(t *testing.T) {
	c := New()
	if !c.IsSolved() {
		t.Error("new cube should be solved")
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	c := New().Move(R, 1)
	if c.IsSolved() {
		t.Error("cube should not be solved after R move")
	}
}

func TestQuarterTurnOrder4AllFaces(t *testing.T) {
	for _, face := range []Face{U, D, F, B, R, L} {
		c := New()
		for i := 0; i < 4; i++ {
			c = c.Move(face, 1)
		}
		if !c.IsSolved() {
			t.Errorf("%v x 4 should return to solved", face)
			t.Log(c.String())
		}
	}
}

func TestCCWInvertsCW(t *testing.T) {
	for _, face := range []Face{U, D, F, B, R, L} {
		c := New().Move(face, 1).Move(face, -1)
		if !c.IsSolved() {
			t.Errorf("%v then %v' should return to solved", face, face)
			t.Log(c.String())
		}
	}
}

func TestDoubleTwiceReturnsToSolved(t *testing.T) {
	c := New().Move(R, 2).Move(R, 2)
	if !c.IsSolved() {
		t.Error("R2 R2 should return to solved")
		t.Log(c.String())
	}
}

func TestSexyMove6TimesReturnsToSolved(t *testing.T) {
	// (R U R' U') x 6 = identity
	c := New()
	for i := 0; i < 6; i++ {
		c = c.Move(R, 1).Move(U, 1).Move(R, -1).Move(U, -1)
	}
	if !c.IsSolved() {
		t.Error("sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestApplyNotationMoves(t *testing.T) {
	moves, err := cubesolver.ParseMoves("R U R' U'")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	byNotation := New().ApplyMoves(moves)
	direct := New().Move(R, 1).Move(U, 1).Move(R, -1).Move(U, -1)
	if byNotation != direct {
		t.Error("ApplyMoves should match direct face turns")
	}
}

func TestCentersNeverMove(t *testing.T) {
	moves, err := cubesolver.ParseMoves("R U2 F' D L2 B' R' U F2 D'")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	c := New().ApplyMoves(moves)

	for face := Face(0); face < 6; face++ {
		if c.Facelets[face][4] != faceToSolvedColor(face) {
			t.Errorf("%v center = %v, want %v", face, c.Facelets[face][4], faceToSolvedColor(face))
		}
	}
}

func TestStickerCountsPreserved(t *testing.T) {
	moves, err := cubesolver.ParseMoves("R U R' F2 D' L B2")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	c := New().ApplyMoves(moves)

	counts := make(map[Color]int)
	for face := 0; face < 6; face++ {
		for i := 0; i < 9; i++ {
			counts[c.Facelets[face][i]]++
		}
	}
	for color, n := range counts {
		if n != 9 {
			t.Errorf("color %v appears %d times, want 9", color, n)
		}
	}
}

func TestCornersOfSolved(t *testing.T) {
	if New().Corners() != cubesolver.SolvedCorners() {
		t.Errorf("Corners() of solved = %v, want solved projection", New().Corners())
	}
}

func TestCornerTwistAfterR(t *testing.T) {
	// An R turn twists the four R-layer corners; the U/L layer stays put.
	p := New().Apply(cubesolver.R).Corners()

	untouched := []int{1, 2, 5, 6} // UFL, ULB, DLF, DBL
	for _, slot := range untouched {
		if p.Perm[slot] != uint8(slot) || p.Orient[slot] != 0 {
			t.Errorf("slot %d should be untouched by R, got piece %d twist %d",
				slot, p.Perm[slot], p.Orient[slot])
		}
	}

	var twist int
	for _, o := range p.Orient {
		twist += int(o)
	}
	if twist%3 != 0 {
		t.Errorf("twist sum = %d, want multiple of 3", twist)
	}
}

func TestStringNet(t *testing.T) {
	s := New().String()
	if !strings.Contains(s, "W W W") {
		t.Error("solved net should contain a white row")
	}
	if strings.Count(s, "\n") != 9 {
		t.Errorf("net should have 9 lines, got %d", strings.Count(s, "\n"))
	}
}
