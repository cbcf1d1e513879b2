// Package cube provides a 3x3 Rubik's cube model in an array-of-facelets
// layout. It is the slower but directly inspectable representation; the
// solvers accept it interchangeably with the cubie layout.
package cube

import (
	"strings"

	"github.com/seamusw/cubesolver"
)

// Color represents a face color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Face represents a cube face.
type Face int

const (
	U Face = 0 // Up (White)
	D Face = 1 // Down (Yellow)
	F Face = 2 // Front (Green)
	B Face = 3 // Back (Blue)
	R Face = 4 // Right (Red)
	L Face = 5 // Left (Orange)
)

func (f Face) String() string {
	switch f {
	case U:
		return "U"
	case D:
		return "D"
	case F:
		return "F"
	case B:
		return "B"
	case R:
		return "R"
	case L:
		return "L"
	default:
		return "?"
	}
}

// Cube represents a 3x3 Rubik's cube.
// Each face has 9 facelets indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// The center (index 4) defines the face color and never moves.
//
// Cube is a comparable value type: moves return a new value, and two equal
// values are the same configuration.
type Cube struct {
	// Facelets[face][position] = color
	Facelets [6][9]Color
}

// New creates a solved cube with standard orientation:
// White on top, Green in front.
func New() Cube {
	var c Cube
	for face := Face(0); face < 6; face++ {
		color := faceToSolvedColor(face)
		for i := 0; i < 9; i++ {
			c.Facelets[face][i] = color
		}
	}
	return c
}

// faceToSolvedColor returns the color of a face when solved.
func faceToSolvedColor(f Face) Color {
	switch f {
	case U:
		return White
	case D:
		return Yellow
	case F:
		return Green
	case B:
		return Blue
	case R:
		return Red
	case L:
		return Orange
	default:
		return White
	}
}

// IsSolved returns true if the cube is in the solved state.
func (c Cube) IsSolved() bool {
	return c == New()
}

// Apply returns the cube after one face turn in standard notation.
func (c Cube) Apply(m cubesolver.Move) Cube {
	return c.Move(faceFromNotation(m.Face), int(m.Turn))
}

func faceFromNotation(f cubesolver.Face) Face {
	switch f {
	case cubesolver.FaceU:
		return U
	case cubesolver.FaceD:
		return D
	case cubesolver.FaceF:
		return F
	case cubesolver.FaceB:
		return B
	case cubesolver.FaceR:
		return R
	case cubesolver.FaceL:
		return L
	default:
		return U
	}
}

// ApplyMoves returns the cube after a sequence of turns.
func (c Cube) ApplyMoves(moves []cubesolver.Move) Cube {
	for _, m := range moves {
		c = c.Apply(m)
	}
	return c
}

// Move returns the cube after turning a face.
// turn: 1 = CW, -1 = CCW, 2 = 180 degrees
func (c Cube) Move(face Face, turn int) Cube {
	switch turn {
	case 1:
		c.moveCW(face)
	case -1:
		c.moveCW(face)
		c.moveCW(face)
		c.moveCW(face)
	case 2:
		c.moveCW(face)
		c.moveCW(face)
	}
	return c
}

// moveCW applies a clockwise move in place. The pointer receiver stays
// unexported; callers only see copy-returning methods.
func (c *Cube) moveCW(face Face) {
	c.rotateFaceCW(face)
	c.cycleEdgesCW(face)
}

// rotateFaceCW rotates a face's own stickers 90 degrees clockwise.
func (c *Cube) rotateFaceCW(face Face) {
	f := &c.Facelets[face]
	// Corner rotation: 0->2->8->6->0
	// Edge rotation: 1->5->7->3->1
	temp := f[0]
	f[0] = f[6]
	f[6] = f[8]
	f[8] = f[2]
	f[2] = temp

	temp = f[1]
	f[1] = f[3]
	f[3] = f[7]
	f[7] = f[5]
	f[5] = temp
}

// cycleEdgesCW cycles the facelets adjacent to a face (clockwise).
func (c *Cube) cycleEdgesCW(face Face) {
	switch face {
	case U:
		// U affects F, L, B, R top rows
		c.cycle4(
			F, [3]int{0, 1, 2},
			L, [3]int{0, 1, 2},
			B, [3]int{0, 1, 2},
			R, [3]int{0, 1, 2},
		)
	case D:
		// D affects F, R, B, L bottom rows (opposite direction)
		c.cycle4(
			F, [3]int{6, 7, 8},
			R, [3]int{6, 7, 8},
			B, [3]int{6, 7, 8},
			L, [3]int{6, 7, 8},
		)
	case F:
		// F affects U bottom, R left, D top, L right
		c.cycle4(
			U, [3]int{6, 7, 8},
			R, [3]int{0, 3, 6},
			D, [3]int{2, 1, 0},
			L, [3]int{8, 5, 2},
		)
	case B:
		// B affects U top, L left, D bottom, R right
		c.cycle4(
			U, [3]int{2, 1, 0},
			L, [3]int{0, 3, 6},
			D, [3]int{6, 7, 8},
			R, [3]int{8, 5, 2},
		)
	case R:
		// R affects U right, B left, D right, F right
		c.cycle4(
			U, [3]int{2, 5, 8},
			B, [3]int{6, 3, 0},
			D, [3]int{2, 5, 8},
			F, [3]int{2, 5, 8},
		)
	case L:
		// L affects U left, F left, D left, B right
		c.cycle4(
			U, [3]int{0, 3, 6},
			F, [3]int{0, 3, 6},
			D, [3]int{0, 3, 6},
			B, [3]int{8, 5, 2},
		)
	}
}

// cycle4 cycles 4 groups of 3 facelets: group 1 receives group 4, 4 receives
// 3, 3 receives 2, and 2 receives the saved group 1.
func (c *Cube) cycle4(f1 Face, i1 [3]int, f2 Face, i2 [3]int, f3 Face, i3 [3]int, f4 Face, i4 [3]int) {
	t := [3]Color{
		c.Facelets[f1][i1[0]],
		c.Facelets[f1][i1[1]],
		c.Facelets[f1][i1[2]],
	}

	for k := 0; k < 3; k++ {
		c.Facelets[f1][i1[k]] = c.Facelets[f4][i4[k]]
	}
	for k := 0; k < 3; k++ {
		c.Facelets[f4][i4[k]] = c.Facelets[f3][i3[k]]
	}
	for k := 0; k < 3; k++ {
		c.Facelets[f3][i3[k]] = c.Facelets[f2][i2[k]]
	}
	for k := 0; k < 3; k++ {
		c.Facelets[f2][i2[k]] = t[k]
	}
}

// String returns a text representation of the cube as an unfolded net.
func (c Cube) String() string {
	var sb strings.Builder

	// U face (indented)
	for row := 0; row < 3; row++ {
		sb.WriteString("      ")
		for col := 0; col < 3; col++ {
			sb.WriteString(c.Facelets[U][row*3+col].String() + " ")
		}
		sb.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []Face{L, F, R, B} {
			for col := 0; col < 3; col++ {
				sb.WriteString(c.Facelets[face][row*3+col].String() + " ")
			}
		}
		sb.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		sb.WriteString("      ")
		for col := 0; col < 3; col++ {
			sb.WriteString(c.Facelets[D][row*3+col].String() + " ")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
