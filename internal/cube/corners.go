package cube

import "github.com/seamusw/cubesolver"

// facelet addresses a single sticker.
type facelet struct {
	face Face
	idx  int
}

// cornerFacelets lists the three stickers of each corner slot, clockwise
// around the corner starting with the sticker on the U or D face. Slot order
// matches cubesolver.CornerProjection: URF, UFL, ULB, UBR, DFR, DLF, DBL, DRB.
var cornerFacelets = [8][3]facelet{
	{{U, 8}, {R, 0}, {F, 2}}, // URF
	{{U, 6}, {F, 0}, {L, 2}}, // UFL
	{{U, 0}, {L, 0}, {B, 2}}, // ULB
	{{U, 2}, {B, 0}, {R, 2}}, // UBR
	{{D, 2}, {F, 8}, {R, 6}}, // DFR
	{{D, 0}, {L, 8}, {F, 6}}, // DLF
	{{D, 6}, {B, 8}, {L, 6}}, // DBL
	{{D, 8}, {R, 8}, {B, 6}}, // DRB
}

// cornerColors gives each corner piece's colors in the same clockwise order,
// read off the solved cube.
var cornerColors = [8][3]Color{
	{White, Red, Green},     // URF
	{White, Green, Orange},  // UFL
	{White, Orange, Blue},   // ULB
	{White, Blue, Red},      // UBR
	{Yellow, Green, Red},    // DFR
	{Yellow, Orange, Green}, // DLF
	{Yellow, Blue, Orange},  // DBL
	{Yellow, Red, Blue},     // DRB
}

// Corners reads the corner permutation and twist off the stickers.
//
// For each slot the twist is the position of the white-or-yellow sticker
// within the slot's clockwise triple; rotating the triple by the twist
// yields the piece's color signature, which identifies it.
func (c Cube) Corners() cubesolver.CornerProjection {
	var p cubesolver.CornerProjection

	for slot := 0; slot < 8; slot++ {
		var colors [3]Color
		for k := 0; k < 3; k++ {
			f := cornerFacelets[slot][k]
			colors[k] = c.Facelets[f.face][f.idx]
		}

		twist := 0
		for k := 0; k < 3; k++ {
			if colors[k] == White || colors[k] == Yellow {
				twist = k
				break
			}
		}

		rotated := [3]Color{
			colors[twist],
			colors[(twist+1)%3],
			colors[(twist+2)%3],
		}

		for piece := 0; piece < 8; piece++ {
			if cornerColors[piece] == rotated {
				p.Perm[slot] = uint8(piece)
				break
			}
		}
		p.Orient[slot] = uint8(twist)
	}

	return p
}
