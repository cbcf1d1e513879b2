package cubie

// Quarter-turn move cubes: the configuration a single clockwise turn leaves
// a solved cube in. All 18 move cubes derive from these six at init.
var (
	moveU = Cube{
		CP: [8]uint8{UBR, URF, UFL, ULB, DFR, DLF, DBL, DRB},
		EP: [12]uint8{UB, UR, UF, UL, DR, DF, DL, DB, FR, FL, BL, BR},
	}
	moveR = Cube{
		CP: [8]uint8{DFR, UFL, ULB, URF, DRB, DLF, DBL, UBR},
		CO: [8]uint8{2, 0, 0, 1, 1, 0, 0, 2},
		EP: [12]uint8{FR, UF, UL, UB, BR, DF, DL, DB, DR, FL, BL, UR},
	}
	moveF = Cube{
		CP: [8]uint8{UFL, DLF, ULB, UBR, URF, DFR, DBL, DRB},
		CO: [8]uint8{1, 2, 0, 0, 2, 1, 0, 0},
		EP: [12]uint8{UR, FL, UL, UB, DR, FR, DL, DB, UF, DF, BL, BR},
		EO: [12]uint8{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0},
	}
	moveD = Cube{
		CP: [8]uint8{URF, UFL, ULB, UBR, DLF, DBL, DRB, DFR},
		EP: [12]uint8{UR, UF, UL, UB, DF, DL, DB, DR, FR, FL, BL, BR},
	}
	moveL = Cube{
		CP: [8]uint8{URF, ULB, DBL, UBR, DFR, UFL, DLF, DRB},
		CO: [8]uint8{0, 1, 2, 0, 0, 2, 1, 0},
		EP: [12]uint8{UR, UF, BL, UB, DR, DF, FL, DB, FR, UL, DL, BR},
	}
	moveB = Cube{
		CP: [8]uint8{URF, UFL, UBR, DRB, DFR, DLF, ULB, DBL},
		CO: [8]uint8{0, 0, 1, 2, 0, 0, 2, 1},
		EP: [12]uint8{UR, UF, UL, BR, DR, DF, DL, BL, FR, FL, UB, DB},
		EO: [12]uint8{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1},
	}
)

// moveCubes holds one move cube per move token, in cubesolver.Move.Token
// order (R, L, U, D, F, B; CCW, CW, 180 within each face).
// Counter-clockwise turns are three clockwise turns, half turns two.
var moveCubes = func() [18]Cube {
	quarter := [6]Cube{moveR, moveL, moveU, moveD, moveF, moveB}

	var cubes [18]Cube
	for face := 0; face < 6; face++ {
		cw := quarter[face]
		double := multiply(cw, cw)
		ccw := multiply(double, cw)

		cubes[face*3+0] = ccw
		cubes[face*3+1] = cw
		cubes[face*3+2] = double
	}
	return cubes
}()
