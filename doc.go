// Package cubesolver finds move sequences that solve a scrambled 3x3 Rubik's
// cube using classical state-space search.
//
// Four strategies are provided: breadth-first search (SolveBFS), bounded
// depth-first search (SolveDFS), iterative deepening (SolveIDDFS), and
// heuristic-guided iterative deepening (SolveIDAStar). BFS, IDDFS and IDA*
// return move-optimal solutions; DFS returns the first solution it finds.
//
// Solvers are generic over the State interface, so any cube representation
// that can apply moves, test for solved, and project its corner pieces can be
// searched. Two representations ship with the module: internal/cube (an
// array-of-facelets layout) and internal/cubie (piece permutations and
// orientations, the faster of the two).
//
// IDA* prunes with an admissible corner pattern database built by pkg/pdb:
// a precomputed table of exact solve distances for every corner
// configuration, constructed once by exhaustive backward search and reused
// from disk afterwards.
package cubesolver
