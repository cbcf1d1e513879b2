package cubesolver

// Solution is the result of a successful solve call.
type Solution struct {
	Moves []Move // ordered moves from the scrambled state to solved
	Nodes uint64 // states visited during the search
}

// Length returns the number of moves in the solution.
func (s *Solution) Length() int {
	return len(s.Moves)
}

// String returns the solution in standard notation.
func (s *Solution) String() string {
	return FormatMoves(s.Moves)
}

// searcher carries the bookkeeping shared by the depth-bounded strategies:
// the move path to the current node (grown on descent, truncated on
// backtrack) and the visited-node count checked against the budget.
type searcher[S State[S]] struct {
	limit  int
	budget uint64
	nodes  uint64
	path   []Move
}

// visit counts a node against the budget.
func (s *searcher[S]) visit() error {
	s.nodes++
	if s.budget > 0 && s.nodes > s.budget {
		return ErrBudgetExceeded
	}
	return nil
}

// solution copies the current path into a Solution.
func (s *searcher[S]) solution() *Solution {
	moves := make([]Move, len(s.path))
	copy(moves, s.path)
	return &Solution{Moves: moves, Nodes: s.nodes}
}
