package cubesolver

// SolveBFS searches breadth-first from the scrambled state and returns a
// move-optimal solution.
//
// Memory grows with the branching factor raised to the scramble depth, so
// BFS is only viable for shallow scrambles. It is kept as a correctness
// oracle for the other strategies; give it a node budget for anything deeper
// than a handful of moves.
func SolveBFS[S State[S]](start S, opts ...Option) (*Solution, error) {
	cfg := newConfig(opts)

	if start.IsSolved() {
		return &Solution{}, nil
	}

	type entry struct {
		state S
		path  []Move
	}

	visited := map[S]struct{}{start: {}}
	queue := []entry{{state: start}}
	var nodes uint64

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if len(cur.path) >= cfg.maxDepth {
			continue
		}

		for _, m := range allMoves {
			nodes++
			if cfg.nodeBudget > 0 && nodes > cfg.nodeBudget {
				return nil, ErrBudgetExceeded
			}

			next := cur.state.Apply(m)
			if _, seen := visited[next]; seen {
				continue
			}

			path := make([]Move, len(cur.path)+1)
			copy(path, cur.path)
			path[len(cur.path)] = m

			// First discovery is at minimal depth: BFS expands in
			// non-decreasing path length.
			if next.IsSolved() {
				return &Solution{Moves: path, Nodes: nodes}, nil
			}

			visited[next] = struct{}{}
			queue = append(queue, entry{state: next, path: path})
		}
	}

	return nil, ErrNoSolution
}
