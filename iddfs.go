package cubesolver

// SolveIDDFS runs depth-first searches at depth limits 0, 1, 2, ... until a
// solution appears. The first successful limit is the minimum depth at which
// any solution exists, so the returned path is move-optimal while memory
// stays linear in the current limit.
//
// IDDFS returns the first solution found at the minimal depth; it does not
// enumerate alternatives of the same length.
func SolveIDDFS[S State[S]](start S, opts ...Option) (*Solution, error) {
	cfg := newConfig(opts)

	if start.IsSolved() {
		return &Solution{}, nil
	}

	var nodes uint64
	for limit := 1; limit <= cfg.maxDepth; limit++ {
		s := &searcher[S]{limit: limit, budget: cfg.nodeBudget, nodes: nodes}
		found, err := s.dfs(start, 0, "")
		if err != nil {
			return nil, err
		}
		if found {
			return s.solution(), nil
		}
		nodes = s.nodes
	}

	return nil, ErrNoSolution
}
