package cubesolver

// SolveDFS searches depth-first to the configured depth bound and returns
// the first solution found, which is not necessarily the shortest.
//
// The depth bound doubles as the cycle guard: cube states form a finite
// group, and an unbounded naive descent would walk in circles forever.
func SolveDFS[S State[S]](start S, opts ...Option) (*Solution, error) {
	cfg := newConfig(opts)

	if start.IsSolved() {
		return &Solution{}, nil
	}

	s := &searcher[S]{limit: cfg.maxDepth, budget: cfg.nodeBudget}
	found, err := s.dfs(start, 0, "")
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNoSolution
	}
	return s.solution(), nil
}

// dfs is the bounded depth-first core shared with SolveIDDFS.
//
// Moves on the same face as the previous move are skipped: no shortest
// sequence turns one face twice in a row, and the rule subsumes pruning the
// exact inverse of the last move.
func (s *searcher[S]) dfs(cur S, depth int, lastFace Face) (bool, error) {
	if cur.IsSolved() {
		return true, nil
	}
	if depth == s.limit {
		return false, nil
	}

	for _, m := range allMoves {
		if m.Face == lastFace {
			continue
		}
		if err := s.visit(); err != nil {
			return false, err
		}

		s.path = append(s.path, m)
		found, err := s.dfs(cur.Apply(m), depth+1, m.Face)
		if found || err != nil {
			return found, err
		}
		s.path = s.path[:len(s.path)-1]
	}

	return false, nil
}
