package cubesolver

import "math"

// Heuristic estimates the number of moves still needed to solve a state,
// judged from its corner projection. It must never overestimate the true
// distance, or the search loses its optimality guarantee.
// pdb.Table.Estimate satisfies this contract.
type Heuristic func(CornerProjection) int

// SolveIDAStar runs iteratively deepened A*: depth-first probes bounded on
// f = g + h instead of g alone, with the bound raised between iterations.
// With an admissible heuristic the returned path is move-optimal, and the
// heuristic prunes the overwhelming majority of the tree that plain IDDFS
// would visit.
func SolveIDAStar[S State[S]](start S, h Heuristic, opts ...Option) (*Solution, error) {
	cfg := newConfig(opts)

	if start.IsSolved() {
		return &Solution{}, nil
	}

	var nodes uint64
	threshold := h(start.Corners())
	for threshold <= cfg.maxDepth {
		s := &idaSearcher[S]{
			searcher: searcher[S]{limit: threshold, budget: cfg.nodeBudget, nodes: nodes},
			h:        h,
			next:     math.MaxInt,
		}
		found, err := s.search(start, 0, "")
		if err != nil {
			return nil, err
		}
		if found {
			return s.solution(), nil
		}
		if s.next == math.MaxInt {
			// Nothing exceeded the threshold: the whole space within the
			// bound is explored and holds no solution.
			return nil, ErrNoSolution
		}
		// Standard threshold update: the next bound is the smallest f that
		// exceeded the current one, verbatim, not threshold+1.
		nodes = s.nodes
		threshold = s.next
	}

	return nil, ErrNoSolution
}

type idaSearcher[S State[S]] struct {
	searcher[S]
	h    Heuristic
	next int // minimum f seen above the current threshold
}

func (s *idaSearcher[S]) search(cur S, g int, lastFace Face) (bool, error) {
	f := g + s.h(cur.Corners())
	if f > s.limit {
		if f < s.next {
			s.next = f
		}
		return false, nil
	}
	if cur.IsSolved() {
		return true, nil
	}

	for _, m := range allMoves {
		if m.Face == lastFace {
			continue
		}
		if err := s.visit(); err != nil {
			return false, err
		}

		s.path = append(s.path, m)
		found, err := s.search(cur.Apply(m), g+1, m.Face)
		if found || err != nil {
			return found, err
		}
		s.path = s.path[:len(s.path)-1]
	}

	return false, nil
}
