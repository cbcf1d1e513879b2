package cubesolver

// Option configures a solve call.
type Option func(*config)

type config struct {
	maxDepth   int
	nodeBudget uint64
}

func defaultConfig() *config {
	return &config{
		maxDepth:   20, // every position is solvable within 20 moves
		nodeBudget: 0,  // unlimited
	}
}

func newConfig(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithMaxDepth bounds the search depth (IDA*: the maximum threshold).
// A search that exhausts the bound returns ErrNoSolution.
func WithMaxDepth(depth int) Option {
	return func(c *config) {
		c.maxDepth = depth
	}
}

// WithNodeBudget bounds the number of nodes a solve may visit.
// Exceeding it returns ErrBudgetExceeded. Zero means unlimited.
// BFS in particular should carry a budget: its memory grows with the
// branching factor to the power of the scramble depth.
func WithNodeBudget(n uint64) Option {
	return func(c *config) {
		c.nodeBudget = n
	}
}
