package pdb

import (
	"github.com/seamusw/cubesolver"
	"github.com/seamusw/cubesolver/internal/cubie"
)

// Domain is a subset projection of the cube with a dense index space. The
// builder explores it exhaustively; the solver keys heuristic lookups on it.
type Domain interface {
	// Name identifies the domain in persisted file headers.
	Name() string
	// Size is the number of indices, all in [0, Size).
	Size() uint32
	// Index projects a corner configuration into the domain.
	Index(p cubesolver.CornerProjection) uint32
	// Expand visits the index reached by each of the 18 moves.
	Expand(idx uint32, visit func(succ uint32))
}

// Corners is the full corner domain: all 8! * 3^7 permutation and
// orientation combinations. Building its table visits every one of the
// 88 million indices and is the expensive offline step.
func Corners() Domain { return cornerDomain{} }

// CornerOrientations is the reduced domain of corner twists only (3^7
// indices). Its table builds in milliseconds; it serves as a weaker but
// still admissible heuristic and keeps tests fast.
func CornerOrientations() Domain { return orientDomain{} }

type cornerDomain struct{}

func (cornerDomain) Name() string { return "corners" }

func (cornerDomain) Size() uint32 { return CornerStates }

func (cornerDomain) Index(p cubesolver.CornerProjection) uint32 {
	return Rank(p)
}

func (cornerDomain) Expand(idx uint32, visit func(succ uint32)) {
	c := cubie.FromCorners(Unrank(idx))
	for _, m := range cubesolver.Moves() {
		visit(Rank(c.Apply(m).Corners()))
	}
}

type orientDomain struct{}

func (orientDomain) Name() string { return "corner-orientations" }

func (orientDomain) Size() uint32 { return OrientStates }

func (orientDomain) Index(p cubesolver.CornerProjection) uint32 {
	return RankOrient(p.Orient)
}

func (orientDomain) Expand(idx uint32, visit func(succ uint32)) {
	// Twist transitions depend only on the twist vector, not on which piece
	// sits where, so expanding from the identity permutation is exact.
	c := cubie.FromCorners(cubesolver.CornerProjection{
		Perm:   [8]uint8{0, 1, 2, 3, 4, 5, 6, 7},
		Orient: UnrankOrient(idx),
	})
	for _, m := range cubesolver.Moves() {
		visit(RankOrient(c.Apply(m).CO))
	}
}

// domainByName resolves a persisted header's domain name.
func domainByName(name string) (Domain, bool) {
	switch name {
	case "corners":
		return Corners(), true
	case "corner-orientations":
		return CornerOrientations(), true
	default:
		return nil, false
	}
}
