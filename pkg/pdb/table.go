package pdb

import (
	"fmt"

	"github.com/seamusw/cubesolver"
)

// unreached marks an index the backward search never assigned. For the
// shipped domains every index is reachable (the stored orientation digits
// already account for the twist parity constraint), so a lookup landing on
// this sentinel is a construction fault, never a valid distance.
const unreached = 0xFF

// Table is a pattern database: table[index] = minimum number of moves to
// solve the projection that index encodes, ignoring every piece outside the
// domain. Immutable once built and safe for concurrent readers.
type Table struct {
	domain Domain
	data   []uint8
}

// Domain returns the domain this table covers.
func (t *Table) Domain() Domain { return t.domain }

// Size returns the number of entries.
func (t *Table) Size() uint32 { return uint32(len(t.data)) }

// Lookup returns the minimal solve distance for an index.
// It returns ErrUnreachableIndex if construction never assigned the entry;
// an index outside [0, Size) is a programming error and panics.
func (t *Table) Lookup(idx uint32) (uint8, error) {
	if idx >= uint32(len(t.data)) {
		panic(fmt.Sprintf("pdb: index %d out of range [0, %d)", idx, len(t.data)))
	}
	d := t.data[idx]
	if d == unreached {
		return 0, ErrUnreachableIndex
	}
	return d, nil
}

// Estimate is the solver-facing heuristic: a lower bound on the number of
// moves needed to solve any state with this corner projection. It satisfies
// cubesolver.Heuristic.
func (t *Table) Estimate(p cubesolver.CornerProjection) int {
	d := t.data[t.domain.Index(p)]
	if d == unreached {
		panic("pdb: heuristic lookup hit an unreached index; database was built incorrectly")
	}
	return int(d)
}

// MaxDistance returns the largest distance recorded in the table.
func (t *Table) MaxDistance() uint8 {
	var max uint8
	for _, d := range t.data {
		if d != unreached && d > max {
			max = d
		}
	}
	return max
}

// Histogram counts entries per distance, indexed by distance.
func (t *Table) Histogram() []uint64 {
	h := make([]uint64, t.MaxDistance()+1)
	for _, d := range t.data {
		if d != unreached {
			h[d]++
		}
	}
	return h
}
