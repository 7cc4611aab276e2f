package catalog

import (
	"sort"
	"strings"
)

// KeySeparator joins identifiers in a combination key.
const KeySeparator = " "

// Pool is the fixed reference ordering of the identifiers a mode offers.
type Pool struct {
	ids   []string
	index map[string]int
}

// NewPool builds a pool. Repeated identifiers keep their first position.
func NewPool(ids []string) Pool {
	p := Pool{
		ids:   make([]string, 0, len(ids)),
		index: make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		if _, seen := p.index[id]; seen {
			continue
		}
		p.index[id] = len(p.ids)
		p.ids = append(p.ids, id)
	}
	return p
}

// IDs returns the identifiers in reference order.
func (p Pool) IDs() []string {
	return append([]string(nil), p.ids...)
}

// Len returns the pool size.
func (p Pool) Len() int {
	return len(p.ids)
}

// Position returns the reference position of id.
func (p Pool) Position(id string) (int, bool) {
	pos, ok := p.index[id]
	return pos, ok
}

// Canonical drops unknown and repeated identifiers and orders the rest by
// reference position, independent of selection order.
func (p Pool) Canonical(selected []string) []string {
	positions := make([]int, 0, len(selected))
	seen := make(map[int]struct{}, len(selected))
	for _, id := range selected {
		pos, ok := p.index[strings.TrimSpace(id)]
		if !ok {
			continue
		}
		if _, dup := seen[pos]; dup {
			continue
		}
		seen[pos] = struct{}{}
		positions = append(positions, pos)
	}
	sort.Ints(positions)

	out := make([]string, len(positions))
	for i, pos := range positions {
		out[i] = p.ids[pos]
	}
	return out
}

// Key returns the canonical combination key for selected.
func (p Pool) Key(selected []string) string {
	return strings.Join(p.Canonical(selected), KeySeparator)
}
