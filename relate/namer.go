package relate

import (
	"sync"

	"github.com/katalvlaran/kinship/ancestry"
)

// Namer synthesizes human-readable relationship labels between two people.
//
// A Namer owns a private copy of its relationship table: cells inside the
// hard-coded region are served verbatim, everything beyond is generated,
// capitalized, and memoized back into the table. A single mutex serializes
// the check/generate/store sequence, so one Namer may be shared across
// goroutines.
type Namer[K comparable] struct {
	mu    sync.Mutex
	table Table
	abbr  int
}

// NewNamer returns a Namer configured by opts. With no options it uses
// DefaultTable and DefaultAbbrevThreshold. A caller-supplied table is
// deep-copied, so later memo writes never mutate the caller's value.
func NewNamer[K comparable](opts ...Option) *Namer[K] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	table := DefaultTable()
	if o.Table != nil {
		table = o.Table.Clone()
	}
	abbr := o.AbbrevThreshold
	if abbr < 0 {
		abbr = 0
	}

	return &Namer[K]{table: table, abbr: abbr}
}

// Relationship returns the label naming what p1 is to p2, e.g.
// Relationship(son, grandfather) == "Grandson". The label is gendered by p1.
//
// Coordinates come from ancestry.Coords; its errors (ErrNilPerson,
// ErrNoRelationshipPath) propagate unchanged. The abbreviation policy is
// applied uniformly, whether the label came from the table or was just
// generated.
func (n *Namer[K]) Relationship(p1, p2 ancestry.Person[K]) (string, error) {
	x, y, err := ancestry.Coords(p1, p2)
	if err != nil {
		return "", err
	}

	return Abbreviate(n.label(p1.Gender(), x, y), n.abbr), nil
}

// Coords exposes the underlying coordinate resolution, so callers holding a
// Namer need not import ancestry for the common pairing of label + coords.
func (n *Namer[K]) Coords(p1, p2 ancestry.Person[K]) (x, y int, err error) {
	return ancestry.Coords(p1, p2)
}

// label serves table[gender][x][y], generating and memoizing on a miss.
// The whole lookup-generate-store sequence runs under the mutex.
func (n *Namer[K]) label(g ancestry.Gender, x, y int) string {
	n.mu.Lock()
	defer n.mu.Unlock()

	rows := n.table[g]
	if x < len(rows) && y < len(rows[x]) && rows[x][y] != "" {
		return rows[x][y]
	}

	s := capitalize(makeLabel(g, x, y))
	n.store(g, x, y, s)

	return s
}

// store writes a generated label into the table, growing rows and columns
// as needed. Caller holds the mutex.
func (n *Namer[K]) store(g ancestry.Gender, x, y int, s string) {
	rows := n.table[g]
	for len(rows) <= x {
		rows = append(rows, nil)
	}
	for len(rows[x]) <= y {
		rows[x] = append(rows[x], "")
	}
	rows[x][y] = s
	n.table[g] = rows
}
