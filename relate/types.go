// Package relate defines options and the relationship table type for
// kinship label synthesis.
package relate

import "github.com/katalvlaran/kinship/ancestry"

// DefaultAbbrevThreshold is the minimum number of "great" repetitions at
// which a label is abbreviated. Picked over the lower historical value of 2:
// "Great, great grandfather" still reads fine, three greats do not.
const DefaultAbbrevThreshold = 3

// Table maps a gender to a 2D label grid indexed [x][y], where x and y are
// the generation distances of person one and person two from their most
// recent common ancestor. An empty string marks an absent cell.
//
// The grid is sparse beyond the hard-coded region of DefaultTable; a Namer
// memoizes generated labels back into the cells of its private copy, so a
// Table owned by a Namer grows over the instance's lifetime.
type Table map[ancestry.Gender][][]string

// Clone returns a deep copy of t, so memo writes into one copy never leak
// into another.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for g, rows := range t {
		cp := make([][]string, len(rows))
		for i, row := range rows {
			cp[i] = append([]string(nil), row...)
		}
		out[g] = cp
	}

	return out
}

// Options holds configurable parameters for a Namer.
//
// Fields:
//   - Table           — the static relationship table. nil selects
//     DefaultTable(). A caller-supplied table is deep-copied at
//     construction, so the Namer's memo writes never touch the original.
//     Supplying a table supports alternate terminologies or deeper
//     hard-coded regions.
//   - AbbrevThreshold — minimum count of "great" repetitions at which a
//     label is abbreviated to "<count> x great …". Zero (or negative)
//     disables abbreviation entirely.
type Options struct {
	Table           Table
	AbbrevThreshold int
}

// DefaultOptions returns an Options struct with:
//   - DefaultTable (selected lazily via nil)
//   - AbbrevThreshold = DefaultAbbrevThreshold
func DefaultOptions() Options {
	return Options{
		Table:           nil,
		AbbrevThreshold: DefaultAbbrevThreshold,
	}
}

// Option configures optional behavior of a Namer.
// Use with NewNamer[K](opts...).
type Option func(*Options)

// WithTable returns an Option that installs t as the static relationship
// table. Passing nil has no effect (DefaultTable is retained).
func WithTable(t Table) Option {
	return func(o *Options) {
		if t != nil {
			o.Table = t
		}
	}
}

// WithAbbrevThreshold returns an Option that sets the abbreviation
// threshold. A threshold of 0 turns abbreviation off; negative values are
// treated as 0.
func WithAbbrevThreshold(n int) Option {
	return func(o *Options) {
		o.AbbrevThreshold = n
	}
}
