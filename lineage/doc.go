// Package lineage provides deterministic family-tree fixtures: a concrete
// Member type satisfying ancestry.Person[string], and a Line helper that
// grows descent chains one identifier at a time.
//
// The kinship core is polymorphic over the Person contract and never needs
// this package; lineage exists so tests, benchmarks, and examples can build
// trees in one line instead of re-declaring a person type each time. Same
// inputs always yield identical chains — no randomness, no hidden state.
//
// Typical usage:
//
//	root := lineage.NewMember("R", ancestry.Male, nil)
//	sons := lineage.Line(root, ancestry.Male, "A", "B", "C") // R→A→B→C
package lineage
