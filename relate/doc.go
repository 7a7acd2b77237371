// Package relate synthesizes human-readable kinship labels — "Grandson",
// "Great aunt", "Second cousin twice removed" — from the relationship
// coordinates resolved by kinship/ancestry.
//
// What:
//
//   - Namer: the synthesizer. Resolves (x, y) coordinates, consults a
//     per-gender relationship Table for the common small-depth cases, and
//     falls back to an algorithmic generator for deep or asymmetric
//     relationships. Generated labels are memoized back into the Namer's
//     private table, so repeated queries at the same coordinates are O(1).
//   - Table: gender → 2D label grid indexed by generation distances.
//     DefaultTable ships 6×6 hard-coded English cells per gender; callers
//     may supply their own for alternate terminologies.
//   - Abbreviate: compresses runs of "great" once they reach a threshold,
//     "Great, great, great grandfather" → "3 x great grandfather".
//   - Ordinal / Cardinal: English number words ("First", "three"), the
//     building blocks of cousin labels.
//
// Why:
//   - Genealogy UIs: show "First cousin once removed" instead of raw distances
//   - Deep trees: the generator covers any depth without table growth limits
//   - Alternate terminologies via caller-supplied tables
//
// Concurrency:
//
//	The memo cache is the only mutable state. A Namer serializes its
//	check/generate/store sequence behind a mutex, so a single instance may
//	be shared across goroutines; everything else in the package is purely
//	functional.
//
// Errors:
//
//	Relationship propagates ancestry's resolution errors unchanged:
//	ErrNilPerson, ErrNoRelationshipPath (which wraps ErrNoCommonAncestor).
//	The synthesis itself cannot fail: the table is trusted static data plus
//	entries the package wrote there.
//
// Complexity:
//
//   - Relationship: O(d1·d2) coordinate scan + O(1) lookup (memo hit)
//     or O(x+y) label generation (memo miss).
package relate
