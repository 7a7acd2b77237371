// Package ancestry walks single-parent lineages: it produces ordered ancestor
// chains, resolves the generation-distance coordinates between two people,
// and locates their most recent common ancestor (MRCA).
//
// What:
//
//   - Ancestors: the ordered chain from a person up to their root,
//     nearest ancestor first, starting person excluded.
//   - Coords: the (x, y) pair of generation distances from two people up to
//     their MRCA. (0, 0) if and only if the two identifiers are equal.
//   - MostRecentCommonAncestor: the nearest shared ancestor itself, found by
//     a chain1-major scan — closest to person one first, ties broken by
//     closeness to person two.
//   - AncestorLines: both chains truncated at the MRCA, inclusive on both
//     ends. Useful for rendering the connecting path between two people.
//   - Related: predicate form of Coords.
//
// Why:
//   - Foundation for relationship naming (see kinship/relate)
//   - Pedigree navigation: "how do these two people connect, and through whom?"
//   - Generation-distance queries over externally supplied trees
//
// Key Types & Constants:
//
//   - Person[K]: the capability contract — ID() K, Gender(), Parent()
//   - Gender: byte code, Male ('m') or Female ('f')
//
// The tree is supplied by the caller as a chain of parent references; the
// package never stores or mutates it. Each person records at most one parent,
// so a pedigree is a forest of singly-linked chains, never a DAG.
//
// Complexity:
//
//   - Ancestors:                 Time O(d),      Memory O(d)
//   - Coords / MRCA / Lines:     Time O(d1·d2),  Memory O(d1+d2)
//     (d = tree depth; typically tens of levels at most)
//
// Errors:
//
//   - ErrNilPerson            nil person passed to a fallible operation
//   - ErrNoCommonAncestor     chains share no identifier (MRCA entry points)
//   - ErrNoRelationshipPath   same condition from Coords; wraps ErrNoCommonAncestor
//
// Cyclic parent chains are a documented precondition violation: they are not
// detected and cause non-termination in Ancestors.
package ancestry
