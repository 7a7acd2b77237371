package ancestry

// Coords resolves the relationship coordinates (x, y) of p1 and p2:
// x = generations from p1 up to their most recent common ancestor,
// y = generations from p2 up to the same ancestor.
//
// Equal identifiers short-circuit to (0, 0) before any chain is built, so a
// self-query never pays for a scan. Otherwise both inclusive chains
// ([person] + ancestors) are scanned chain1-major: the first matching pair
// (i, j) wins, which prefers the common ancestor closest to p1 and, among
// ties, closest to p2.
//
// Returns ErrNilPerson for nil inputs and ErrNoRelationshipPath when the
// chains never intersect (disjoint trees).
//
// Complexity: O(d1·d2) time, O(d1+d2) space, d = chain depths.
func Coords[K comparable](p1, p2 Person[K]) (x, y int, err error) {
	if p1 == nil || p2 == nil {
		return 0, 0, ErrNilPerson
	}
	if p1.ID() == p2.ID() {
		return 0, 0, nil
	}

	chain1 := selfAndAncestors(p1)
	chain2 := selfAndAncestors(p2)
	for i, a := range chain1 {
		for j, b := range chain2 {
			if a.ID() == b.ID() {
				return i, j, nil
			}
		}
	}

	return 0, 0, ErrNoRelationshipPath
}

// MostRecentCommonAncestor returns the nearest shared ancestor of p1 and p2,
// by the same chain1-major scan order as Coords. When the identifiers are
// equal, p1 itself is returned.
//
// Returns ErrNilPerson for nil inputs and ErrNoCommonAncestor when the two
// chains share no identifier.
func MostRecentCommonAncestor[K comparable](p1, p2 Person[K]) (Person[K], error) {
	if p1 == nil || p2 == nil {
		return nil, ErrNilPerson
	}
	if p1.ID() == p2.ID() {
		return p1, nil
	}

	chain2 := selfAndAncestors(p2)
	for _, a := range selfAndAncestors(p1) {
		for _, b := range chain2 {
			if a.ID() == b.ID() {
				return a, nil
			}
		}
	}

	return nil, ErrNoCommonAncestor
}

// AncestorLines returns, for each person, the prefix of [person] + ancestors
// up to and including the most recent common ancestor — inclusive on both
// ends, so each line starts at the person and finishes at the shared root.
//
// Fails with the same conditions as MostRecentCommonAncestor.
func AncestorLines[K comparable](p1, p2 Person[K]) (line1, line2 []Person[K], err error) {
	mrca, err := MostRecentCommonAncestor(p1, p2)
	if err != nil {
		return nil, nil, err
	}
	root := mrca.ID()

	return lineTo(p1, root), lineTo(p2, root), nil
}

// Related reports whether p1 and p2 share any ancestor. Nil inputs and
// disjoint trees both report false.
func Related[K comparable](p1, p2 Person[K]) bool {
	_, _, err := Coords(p1, p2)

	return err == nil
}

// lineTo truncates the inclusive chain of p at the first element whose
// identifier equals root, keeping that element.
func lineTo[K comparable](p Person[K], root K) []Person[K] {
	chain := selfAndAncestors(p)
	for i, a := range chain {
		if a.ID() == root {
			return chain[:i+1]
		}
	}

	// Unreachable when root came from MostRecentCommonAncestor on the same pair.
	return chain
}
