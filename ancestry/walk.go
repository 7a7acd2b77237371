package ancestry

// Ancestors returns the ordered ancestor chain of p: nearest ancestor first,
// ending at the root (the person whose Parent is nil). The starting person is
// not included. A nil person or a root yields nil.
//
// The walk terminates because each chain is finite; a cyclic parent chain is
// a precondition violation (see Person) and loops forever.
//
// Complexity: O(d) time and space, d = depth of p in its tree.
func Ancestors[K comparable](p Person[K]) []Person[K] {
	if p == nil {
		return nil
	}
	var chain []Person[K]
	for a := p.Parent(); a != nil; a = a.Parent() {
		chain = append(chain, a)
	}

	return chain
}

// selfAndAncestors returns [p] followed by Ancestors(p).
// Every scan in this package runs over these inclusive chains, so that a
// person who IS the other's ancestor still intersects.
func selfAndAncestors[K comparable](p Person[K]) []Person[K] {
	return append([]Person[K]{p}, Ancestors(p)...)
}
