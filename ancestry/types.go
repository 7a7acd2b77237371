// Package ancestry defines the Person capability contract, gender codes,
// and sentinel errors shared by the ancestor walker and coordinate resolver.
//
// A Person is anything exposing a comparable identifier, a gender code and a
// nullable parent reference. The package never mutates the caller's people;
// it only walks parent links.
//
// Errors:
//
//	ErrNilPerson          - a nil Person was passed to a fallible operation.
//	ErrNoCommonAncestor   - the two ancestor chains share no identifier.
//	ErrNoRelationshipPath - same condition, surfaced by coordinate resolution;
//	                        wraps ErrNoCommonAncestor so errors.Is matches both.
package ancestry

import (
	"errors"
	"fmt"
)

// Gender encodes the gender of a Person as a single byte code.
type Gender byte

const (
	// Male is the gender code 'm'.
	Male Gender = 'm'

	// Female is the gender code 'f'.
	Female Gender = 'f'
)

// Sentinel errors for ancestry operations.
var (
	// ErrNilPerson indicates a nil Person was passed where a value is required.
	ErrNilPerson = errors.New("ancestry: person is nil")

	// ErrNoCommonAncestor indicates two people's ancestor chains, each
	// including the person itself, share no identifier (disjoint trees).
	ErrNoCommonAncestor = errors.New("ancestry: no common ancestor")

	// ErrNoRelationshipPath is the same underlying condition raised by the
	// coordinate-resolution entry points. It wraps ErrNoCommonAncestor, so
	// errors.Is(err, ErrNoCommonAncestor) holds for either sentinel.
	ErrNoRelationshipPath = fmt.Errorf("ancestry: no relationship path: %w", ErrNoCommonAncestor)
)

// Person is the capability contract every family member must satisfy.
//
// K is the identifier type; identifiers are compared with the type's native
// equality and must be unique within the tree. Parent returns nil at a root.
//
// Implementations backed by a pointer type must take care to return a nil
// interface (not a typed nil pointer) from Parent when there is no parent,
// or the walker will not terminate at the root.
//
// The single-parent model makes a pedigree a forest of singly-linked chains.
// Cyclic parent chains are a precondition violation: they are not detected
// and cause non-termination in Ancestors.
type Person[K comparable] interface {
	// ID returns the unique identifier of this person.
	ID() K

	// Gender returns the gender code of this person (Male or Female).
	Gender() Gender

	// Parent returns the recorded parent, or nil when this person is a root.
	Parent() Person[K]
}
