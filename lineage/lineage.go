package lineage

import "github.com/katalvlaran/kinship/ancestry"

// Member is a minimal concrete person with a string identifier. It satisfies
// ancestry.Person[string] and is the fixture type used throughout the kinship
// test suites and examples.
//
// Members are immutable after construction; the parent link is fixed at birth.
type Member struct {
	id     string
	gender ancestry.Gender
	parent *Member
}

// NewMember returns a member with the given identifier, gender, and parent.
// Pass a nil parent for a root.
func NewMember(id string, g ancestry.Gender, parent *Member) *Member {
	return &Member{id: id, gender: g, parent: parent}
}

// ID returns the member's identifier.
func (m *Member) ID() string { return m.id }

// Gender returns the member's gender code.
func (m *Member) Gender() ancestry.Gender { return m.gender }

// Parent returns the member's parent, or a nil interface at a root.
// The explicit nil check avoids handing the walker a typed nil pointer.
func (m *Member) Parent() ancestry.Person[string] {
	if m.parent == nil {
		return nil
	}

	return m.parent
}

// Child creates and returns a new member born to m.
func (m *Member) Child(id string, g ancestry.Gender) *Member {
	return NewMember(id, g, m)
}

// Line grows a descent chain under parent, one member per identifier, all of
// the given gender. The returned slice is ordered eldest first; each member
// is the child of the previous one (the first is the child of parent).
// A nil parent starts the line at a root.
//
// Deterministic: the same arguments always produce an identical chain.
func Line(parent *Member, g ancestry.Gender, ids ...string) []*Member {
	out := make([]*Member, 0, len(ids))
	for _, id := range ids {
		parent = NewMember(id, g, parent)
		out = append(out, parent)
	}

	return out
}
