package lineage_test

import (
	"testing"

	"github.com/katalvlaran/kinship/ancestry"
	"github.com/katalvlaran/kinship/lineage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMember_Accessors verifies the Person contract surface.
func TestMember_Accessors(t *testing.T) {
	root := lineage.NewMember("r", ancestry.Female, nil)
	child := root.Child("c", ancestry.Male)

	assert.Equal(t, "r", root.ID())
	assert.Equal(t, ancestry.Female, root.Gender())
	assert.Equal(t, "c", child.ID())
	require.NotNil(t, child.Parent())
	assert.Equal(t, "r", child.Parent().ID())
}

// TestMember_RootParentIsNilInterface verifies a root returns a nil
// interface, not a typed nil pointer — the walker depends on it.
func TestMember_RootParentIsNilInterface(t *testing.T) {
	root := lineage.NewMember("r", ancestry.Male, nil)

	assert.Nil(t, root.Parent())
	assert.True(t, root.Parent() == nil, "must compare equal to untyped nil")
}

// TestLine_Wiring verifies Line chains each member to the previous one,
// eldest first.
func TestLine_Wiring(t *testing.T) {
	root := lineage.NewMember("root", ancestry.Male, nil)
	chain := lineage.Line(root, ancestry.Male, "a", "b", "c")

	require.Len(t, chain, 3)
	assert.Equal(t, "root", chain[0].Parent().ID())
	assert.Equal(t, "a", chain[1].Parent().ID())
	assert.Equal(t, "b", chain[2].Parent().ID())
}

// TestLine_NilParentStartsRoot verifies a nil parent makes the first member
// a root.
func TestLine_NilParentStartsRoot(t *testing.T) {
	chain := lineage.Line(nil, ancestry.Female, "only")

	require.Len(t, chain, 1)
	assert.Nil(t, chain[0].Parent())
}

// TestLine_Empty verifies zero identifiers yield an empty chain.
func TestLine_Empty(t *testing.T) {
	assert.Empty(t, lineage.Line(nil, ancestry.Male))
}

// Compile-time contract check.
var _ ancestry.Person[string] = (*lineage.Member)(nil)
