package relate

import "github.com/katalvlaran/kinship/ancestry"

// tableDepth is the hard-coded extent of DefaultTable: rows and columns
// 0..tableDepth-1 are pre-filled per gender; everything beyond is generated
// on demand and memoized.
const tableDepth = 6

// DefaultTable returns the built-in English relationship table, 6×6 cells
// per gender, indexed [x][y]. Entries are already correctly capitalized and
// are used verbatim (modulo abbreviation) by lookups.
//
// Reading guide: x is person one's distance to the MRCA, y is person two's.
// Row x=0 holds the direct-ancestor line ("Father", "Grandfather", ...),
// column y=0 the direct-descendant line ("Son", "Grandson", ...), the
// diagonal holds same-generation kin ("Self", siblings, cousins).
func DefaultTable() Table {
	return Table{
		ancestry.Male: {
			{"Self", "Father", "Grandfather", "Great grandfather", "Great, great grandfather", "Great, great, great grandfather"},
			{"Son", "Brother", "Uncle", "Great uncle", "Great, great uncle", "Great, great, great uncle"},
			{"Grandson", "Nephew", "First cousin", "First cousin once removed", "First cousin twice removed", "First cousin three times removed"},
			{"Great grandson", "Great nephew", "First cousin once removed", "Second cousin", "Second cousin once removed", "Second cousin twice removed"},
			{"Great, great grandson", "Great, great nephew", "First cousin twice removed", "Second cousin once removed", "Third cousin", "Third cousin once removed"},
			{"Great, great, great grandson", "Great, great, great nephew", "First cousin three times removed", "Second cousin twice removed", "Third cousin once removed", "Fourth cousin"},
		},
		ancestry.Female: {
			{"Self", "Mother", "Grandmother", "Great grandmother", "Great, great grandmother", "Great, great, great grandmother"},
			{"Daughter", "Sister", "Aunt", "Great aunt", "Great, great aunt", "Great, great, great aunt"},
			{"Granddaughter", "Niece", "First cousin", "First cousin once removed", "First cousin twice removed", "First cousin three times removed"},
			{"Great granddaughter", "Great niece", "First cousin once removed", "Second cousin", "Second cousin once removed", "Second cousin twice removed"},
			{"Great, great granddaughter", "Great, great niece", "First cousin twice removed", "Second cousin once removed", "Third cousin", "Third cousin once removed"},
			{"Great, great, great granddaughter", "Great, great, great niece", "First cousin three times removed", "Second cousin twice removed", "Third cousin once removed", "Fourth cousin"},
		},
	}
}
