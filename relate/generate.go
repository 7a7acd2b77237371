package relate

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/kinship/ancestry"
)

// genderTerms is the per-gender term set the generator composes labels from.
type genderTerms struct {
	child     string // direct descendant
	parent    string // direct ancestor
	parentSib string // parent's sibling
	sibChild  string // sibling's child
}

var (
	maleTerms   = genderTerms{child: "son", parent: "father", parentSib: "uncle", sibChild: "nephew"}
	femaleTerms = genderTerms{child: "daughter", parent: "mother", parentSib: "aunt", sibChild: "niece"}
)

// makeLabel synthesizes a lowercase relationship label for the coordinate
// pair (x, y) and the given gender. It is only invoked for coordinates
// absent from the static table, which guarantees:
//
//	x == 0 or x == 1 implies y ≥ 2 (and mirrored for y), and
//	x == y implies x ≥ 2,
//
// so every "great" chain below has a non-negative repetition count.
//
// Case analysis:
//
//	x == y           same-generation cousins: "first cousin", "second cousin", ...
//	x == 0           direct ancestor line:    "great, great grandfather"
//	x == 1           collateral ancestor:     "great, great uncle"
//	y == 0           direct descendant line:  "great, great grandson"
//	y == 1           collateral descendant:   "great, great nephew"
//	otherwise        cousins removed:         "second cousin three times removed"
func makeLabel(g ancestry.Gender, x, y int) string {
	t := maleTerms
	if g == ancestry.Female {
		t = femaleTerms
	}

	switch {
	case x == y:
		return Ordinal(x-1) + " cousin"
	case x == 0:
		return greats(y-2) + "grand" + t.parent
	case x == 1:
		return greats(y-2) + t.parentSib
	case y == 0:
		return greats(x-2) + "grand" + t.child
	case y == 1:
		return greats(x-2) + t.sibChild
	default:
		near, far := x, y
		if y < x {
			near, far = y, x
		}

		return Ordinal(near-1) + " cousin " + timesStr(far-near) + " removed"
	}
}

// greats renders n comma-joined repetitions of "great" with a trailing
// space, ready to prefix a kin term. n ≤ 0 yields the empty string.
// The repetition count stays an integer all the way to rendering; the
// abbreviator can therefore collapse deep chains without re-parsing.
func greats(n int) string {
	if n <= 0 {
		return ""
	}

	return strings.Repeat("great, ", n-1) + "great "
}

// timesStr renders a generation offset for the "removed" clause:
// 1 → "once", 2 → "twice", n → "<cardinal> times".
func timesStr(n int) string {
	switch n {
	case 1:
		return "once"
	case 2:
		return "twice"
	default:
		return Cardinal(n) + " times"
	}
}

// capitalize upper-cases the first rune of s.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)

	return string(unicode.ToUpper(r)) + s[size:]
}
