package relate_test

import (
	"testing"

	"github.com/katalvlaran/kinship/relate"
	"github.com/stretchr/testify/assert"
)

// TestOrdinal covers the word range, compound forms, and the digit fallback.
func TestOrdinal(t *testing.T) {
	cases := map[int]string{
		0:   "Zeroth",
		1:   "First",
		2:   "Second",
		3:   "Third",
		8:   "Eighth",
		9:   "Ninth",
		12:  "Twelfth",
		13:  "Thirteenth",
		20:  "Twentieth",
		21:  "Twenty-first",
		42:  "Forty-second",
		99:  "Ninety-ninth",
		101: "101st",
		112: "112th",
		-3:  "-3rd",
	}
	for n, want := range cases {
		assert.Equal(t, want, relate.Ordinal(n), "Ordinal(%d)", n)
	}
}

// TestCardinal covers the word range, compound forms, and the digit fallback.
func TestCardinal(t *testing.T) {
	cases := map[int]string{
		0:   "zero",
		3:   "three",
		11:  "eleven",
		19:  "nineteen",
		20:  "twenty",
		21:  "twenty-one",
		55:  "fifty-five",
		90:  "ninety",
		99:  "ninety-nine",
		100: "100",
		-7:  "-7",
	}
	for n, want := range cases {
		assert.Equal(t, want, relate.Cardinal(n), "Cardinal(%d)", n)
	}
}
