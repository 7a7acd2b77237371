package relate

import "strconv"

// English number words for 0..19 and the tens, cardinal and ordinal forms.
// Compound words hyphenate ("twenty-one", "Twenty-first") per convention.
var (
	cardinalSmall = [...]string{
		"zero", "one", "two", "three", "four", "five", "six", "seven",
		"eight", "nine", "ten", "eleven", "twelve", "thirteen", "fourteen",
		"fifteen", "sixteen", "seventeen", "eighteen", "nineteen",
	}
	cardinalTens = [...]string{
		"", "", "twenty", "thirty", "forty", "fifty",
		"sixty", "seventy", "eighty", "ninety",
	}
	ordinalSmall = [...]string{
		"zeroth", "first", "second", "third", "fourth", "fifth", "sixth",
		"seventh", "eighth", "ninth", "tenth", "eleventh", "twelfth",
		"thirteenth", "fourteenth", "fifteenth", "sixteenth", "seventeenth",
		"eighteenth", "nineteenth",
	}
	ordinalTens = [...]string{
		"", "", "twentieth", "thirtieth", "fortieth", "fiftieth",
		"sixtieth", "seventieth", "eightieth", "ninetieth",
	}
)

// Cardinal returns the lowercase English cardinal word for n
// ("three", "twenty-one"). Supported for 0..99; outside that range the
// decimal digits are returned as-is.
func Cardinal(n int) string {
	switch {
	case n < 0 || n > 99:
		return strconv.Itoa(n)
	case n < 20:
		return cardinalSmall[n]
	case n%10 == 0:
		return cardinalTens[n/10]
	default:
		return cardinalTens[n/10] + "-" + cardinalSmall[n%10]
	}
}

// Ordinal returns the capitalized English ordinal word for n
// ("First", "Ninth", "Twenty-first"). Supported for 0..99; outside that
// range the digits with an English suffix are returned ("101st").
func Ordinal(n int) string {
	switch {
	case n < 0 || n > 99:
		return strconv.Itoa(n) + ordinalSuffix(n)
	case n < 20:
		return capitalize(ordinalSmall[n])
	case n%10 == 0:
		return capitalize(ordinalTens[n/10])
	default:
		return capitalize(cardinalTens[n/10]) + "-" + ordinalSmall[n%10]
	}
}

// ordinalSuffix picks st/nd/rd/th for a digit rendering of n.
func ordinalSuffix(n int) string {
	if n < 0 {
		n = -n
	}
	if v := n % 100; v >= 11 && v <= 13 {
		return "th"
	}
	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
