package relate

import (
	"strconv"
	"strings"
)

const (
	greatWord = "great"
	greatSep  = ", "
)

// Abbreviate compresses the run of comma-separated "great" repetitions in
// label into "<count> x great", leaving the rest of the label intact:
//
//	Abbreviate("Great, great, great grandfather", 3) == "3 x great grandfather"
//
// The count is matched case-insensitively. Labels with fewer than threshold
// repetitions are returned unchanged, and a threshold ≤ 0 disables
// abbreviation entirely (it never means "always abbreviate").
//
// Works on any label string, so caller-supplied table entries abbreviate
// exactly like generated ones.
func Abbreviate(label string, threshold int) string {
	if threshold <= 0 {
		return label
	}

	lower := strings.ToLower(label)
	start := strings.Index(lower, greatWord)
	if start < 0 {
		return label
	}

	// Walk the comma-separated run: "great", "great, great", ...
	count, end := 0, start
	for strings.HasPrefix(lower[end:], greatWord) {
		count++
		end += len(greatWord)
		if !strings.HasPrefix(lower[end:], greatSep+greatWord) {
			break
		}
		end += len(greatSep)
	}
	if count < threshold {
		return label
	}

	return label[:start] + strconv.Itoa(count) + " x " + greatWord + label[end:]
}
