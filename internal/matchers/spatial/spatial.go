// Package spatial implements a zxcore.PatternMatcher that detects keyboard
// walks: runs of characters that are adjacent on a physical keyboard
// layout (qwerty rows, vertical columns, diagonals, numeric keypad).
//
// Grounded on the teacher library's internal/patterns/keyboard.go, which
// detects the same layouts but reports human-readable issue strings for
// the single longest run per starting position. This matcher instead
// reports every maximal run of at least MinRunLen as a zxcore.Match with
// start/end indices, since deciding which runs belong in the final cover
// is the decomposition engine's job, not the matcher's.
package spatial

import (
	"math"

	"github.com/rafaelsanzio/zxcheck/zxcore"
)

// MinRunLen is the shortest keyboard-adjacent run reported as a match.
const MinRunLen = 3

// averageDegree is the teacher's keyboard-layout branching factor: from
// any key, zxcvbn-style estimators count roughly this many
// equally-plausible next keys (the adjacent keys on the row/column/
// diagonal graph, including the wrap where a walk changes direction).
// Used as the per-character entropy base for a spatial run, the same way
// zxcvbn derives spatial-pattern entropy from a keyboard adjacency graph
// rather than from the full character pool.
const averageDegree = 5.0

var keyboardLayouts []string

type layoutPos struct {
	layout string
	offset int
}

var layoutIndex map[byte][]layoutPos

func init() {
	rows := []string{
		"qwertyuiop", "asdfghjkl", "zxcvbnm",
		"1234567890",
		"qaz", "wsx", "edc", "rfv", "tgb", "yhn", "ujm",
		"qwsz", "wedf", "erfc", "rtgv", "tyhb", "yujn", "uikm",
		"123", "456", "789",
		"147", "258", "369",
		"159", "357",
	}

	for _, row := range rows {
		keyboardLayouts = append(keyboardLayouts, row)
		if rev := reverseStr(row); rev != row {
			keyboardLayouts = append(keyboardLayouts, rev)
		}
	}

	layoutIndex = make(map[byte][]layoutPos)
	for _, layout := range keyboardLayouts {
		for j := 0; j < len(layout); j++ {
			b := layout[j]
			layoutIndex[b] = append(layoutIndex[b], layoutPos{layout, j})
		}
	}
}

// Matcher detects keyboard-walk substrings.
type Matcher struct{}

// New returns a spatial keyboard-walk matcher.
func New() Matcher { return Matcher{} }

// Name identifies the matcher in MatcherFailure errors.
func (Matcher) Name() string { return "spatial" }

// Match scans password for maximal keyboard-adjacent runs of at least
// MinRunLen characters. Matches use rune indices (spec §3.1): password is
// projected into a same-length byte slice (ASCII letters/digits
// lowercased, everything else mapped to a sentinel that matches no
// layout) so the teacher's byte-indexed scan can run unchanged while
// Start/End stay aligned to rune positions.
func (Matcher) Match(_ zxcore.Configuration, password string) ([]zxcore.Match, error) {
	runes := []rune(password)
	if len(runes) < MinRunLen {
		return nil, nil
	}
	projected := projectASCIILower(runes)

	var matches []zxcore.Match
	i := 0
	for i <= len(projected)-MinRunLen {
		runLen := longestKeyboardRunAt(projected, i)
		if runLen >= MinRunLen {
			matches = append(matches, zxcore.Match{
				Kind:        zxcore.KindSpatial,
				Start:       i,
				End:         i + runLen - 1,
				Token:       string(runes[i : i+runLen]),
				EntropyBits: math.Log2(math.Pow(averageDegree, float64(runLen))),
			})
			i += runLen
		} else {
			i++
		}
	}
	return matches, nil
}

// longestKeyboardRunAt returns the length of the longest consecutive
// keyboard-layout run in projected starting at the given offset.
func longestKeyboardRunAt(projected []byte, start int) int {
	best := 0

	ch := projected[start]
	positions, ok := layoutIndex[ch]
	if !ok {
		return 0
	}

	for _, pos := range positions {
		layout, j := pos.layout, pos.offset
		k := 1
		for start+k < len(projected) && j+k < len(layout) && projected[start+k] == layout[j+k] {
			k++
		}
		if k > best {
			best = k
		}
	}

	return best
}

func reverseStr(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// projectASCIILower maps runes to a same-length byte slice: ASCII letters
// lowercased in place, ASCII digits passed through, everything else (and
// uppercase-lowercased collisions with reserved bytes) mapped to 0x00,
// which never appears in a keyboard layout and so never extends a run.
func projectASCIILower(runes []rune) []byte {
	out := make([]byte, len(runes))
	for i, r := range runes {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out[i] = byte(r)
		case r >= 'A' && r <= 'Z':
			out[i] = byte(r) + ('a' - 'A')
		default:
			out[i] = 0
		}
	}
	return out
}
