// Package year implements a zxcore.PatternMatcher that detects bare
// 4-digit years (1900-2099) embedded in a password, distinct from the
// full calendar dates internal/matchers/date recognizes.
//
// Not present in the teacher library; added because spec.md §3.1 lists
// "year" as a Match kind distinct from "date". Grounded on the teacher's
// digit-run scanning style (internal/patterns/sequence.go) narrowed to a
// fixed 4-digit window.
package year

import (
	"math"

	"github.com/rafaelsanzio/zxcheck/zxcore"
)

const minYear = 1900
const maxYear = 2099

// bits is the entropy charged for a recognized year: log2 of the number
// of plausible years in range, the zxcvbn year-token model.
var bits = math.Log2(float64(maxYear - minYear + 1))

// Matcher detects bare 4-digit years.
type Matcher struct{}

// New returns a year matcher.
func New() Matcher { return Matcher{} }

// Name identifies the matcher in MatcherFailure errors.
func (Matcher) Name() string { return "year" }

// Match scans password for every 4-digit run in [1900, 2099].
func (Matcher) Match(_ zxcore.Configuration, password string) ([]zxcore.Match, error) {
	runes := []rune(password)
	var matches []zxcore.Match

	for start := 0; start+4 <= len(runes); start++ {
		window := runes[start : start+4]
		if !allDigits(window) {
			continue
		}
		y := toInt(window)
		if y < minYear || y > maxYear {
			continue
		}
		matches = append(matches, zxcore.Match{
			Kind:        zxcore.KindYear,
			Start:       start,
			End:         start + 3,
			Token:       string(window),
			EntropyBits: bits,
		})
	}
	return matches, nil
}

func allDigits(runes []rune) bool {
	for _, r := range runes {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func toInt(digits []rune) int {
	n := 0
	for _, r := range digits {
		n = n*10 + int(r-'0')
	}
	return n
}
