// Package date implements a zxcore.PatternMatcher that detects calendar
// dates embedded in a password (19900615, 06-15-1990, 15/6/90).
//
// Not present in the teacher library; added because spec.md §3.1 lists
// "date" as a Match kind that the decomposition engine must be able to
// consume. Grounded on the teacher's numeric-run scanning style in
// internal/patterns/sequence.go (a forward scan over digit runs,
// validating candidate splits) and on internal/entropy for the
// pool-size-based entropy of a guessed calendar date.
package date

import (
	"math"

	"github.com/rafaelsanzio/zxcheck/zxcore"
)

// separators are the punctuation characters allowed between date parts.
var separators = map[rune]bool{'-': true, '/': true, '.': true, '_': true, ' ': true}

// daysInMonth holds the last valid day of each month (index 1-12). Feb 29
// is accepted in every year, leap or not, the way zxcvbn over-accepts to
// stay conservative about entropy rather than under-recognizing dates.
var daysInMonth = [13]int{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// minYear/maxYear bound the plausible year component of a date.
const minYear = 1900
const maxYear = 2099

// Matcher detects calendar-date substrings.
type Matcher struct{}

// New returns a date matcher.
func New() Matcher { return Matcher{} }

// Name identifies the matcher in MatcherFailure errors.
func (Matcher) Name() string { return "date" }

// Match scans password for digit runs of length 6 (DDMMYY-style) or 8
// (DDMMYYYY-style), with optional single-character separators between
// the day/month/year components, and validates each as a real calendar
// date before reporting it.
func (Matcher) Match(_ zxcore.Configuration, password string) ([]zxcore.Match, error) {
	runes := []rune(password)
	var matches []zxcore.Match

	for start := 0; start < len(runes); start++ {
		if !isDigit(runes[start]) {
			continue
		}
		if m, ok := tryDelimited(runes, start); ok {
			matches = append(matches, m)
			continue
		}
		if m, ok := tryCompact(runes, start); ok {
			matches = append(matches, m)
		}
	}
	return matches, nil
}

// tryCompact matches an unseparated 6 or 8 digit run as DDMMYY / DDMMYYYY
// or YYYYMMDD, preferring the longer (8-digit, 4-digit-year) form.
func tryCompact(runes []rune, start int) (zxcore.Match, bool) {
	if end := start + 8; end <= len(runes) && allDigits(runes[start:end]) {
		if ok, _, _, _ := validDateDigits(runes[start:end]); ok {
			return newMatch(runes, start, end), true
		}
	}
	if end := start + 6; end <= len(runes) && allDigits(runes[start:end]) {
		if ok, _, _, _ := validDateDigits(expandYear(runes[start:end])); ok {
			return newMatch(runes, start, end), true
		}
	}
	return zxcore.Match{}, false
}

// tryDelimited matches day/month/year parts (1-2, 1-2, 2 or 4 digits)
// separated by a single repeated punctuation character.
func tryDelimited(runes []rune, start int) (zxcore.Match, bool) {
	lens := [][3]int{{2, 2, 4}, {1, 2, 4}, {2, 1, 4}, {1, 1, 4}, {2, 2, 2}, {1, 1, 2}}
	for _, l := range lens {
		end, digits, ok := scanDelimited(runes, start, l)
		if !ok {
			continue
		}
		full := digits
		if len(full) == 6 {
			full = expandYear(full)
		}
		if valid, _, _, _ := validDateDigits(full); valid {
			return newMatch(runes, start, end), true
		}
	}
	return zxcore.Match{}, false
}

// scanDelimited consumes day,sep,month,sep,year parts of the given
// lengths, returning the collected digits and the end rune index.
func scanDelimited(runes []rune, start int, lens [3]int) (end int, digits []rune, ok bool) {
	pos := start
	var sep rune = -1
	var out []rune

	for i, l := range lens {
		if pos+l > len(runes) || !allDigits(runes[pos:pos+l]) {
			return 0, nil, false
		}
		out = append(out, runes[pos:pos+l]...)
		pos += l

		if i < len(lens)-1 {
			if pos >= len(runes) || !separators[runes[pos]] {
				return 0, nil, false
			}
			if sep == -1 {
				sep = runes[pos]
			} else if runes[pos] != sep {
				return 0, nil, false
			}
			pos++
		}
	}
	return pos, out, true
}

// expandYear widens a 6-digit DDMMYY run into an 8-digit DDMMYYYY run by
// prefixing the 2-digit year with "19" or "20" (whichever produces a
// plausible year), for uniform validation.
func expandYear(digits []rune) []rune {
	yy := digits[4:6]
	century := []rune("20")
	if toInt(yy) > 50 {
		century = []rune("19")
	}
	out := append([]rune{}, digits[:4]...)
	out = append(out, century...)
	out = append(out, yy...)
	return out
}

// validDateDigits interprets an 8-digit run as DDMMYYYY or YYYYMMDD
// (whichever parses to a valid calendar date) and reports day/month/year.
func validDateDigits(digits []rune) (ok bool, day, month, year int) {
	if len(digits) != 8 {
		return false, 0, 0, 0
	}
	d := toInt(digits[0:2])
	m := toInt(digits[2:4])
	y := toInt(digits[4:8])
	if isValidDate(y, m, d) {
		return true, d, m, y
	}

	y2 := toInt(digits[0:4])
	m2 := toInt(digits[4:6])
	d2 := toInt(digits[6:8])
	if isValidDate(y2, m2, d2) {
		return true, d2, m2, y2
	}
	return false, 0, 0, 0
}

func isValidDate(year, month, day int) bool {
	if year < minYear || year > maxYear {
		return false
	}
	if month < 1 || month > 12 {
		return false
	}
	if day < 1 || day > daysInMonth[month] {
		return false
	}
	return true
}

// newMatch builds the date Match for runes[start:end). Entropy follows
// zxcvbn's date model: log2(numYears) for the year component plus
// log2(31) + log2(12) for the day/month components, rather than the
// full pool-size entropy internal/entropy would assign to eight digits.
func newMatch(runes []rune, start, end int) zxcore.Match {
	numYears := float64(maxYear - minYear + 1)
	bits := math.Log2(numYears) + math.Log2(31) + math.Log2(12)
	return zxcore.Match{
		Kind:        zxcore.KindDate,
		Start:       start,
		End:         end - 1,
		Token:       string(runes[start:end]),
		EntropyBits: bits,
	}
}

func allDigits(runes []rune) bool {
	for _, r := range runes {
		if !isDigit(r) {
			return false
		}
	}
	return true
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func toInt(digits []rune) int {
	n := 0
	for _, r := range digits {
		n = n*10 + int(r-'0')
	}
	return n
}
