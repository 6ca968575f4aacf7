// Package bruteforce precomputes the single-character fallback match for
// every rune index of the password (spec §4.3).
package bruteforce

import (
	"math"
	"unicode"

	"github.com/rafaelsanzio/zxcheck/zxcore/zxtype"
)

// Pool sizes mirror the teacher library's internal/entropy character-set
// model (internal/entropy/entropy.go), reused here for the brute-force
// fallback's per-character cost.
const (
	poolLower  = 26
	poolUpper  = 26
	poolDigit  = 10
	poolSymbol = 33 // ASCII punctuation/symbol range
)

// Table maps every rune index of the password to its BruteForceMatch.
type Table map[int]zxtype.Match

// Build returns, for every index of runes, a single-rune KindBruteForce
// Match. The entropy assigned to each is log2(poolSize), where poolSize is
// the size of the character-class pool inferred from the *whole password*
// (so that e.g. an all-lowercase password gets a smaller per-character
// brute-force cost than a mixed-case one, but every position within the
// same password is charged consistently).
func Build(runes []rune) Table {
	pool := poolSize(runes)
	bits := 0.0
	if pool > 1 {
		bits = math.Log2(float64(pool))
	}

	table := make(Table, len(runes))
	for i, r := range runes {
		table[i] = zxtype.Match{
			Kind:        zxtype.KindBruteForce,
			Start:       i,
			End:         i,
			Token:       string(r),
			EntropyBits: bits,
		}
	}
	return table
}

// poolSize inspects every rune of the password once to determine which
// character classes are present, then sums their pool sizes. Unicode
// letters/digits outside ASCII fall into a generously sized "other" pool
// so that non-Latin passwords are not charged an unrealistically small
// brute-force cost.
func poolSize(runes []rune) int {
	var hasLower, hasUpper, hasDigit, hasSymbol, hasOther bool
	for _, r := range runes {
		switch {
		case r <= unicode.MaxASCII && unicode.IsLower(r):
			hasLower = true
		case r <= unicode.MaxASCII && unicode.IsUpper(r):
			hasUpper = true
		case r <= unicode.MaxASCII && unicode.IsDigit(r):
			hasDigit = true
		case r <= unicode.MaxASCII && !unicode.IsSpace(r) && !unicode.IsControl(r):
			hasSymbol = true
		case !unicode.IsControl(r):
			hasOther = true
		}
	}

	size := 0
	if hasLower {
		size += poolLower
	}
	if hasUpper {
		size += poolUpper
	}
	if hasDigit {
		size += poolDigit
	}
	if hasSymbol {
		size += poolSymbol
	}
	if hasOther {
		size += 1000 // conservative Unicode-script pool estimate
	}
	if size == 0 {
		size = 1
	}
	return size
}
