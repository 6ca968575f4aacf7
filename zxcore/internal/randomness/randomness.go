// Package randomness implements isRandom (spec §4.5): classifies a
// password as "random" or "structured" from its cheap cover, so the
// expensive exhaustive search can be skipped on passwords the cheap cover
// already shows are unlikely to decompose into recognized patterns.
package randomness

import "github.com/rafaelsanzio/zxcheck/zxcore/zxtype"

// Thresholds fixed by the specification; do not tune these.
const (
	matchedLenRatio    = 0.5
	structuredRatio    = 0.8
	maxMatchedLenRatio = 0.25
)

// IsRandom classifies password length runeLen as random (true) or
// structured (false) given its cheap cover.
//
// Random iff either:
//  1. matchedLen < 0.5 * runeLen, or
//  2. matchedLen < 0.8 * runeLen AND maxMatchedLen < 0.25 * runeLen
//
// where matchedLen is the summed length of non-brute-force matches in the
// cover and maxMatchedLen is the longest single one. An empty cover (or a
// cover of entirely brute-force matches, e.g. when the candidate pool was
// empty) is random by construction, since matchedLen is then 0.
func IsRandom(cover []zxtype.Match, runeLen int) bool {
	if runeLen == 0 {
		return false
	}

	var matchedLen, maxMatchedLen int
	for _, m := range cover {
		if m.IsBruteForce() {
			continue
		}
		l := m.Length()
		matchedLen += l
		if l > maxMatchedLen {
			maxMatchedLen = l
		}
	}

	n := float64(runeLen)
	if float64(matchedLen) < matchedLenRatio*n {
		return true
	}
	if float64(matchedLen) < structuredRatio*n && float64(maxMatchedLen) < maxMatchedLenRatio*n {
		return true
	}
	return false
}
