// Package sequence implements a zxcore.PatternMatcher that detects
// arithmetic runs: consecutive characters whose Unicode code points
// advance by a constant step (abcd, dcba, 1234, 2468).
//
// Grounded on the teacher library's internal/patterns/sequence.go
// (findArithmeticRuns), generalized to emit rune-indexed zxcore.Match
// values instead of issue strings, and to assign each run an entropy
// estimate based on the step's rarity rather than a fixed message.
package sequence

import (
	"math"

	"github.com/rafaelsanzio/zxcheck/zxcore"
)

// MinRunLen is the shortest arithmetic run reported as a match.
const MinRunLen = 3

// steps lists the step values checked for arithmetic progressions, in the
// order a human is most likely to type them (obvious ascending/descending
// runs first). The entropy model below charges a cheaper cost for more
// obvious steps.
var steps = []int{1, -1, 2, -2}

// Matcher detects arithmetic character runs.
type Matcher struct{}

// New returns a sequence matcher.
func New() Matcher { return Matcher{} }

// Name identifies the matcher in MatcherFailure errors.
func (Matcher) Name() string { return "sequence" }

// Match scans password for maximal arithmetic runs of at least MinRunLen
// runes for each configured step.
func (Matcher) Match(_ zxcore.Configuration, password string) ([]zxcore.Match, error) {
	runes := []rune(password)
	if len(runes) < MinRunLen {
		return nil, nil
	}

	var matches []zxcore.Match
	for _, step := range steps {
		matches = append(matches, findRuns(runes, step)...)
	}
	return matches, nil
}

// findRuns scans runes for maximal contiguous runs where each pair of
// adjacent runes differs by exactly step, reporting runs of at least
// MinRunLen runes.
func findRuns(runes []rune, step int) []zxcore.Match {
	var matches []zxcore.Match

	runStart := 0
	flush := func(end int) {
		if end-runStart >= MinRunLen {
			matches = append(matches, newMatch(runes, runStart, end, step))
		}
	}

	for i := 1; i < len(runes); i++ {
		if int(runes[i])-int(runes[i-1]) != step {
			flush(i)
			runStart = i
		}
	}
	flush(len(runes))

	return matches
}

// newMatch builds the Match for runes[start:end) with the given step.
// Steps of magnitude 1 (straight ascending/descending runs) are the most
// commonly typed and carry the lowest per-character entropy; steps of
// magnitude 2 (alternating runs) are rarer and cost one more bit per
// character, mirroring zxcvbn's sequence-abs-step adjustment.
func newMatch(runes []rune, start, end, step int) zxcore.Match {
	length := end - start
	perChar := 1.0
	if abs(step) > 1 {
		perChar = 2.0
	}
	return zxcore.Match{
		Kind:        zxcore.KindSequence,
		Start:       start,
		End:         end - 1,
		Token:       string(runes[start:end]),
		EntropyBits: math.Log2(2) + perChar*float64(length-1),
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
