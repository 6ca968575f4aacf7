// Package backfill implements backfillBruteForce (spec §4.7): given a
// partial (possibly empty) list of non-overlapping matches and the
// brute-force table, it adds one BruteForceMatch per uncovered index.
package backfill

import (
	"sort"

	"github.com/rafaelsanzio/zxcheck/zxcore/internal/bruteforce"
	"github.com/rafaelsanzio/zxcheck/zxcore/zxtype"
)

// Fill returns chain plus one BruteForceMatch for every rune index in
// [0, runeLen) not already covered by some match in chain. The returned
// slice is sorted by Start; chain's relative order and content otherwise
// pass through unchanged.
func Fill(chain []zxtype.Match, bf bruteforce.Table, runeLen int) []zxtype.Match {
	covered := make([]bool, runeLen)
	for _, m := range chain {
		for i := m.Start; i <= m.End; i++ {
			if i >= 0 && i < runeLen {
				covered[i] = true
			}
		}
	}

	out := append([]zxtype.Match(nil), chain...)
	for i := 0; i < runeLen; i++ {
		if !covered[i] {
			out = append(out, bf[i])
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].Length() < out[j].Length()
	})
	return out
}
