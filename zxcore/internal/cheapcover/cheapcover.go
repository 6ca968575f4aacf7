// Package cheapcover implements findGoodEnoughCombination (spec §4.4): a
// fast forward-scan greedy cover used only to feed the randomness gate,
// not returned as the final result.
package cheapcover

import (
	"github.com/rafaelsanzio/zxcheck/zxcore/internal/bruteforce"
	"github.com/rafaelsanzio/zxcheck/zxcore/zxtype"
)

// Build returns a cover of the password (length runeLen) assembled as
// follows: for every end index k, among all pruned candidates ending at
// k, keep the one with the lowest average entropy per character. Then,
// scanning backward from k = runeLen-1, emit that best-at-k match and
// jump to its Start-1, or emit the brute-force match at k and step back
// by one index. The result is reversed so indices ascend.
//
// Runs in O(runeLen + len(candidates)) time: building the matchAt index
// is a single pass over candidates, and the backward scan visits each
// index at most once.
func Build(candidates []zxtype.Candidate, bf bruteforce.Table, runeLen int) []zxtype.Match {
	if runeLen == 0 {
		return nil
	}

	matchAt := make([]*zxtype.Match, runeLen)
	for i := range candidates {
		c := &candidates[i]
		if c.End < 0 || c.End >= runeLen {
			continue
		}
		cur := matchAt[c.End]
		if cur == nil || c.AvgEntropy() < cur.AvgEntropy() {
			m := c.Match
			matchAt[c.End] = &m
		}
	}

	var reversed []zxtype.Match
	k := runeLen - 1
	for k >= 0 {
		if m := matchAt[k]; m != nil {
			reversed = append(reversed, *m)
			k = m.Start - 1
			continue
		}
		reversed = append(reversed, bf[k])
		k--
	}

	out := make([]zxtype.Match, len(reversed))
	for i, m := range reversed {
		out[len(reversed)-1-i] = m
	}
	return out
}
