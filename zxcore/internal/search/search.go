// Package search implements the exhaustive cover search (spec §4.6):
// findBestCombination / generateMatches. It is invoked only once the
// randomness gate has classified the password as structured.
//
// The search sorts the pruned candidate pool, builds a thinned successor
// map, enumerates every maximal chain of non-intersecting candidates from
// every seed via DFS, and keeps the best leaf by the §4.6 Step 5 rule:
// prefer more non-brute-force coverage first, then lower average entropy
// of that coverage.
package search

import (
	"sort"

	"github.com/rafaelsanzio/zxcheck/zxcore/zxtype"
)

// MaxCandidates bounds the exhaustive search to candidate pools of this
// size or smaller. Implementations are explicitly permitted an
// implementation-defined ceiling (spec §4.6); beyond it the chain-DFS
// below is skipped entirely, Find returns nil, and the caller (Estimator)
// backfills the whole password with brute-force matches. This never alters
// results on normal-sized inputs — in
// practice a pruned candidate pool for any real password is a few dozen
// to a few hundred matches.
const MaxCandidates = 4096

// sortedCandidate is a Candidate together with the precomputed index of
// its thinned successor list (by index into the sorted slice), so the
// DFS can address successors without repeated map lookups.
type sortedCandidate struct {
	zxtype.Candidate
	succ []int // indices into the sorted slice
}

// Find runs the exhaustive cover search over candidates and returns the
// best chain found, sorted by Start. If candidates is empty, or exceeds
// MaxCandidates, it returns nil (the caller backfills from scratch).
func Find(candidates []zxtype.Candidate) []zxtype.Match {
	if len(candidates) == 0 || len(candidates) > MaxCandidates {
		return nil
	}

	sorted := sortCandidates(candidates)
	buildSuccessors(sorted)
	seeds := findSeeds(sorted)

	var best []zxtype.Match
	var bestLnb int
	var bestEnb float64
	haveBest := false

	var chain []zxtype.Match
	var visit func(idx int)
	visit = func(idx int) {
		c := sorted[idx]
		chain = append(chain, c.Match)
		defer func() { chain = chain[:len(chain)-1] }()

		if len(c.succ) == 0 {
			// Leaf: evaluate this chain.
			lnb, enb := coverage(chain)
			if !haveBest || wins(lnb, enb, bestLnb, bestEnb) {
				best = append([]zxtype.Match(nil), chain...)
				bestLnb, bestEnb, haveBest = lnb, enb, true
			}
			return
		}
		for _, nextIdx := range c.succ {
			visit(nextIdx)
		}
	}

	for _, seedIdx := range seeds {
		visit(seedIdx)
	}

	sort.Slice(best, func(i, j int) bool {
		return matchLess(best[i], best[j])
	})
	return best
}

// wins reports whether a leaf with (lnb, enb) beats the current best
// (bestLnb, bestEnb), per spec §4.6 Step 5: the leaf wins iff it covers
// at least as much non-brute-force length and its average entropy over
// that length is strictly lower.
func wins(lnb int, enb float64, bestLnb int, bestEnb float64) bool {
	if lnb < bestLnb {
		return false
	}
	return enb/float64(lnb) < bestEnb/float64(bestLnb)
}

// coverage returns the summed length (Lnb) and summed entropy (Enb) of
// the non-brute-force matches in a chain. Chains produced by this search
// never contain brute-force matches (those are only added at backfill
// time), so this simply sums every match in the chain.
func coverage(chain []zxtype.Match) (lnb int, enb float64) {
	for _, m := range chain {
		if m.IsBruteForce() {
			continue
		}
		lnb += m.Length()
		enb += m.EntropyBits
	}
	return lnb, enb
}

// sortCandidates returns a copy of candidates sorted by
// (Start ascending, Length ascending, Seq ascending) — the comparator
// of spec §4.9, with Seq as the stabilizing tie-break the original
// comparator lacked (see zxtype.Compare).
func sortCandidates(candidates []zxtype.Candidate) []*sortedCandidate {
	cp := append([]zxtype.Candidate(nil), candidates...)
	sort.Slice(cp, func(i, j int) bool { return zxtype.Less(cp[i], cp[j]) })

	out := make([]*sortedCandidate, len(cp))
	for i, c := range cp {
		out[i] = &sortedCandidate{Candidate: c}
	}
	return out
}

// buildSuccessors computes, for every candidate m (by index in sorted),
// the thinned forward-adjacency succ(m): candidates n that come later in
// sorted order, start strictly after m ends, and are minimally late — n
// is included only if no already-included successor p of m has
// p.End < n.Start. This keeps succ(m) from re-expanding chains that are
// already transitively reachable through an earlier successor.
func buildSuccessors(sorted []*sortedCandidate) {
	for i, m := range sorted {
		var succ []int
		for j := i + 1; j < len(sorted); j++ {
			n := sorted[j]
			if n.Start <= m.End {
				continue
			}
			blocked := false
			for _, pIdx := range succ {
				if sorted[pIdx].End < n.Start {
					blocked = true
					break
				}
			}
			if !blocked {
				succ = append(succ, j)
			}
		}
		m.succ = succ
	}
}

// findSeeds returns the indices (in sorted order) of every candidate that
// appears in no other candidate's succ list.
func findSeeds(sorted []*sortedCandidate) []int {
	referenced := make([]bool, len(sorted))
	for _, m := range sorted {
		for _, idx := range m.succ {
			referenced[idx] = true
		}
	}
	var seeds []int
	for i, ref := range referenced {
		if !ref {
			seeds = append(seeds, i)
		}
	}
	return seeds
}

// matchLess orders plain Matches by (Start, Length) for the final sort of
// the winning chain; a chain never contains two matches sharing both keys
// (they would have been pruned or made non-adjacent by succ), so no
// further tie-break is required here.
func matchLess(a, b zxtype.Match) bool {
	if a.Start != b.Start {
		return a.Start < b.Start
	}
	return a.Length() < b.Length()
}
