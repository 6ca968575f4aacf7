// Package pruner implements keepLowestMatches (spec §4.2): for every
// (start, end) coordinate pair in the candidate pool, only the lowest
// average-entropy candidate survives.
package pruner

import "github.com/rafaelsanzio/zxcheck/zxcore/zxtype"

type coord struct{ start, end int }

// Prune removes from candidates any match that is dominated by another
// match with identical (Start, End) but strictly lower average entropy
// per character. When two candidates at the same coordinates have equal
// average entropy, both survive (no strict domination exists). The
// relative order of surviving candidates is preserved.
func Prune(candidates []zxtype.Candidate) []zxtype.Candidate {
	if len(candidates) == 0 {
		return candidates
	}

	// First pass: find the minimum average entropy per coordinate pair.
	best := make(map[coord]float64, len(candidates))
	for _, c := range candidates {
		k := coord{c.Start, c.End}
		avg := c.AvgEntropy()
		if cur, ok := best[k]; !ok || avg < cur {
			best[k] = avg
		}
	}

	// Second pass: keep every candidate whose average entropy matches the
	// minimum for its coordinate pair (ties all survive).
	out := make([]zxtype.Candidate, 0, len(candidates))
	for _, c := range candidates {
		k := coord{c.Start, c.End}
		if c.AvgEntropy() == best[k] {
			out = append(out, c)
		}
	}
	return out
}
