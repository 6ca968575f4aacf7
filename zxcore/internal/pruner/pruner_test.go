package pruner

import (
	"testing"

	"github.com/rafaelsanzio/zxcheck/zxcore/zxtype"
)

func cand(start, end int, entropy float64, seq int) zxtype.Candidate {
	return zxtype.Candidate{
		Match: zxtype.Match{Start: start, End: end, EntropyBits: entropy},
		Seq:   seq,
	}
}

func TestPruneKeepsLowestAverageEntropy(t *testing.T) {
	// Both span [0,3] (length 4): entropies 8 (avg 2) and 20 (avg 5).
	in := []zxtype.Candidate{
		cand(0, 3, 8, 0),
		cand(0, 3, 20, 1),
	}
	out := Prune(in)
	if len(out) != 1 {
		t.Fatalf("len(out) = %d, want 1", len(out))
	}
	if out[0].EntropyBits != 8 {
		t.Errorf("kept candidate has EntropyBits = %v, want 8 (the lower-average one)", out[0].EntropyBits)
	}
}

func TestPruneKeepsTiesAtEqualAverageEntropy(t *testing.T) {
	in := []zxtype.Candidate{
		cand(0, 3, 8, 0),
		cand(0, 3, 8, 1),
	}
	out := Prune(in)
	if len(out) != 2 {
		t.Fatalf("equal-average duplicates should both survive; len(out) = %d, want 2", len(out))
	}
}

func TestPruneKeepsDistinctCoordinates(t *testing.T) {
	in := []zxtype.Candidate{
		cand(0, 3, 8, 0),
		cand(4, 7, 20, 1),
	}
	out := Prune(in)
	if len(out) != 2 {
		t.Fatalf("non-overlapping coordinate pairs must both survive; len(out) = %d, want 2", len(out))
	}
}

func TestPruneEmpty(t *testing.T) {
	if out := Prune(nil); len(out) != 0 {
		t.Errorf("Prune(nil) = %v, want empty", out)
	}
}
