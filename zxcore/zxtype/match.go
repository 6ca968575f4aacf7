// Package zxtype defines the shared value types of the decomposition
// engine (Match, Configuration, PatternMatcher, Result, Candidate) and the
// two error categories the engine recognizes. It has no logic of its own
// and no dependency on the engine's internal pipeline packages, so that
// both the public zxcore facade and the pipeline's internal stages
// (gatherer, pruner, search, ...) can depend on it without a cycle.
package zxtype

// Kind discriminates the variant of a Match. The common attribute set
// (Start, End, Token, EntropyBits) is identical across all kinds; Kind is
// the only thing that distinguishes a BruteForce match from a recognized
// pattern, replacing a runtime type check with a tag comparison.
type Kind int

const (
	// KindDictionary is a match against a known word or password list.
	KindDictionary Kind = iota
	// KindRepeat is a repeated character run or repeated block.
	KindRepeat
	// KindSequence is an arithmetic run (abcd, 4321, aceg).
	KindSequence
	// KindSpatial is a keyboard-adjacency walk (qwerty, zxcvb).
	KindSpatial
	// KindDate is a calendar date.
	KindDate
	// KindYear is a bare calendar year.
	KindYear
	// KindBruteForce is the single-character fallback match. A Match with
	// this Kind always has Length() == 1.
	KindBruteForce
)

func (k Kind) String() string {
	switch k {
	case KindDictionary:
		return "dictionary"
	case KindRepeat:
		return "repeat"
	case KindSequence:
		return "sequence"
	case KindSpatial:
		return "spatial"
	case KindDate:
		return "date"
	case KindYear:
		return "year"
	case KindBruteForce:
		return "brute-force"
	default:
		return "unknown"
	}
}

// Match is a candidate (or final) decomposition unit: a contiguous run of
// the password, tagged with a pattern Kind and an entropy estimate.
//
// Start and End are rune (code point) indices into the password, both
// inclusive: the covered half-open interval is [Start, End+1). Token is
// the exact substring password[Start..End] — checked by the assembler —
// so that concatenating tokens in Start order reconstructs the password.
type Match struct {
	Kind        Kind
	Start       int
	End         int
	Token       string
	EntropyBits float64
}

// Length returns the number of runes covered by the match.
func (m Match) Length() int {
	return m.End - m.Start + 1
}

// IsBruteForce reports whether m is a BruteForce fallback match.
func (m Match) IsBruteForce() bool {
	return m.Kind == KindBruteForce
}

// AvgEntropy returns the average entropy per covered character
// (EntropyBits / Length), the quantity the pruner, cheap cover, and
// search phases rank matches by. A non-positive length (which the
// Start <= End invariant should prevent) returns 0.
func (m Match) AvgEntropy() float64 {
	l := m.Length()
	if l <= 0 {
		return 0
	}
	return m.EntropyBits / float64(l)
}

// Overlaps reports whether m and other share at least one covered index.
func (m Match) Overlaps(other Match) bool {
	return m.Start <= other.End && other.Start <= m.End
}

// Candidate pairs a Match with its position in gather order. Seq is used
// purely as a deterministic tie-break: the comparator used throughout the
// engine (Compare, below) is a total order on (Start, Length) that is not
// antisymmetric on its own — two distinct matches can share both keys —
// so every stage breaks remaining ties on Seq instead of leaving sort
// order unspecified.
type Candidate struct {
	Match
	Seq int
}

// Compare orders two candidates by (Start ascending, Length ascending,
// Seq ascending). This is the comparator named in spec §4.9: used for
// sorting the pruned candidate pool, for the successor/seed computation
// in the search phase, and for the final output ordering. It returns a
// negative number, zero, or a positive number as a < b, a == b, or a > b;
// it is strict and antisymmetric (it only returns zero for a.Seq == b.Seq,
// which — since Seq is assigned once per candidate at gather time — means
// the same candidate compared with itself).
func Compare(a, b Candidate) int {
	if a.Start != b.Start {
		return a.Start - b.Start
	}
	if la, lb := a.Length(), b.Length(); la != lb {
		return la - lb
	}
	return a.Seq - b.Seq
}

// Less is a convenience predicate built on Compare, for sort.Slice callers.
func Less(a, b Candidate) bool {
	return Compare(a, b) < 0
}
