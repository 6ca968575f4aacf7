// Package dictionary implements a zxcore.PatternMatcher that scans a
// password for common passwords, common English words, and their
// leetspeak variants.
//
// Grounded on the teacher library's internal/dictionary package, which
// performs the same lookups but reports issue strings for a single
// "best" match per category. This matcher instead reports every
// occurrence as a rune-indexed zxcore.Match, and replaces the teacher's
// per-word linear/substring scan with a single Aho-Corasick automaton
// (github.com/coregx/ahocorasick, as used by the coregex regex engine in
// the retrieved pack for its own literal-alternation fast path) so the
// whole wordlist is matched against the password in one linear pass
// instead of one scan per word.
package dictionary

import (
	"math"
	"sort"
	"sync"

	"github.com/coregx/ahocorasick"

	teacherdict "github.com/rafaelsanzio/zxcheck/internal/dictionary"
	"github.com/rafaelsanzio/zxcheck/internal/leet"
	"github.com/rafaelsanzio/zxcheck/zxcore"
)

// MinWordLen mirrors the teacher's internal/dictionary.DefaultMinWordLen:
// shorter entries produce too many false positives as substrings.
const MinWordLen = 4

var buildOnce sync.Once
var automaton *ahocorasick.Automaton
var entropyByWord map[string]float64

// buildAutomaton lazily compiles the combined word/password list into one
// Aho-Corasick automaton, the first time the matcher runs.
func buildAutomaton() {
	words := teacherdict.Words()
	passwords := teacherdict.Passwords()

	seen := make(map[string]bool, len(words)+len(passwords))
	var patterns []string
	for _, list := range [][]string{words, passwords} {
		for _, w := range list {
			if len(w) < MinWordLen || seen[w] {
				continue
			}
			seen[w] = true
			patterns = append(patterns, w)
		}
	}

	// Rank determines entropy: more common entries (earlier in the
	// teacher's curated lists) cost fewer bits to guess, the same
	// intuition as zxcvbn's rank-based dictionary entropy, in place of
	// the teacher's flat "found or not" issue model.
	entropyByWord = make(map[string]float64, len(patterns))
	for i, w := range patterns {
		entropyByWord[w] = math.Log2(float64(i + 2))
	}

	builder := ahocorasick.NewBuilder()
	for _, w := range patterns {
		builder.AddPattern([]byte(w))
	}
	auto, err := builder.Build()
	if err == nil {
		automaton = auto
	}
}

// Matcher scans for dictionary words and common passwords, plain and
// leetspeak-normalized.
type Matcher struct{}

// New returns a dictionary matcher. The underlying automaton is built
// lazily and shared across all Matcher values.
func New() Matcher {
	buildOnce.Do(buildAutomaton)
	return Matcher{}
}

// Name identifies the matcher in MatcherFailure errors.
func (Matcher) Name() string { return "dictionary" }

// Match scans password for every dictionary/common-password occurrence,
// in its plain lowercased form and its leetspeak-normalized form.
func (Matcher) Match(_ zxcore.Configuration, password string) ([]zxcore.Match, error) {
	if automaton == nil {
		return nil, nil
	}

	runes := []rune(password)
	plain := projectLower(runes)
	norm := projectLeetNormalized(runes)

	matches := scan(runes, plain, zxcore.KindDictionary)
	if !equalProjection(plain, norm) {
		matches = append(matches, scan(runes, norm, zxcore.KindDictionary)...)
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Start != matches[j].Start {
			return matches[i].Start < matches[j].Start
		}
		return matches[i].End < matches[j].End
	})
	return matches, nil
}

// scan runs the automaton over projected (a same-length byte projection
// of runes) and returns one Match per occurrence found, advancing one
// position past each match's start so overlapping occurrences are not
// missed (the automaton's Find only reports the first match from a given
// offset).
func scan(runes []rune, projected []byte, kind zxcore.Kind) []zxcore.Match {
	var matches []zxcore.Match
	at := 0
	for at < len(projected) {
		m := automaton.Find(projected, at)
		if m == nil {
			break
		}
		word := string(projected[m.Start:m.End])
		matches = append(matches, zxcore.Match{
			Kind:        kind,
			Start:       m.Start,
			End:         m.End - 1,
			Token:       string(runes[m.Start:m.End]),
			EntropyBits: entropyByWord[word],
		})
		at = m.Start + 1
	}
	return matches
}

// projectLower maps runes to a same-length byte slice: ASCII letters
// lowercased, everything else mapped to a sentinel the automaton's
// patterns (all lowercase ASCII) can never match, keeping Match indices
// aligned to rune positions even when the password contains multi-byte
// characters (same technique as internal/matchers/spatial).
func projectLower(runes []rune) []byte {
	out := make([]byte, len(runes))
	for i, r := range runes {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out[i] = byte(r)
		case r >= 'A' && r <= 'Z':
			out[i] = byte(r) + ('a' - 'A')
		default:
			out[i] = 0xFF
		}
	}
	return out
}

// projectLeetNormalized is projectLower plus the teacher's leetspeak
// substitution table (internal/leet.Map) applied after lowercasing.
func projectLeetNormalized(runes []rune) []byte {
	out := make([]byte, len(runes))
	for i, r := range runes {
		lr := r
		if lr >= 'A' && lr <= 'Z' {
			lr += 'a' - 'A'
		}
		if repl, ok := leet.Map[lr]; ok {
			lr = repl
		}
		if lr >= 'a' && lr <= 'z' || lr >= '0' && lr <= '9' {
			out[i] = byte(lr)
		} else {
			out[i] = 0xFF
		}
	}
	return out
}

func equalProjection(a, b []byte) bool {
	return string(a) == string(b)
}
