// Package gatherer implements the first pipeline stage of the
// decomposition engine: invoking every configured pattern matcher and
// concatenating their output into a single candidate pool.
package gatherer

import (
	"github.com/rafaelsanzio/zxcheck/zxcore/zxtype"
)

// Gather invokes cfg.Matchers in order against password and concatenates
// their results into a single slice of Candidates, numbering each in the
// order it was produced (gather order) so later stages can break ties
// deterministically.
//
// Gather performs no filtering, deduplication, or sorting — matchers may
// return overlapping and redundant matches, and all of them survive here.
// If any matcher returns an error, Gather stops and returns a
// *zxtype.MatcherFailure; the core never fails for any other reason.
func Gather(cfg zxtype.Configuration, password string) ([]zxtype.Candidate, error) {
	var candidates []zxtype.Candidate
	seq := 0
	for _, m := range cfg.Matchers {
		matches, err := m.Match(cfg, password)
		if err != nil {
			return nil, &zxtype.MatcherFailure{Matcher: matcherName(m), Err: err}
		}
		for _, match := range matches {
			candidates = append(candidates, zxtype.Candidate{Match: match, Seq: seq})
			seq++
		}
	}
	return candidates, nil
}

// matcherName returns a diagnostic label for a matcher using its dynamic
// type, since PatternMatcher carries no name of its own.
func matcherName(m zxtype.PatternMatcher) string {
	type named interface{ Name() string }
	if n, ok := m.(named); ok {
		return n.Name()
	}
	return "unknown"
}
