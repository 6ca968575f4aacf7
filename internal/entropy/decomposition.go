package entropy

import (
	"sync"

	"github.com/rafaelsanzio/zxcheck/internal/matchers"
	"github.com/rafaelsanzio/zxcheck/zxcore"
)

// decompositionEstimator is shared across calls: the matcher set is
// stateless and read-only (zxcore.Configuration.Clone snapshots it per
// call), so one Estimator serves every CalculateDecomposition call
// instead of rebuilding the dictionary automaton's matcher slice each time.
var (
	decompositionOnce sync.Once
	decompositionEst  *zxcore.Estimator
)

func decompositionEstimator() *zxcore.Estimator {
	decompositionOnce.Do(func() {
		decompositionEst = zxcore.New(zxcore.Configuration{Matchers: matchers.Default()})
	})
	return decompositionEst
}

// CalculateDecomposition runs the zxcore decomposition engine over password
// and returns its Result.TotalEntropy: the sum of per-match entropies of
// the non-overlapping cover the engine selects (broadest recognized-pattern
// coverage, then lowest average entropy per character), rather than a flat
// character-pool formula.
//
// A *zxcore.InvariantViolation or *zxcore.MatcherFailure is a bug in the
// engine or a matcher, not a property of the input password; since
// CalculateWithMode's signature returns no error, this falls back to
// CalculateAdvanced (the next-richest mode) rather than panicking or
// silently returning 0, which would understate a password's strength.
func CalculateDecomposition(password string) float64 {
	result, err := decompositionEstimator().Estimate(password)
	if err != nil {
		return CalculateAdvanced(password, nil)
	}
	return result.TotalEntropy
}
