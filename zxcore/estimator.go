package zxcore

import (
	"sync"

	"github.com/rafaelsanzio/zxcheck/zxcore/internal/assembler"
	"github.com/rafaelsanzio/zxcheck/zxcore/internal/backfill"
	"github.com/rafaelsanzio/zxcheck/zxcore/internal/bruteforce"
	"github.com/rafaelsanzio/zxcheck/zxcore/internal/cheapcover"
	"github.com/rafaelsanzio/zxcheck/zxcore/internal/gatherer"
	"github.com/rafaelsanzio/zxcheck/zxcore/internal/pruner"
	"github.com/rafaelsanzio/zxcheck/zxcore/internal/randomness"
	"github.com/rafaelsanzio/zxcheck/zxcore/internal/search"
)

// Estimator is the stateless decomposition engine's single stateful
// handle: it holds a Configuration (the only mutable field) and exposes
// Estimate. The estimator itself has no other state and is safe for
// concurrent use across separate Estimator instances; calling Estimate
// concurrently on one shared Estimator is safe provided the configured
// pattern matchers do not mutate the configuration (their documented
// contract, see PatternMatcher).
type Estimator struct {
	mu  sync.RWMutex
	cfg Configuration
}

// New returns an Estimator configured with cfg.
func New(cfg Configuration) *Estimator {
	return &Estimator{cfg: cfg}
}

// GetConfiguration returns the estimator's current configuration.
func (e *Estimator) GetConfiguration() Configuration {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cfg
}

// SetConfiguration replaces the estimator's configuration. A concurrent
// in-flight Estimate call is unaffected: Estimate snapshots (clones) the
// configuration at the start of the call.
func (e *Estimator) SetConfiguration(cfg Configuration) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cfg = cfg
}

// Estimate runs the full decomposition pipeline over password using a
// snapshot of the estimator's current configuration, and returns the
// resulting Result.
//
// Pipeline (spec §2): gather candidates from every configured matcher,
// prune dominated duplicates, build the brute-force fallback table, run
// the cheap cover heuristic to classify the password as random or
// structured, run the exhaustive cover search only if structured, backfill
// gaps with brute-force matches, and assemble the final Result.
//
// Returns a *MatcherFailure if a pattern matcher fails, or a
// *InvariantViolation if the assembled cover does not reconstruct
// password exactly (always a bug, never a normal runtime condition).
func (e *Estimator) Estimate(password string) (Result, error) {
	cfg := e.GetConfiguration().Clone()

	runes := []rune(password)
	runeLen := len(runes)

	if runeLen == 0 {
		return Result{Password: password, Matches: nil, TotalEntropy: 0}, nil
	}

	candidates, err := gatherer.Gather(cfg, password)
	if err != nil {
		return Result{}, err
	}
	candidates = pruner.Prune(candidates)

	bfTable := bruteforce.Build(runes)

	cheap := cheapcover.Build(candidates, bfTable, runeLen)

	var cover []Match
	if randomness.IsRandom(cheap, runeLen) {
		cover = backfill.Fill(nil, bfTable, runeLen)
	} else {
		best := search.Find(candidates)
		cover = backfill.Fill(best, bfTable, runeLen)
	}

	return assembler.Assemble(password, cover)
}
