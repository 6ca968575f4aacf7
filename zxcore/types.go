// Package zxcore implements the password-decomposition core: given a
// password and a pool of candidate matches produced by pluggable pattern
// matchers, it selects a non-overlapping cover of the password that
// favours broad recognized-pattern coverage, then low average entropy per
// character, and reports the total entropy of that cover.
//
// The package is a pure, synchronous, stateless computation (see
// Estimator) over opaque Match values — it has no notion of what a
// "dictionary word" or a "keyboard walk" actually is. Concrete pattern
// matchers live outside this package (see internal/matchers in the
// parent module) and are wired in through Configuration.Matchers.
//
// The value types (Match, Configuration, PatternMatcher, Result, and the
// two error categories) live in the zxtype subpackage so that the engine's
// internal pipeline stages can depend on them without importing this
// package — that would be a cycle, since this package imports the
// pipeline stages. They are aliased here so callers only ever need to
// import zxcore.
package zxcore

import "github.com/rafaelsanzio/zxcheck/zxcore/zxtype"

// Kind discriminates the variant of a Match.
type Kind = zxtype.Kind

const (
	KindDictionary = zxtype.KindDictionary
	KindRepeat     = zxtype.KindRepeat
	KindSequence   = zxtype.KindSequence
	KindSpatial    = zxtype.KindSpatial
	KindDate       = zxtype.KindDate
	KindYear       = zxtype.KindYear
	KindBruteForce = zxtype.KindBruteForce
)

// Match is a single decomposition unit. See zxtype.Match for field docs.
type Match = zxtype.Match

// PatternMatcher is the external collaborator interface pattern matchers
// implement. See zxtype.PatternMatcher.
type PatternMatcher = zxtype.PatternMatcher

// Configuration is read-only input to an Estimator. See zxtype.Configuration.
type Configuration = zxtype.Configuration

// Result holds the outcome of a single Estimate call. See zxtype.Result.
type Result = zxtype.Result

// MatcherFailure and InvariantViolation are the two error categories the
// core recognizes (spec §7). See zxtype for field docs.
type MatcherFailure = zxtype.MatcherFailure
type InvariantViolation = zxtype.InvariantViolation
