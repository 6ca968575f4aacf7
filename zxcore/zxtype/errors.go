package zxtype

import "fmt"

// MatcherFailure wraps an unrecoverable error signaled by a PatternMatcher.
// It propagates out of Estimate unchanged in meaning (see spec §7).
type MatcherFailure struct {
	// Matcher identifies the offending matcher, typically its Kind or a
	// type name, for diagnostics.
	Matcher string
	Err     error
}

func (e *MatcherFailure) Error() string {
	return fmt.Sprintf("zxcore: matcher %q failed: %v", e.Matcher, e.Err)
}

func (e *MatcherFailure) Unwrap() error { return e.Err }

// InvariantViolation indicates the assembled match list does not
// reconstruct the input password exactly. This is always a bug — in the
// core or in a pattern matcher — never a user-visible condition in
// correct operation.
type InvariantViolation struct {
	Reason string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("zxcore: invariant violated: %s", e.Reason)
}
