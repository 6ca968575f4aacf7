// Package assembler implements the final pipeline stage (spec §4.8):
// summing entropies and constructing the Result, after verifying that the
// chosen cover reconstructs the input password exactly.
package assembler

import (
	"strings"

	"github.com/rafaelsanzio/zxcheck/zxcore/zxtype"
)

// Assemble builds a Result from the final sorted cover. It verifies the
// coverage invariant (concatenating tokens in Start order reproduces
// password exactly) and returns a *zxtype.InvariantViolation if it does
// not — this indicates a bug in the engine or in a pattern matcher, never
// a normal runtime condition.
func Assemble(password string, cover []zxtype.Match) (zxtype.Result, error) {
	var b strings.Builder
	var total float64
	for _, m := range cover {
		b.WriteString(m.Token)
		total += m.EntropyBits
	}

	if b.String() != password {
		return zxtype.Result{}, &zxtype.InvariantViolation{
			Reason: "concatenated match tokens do not reconstruct the password",
		}
	}

	return zxtype.Result{
		Password:     password,
		Matches:      cover,
		TotalEntropy: total,
	}, nil
}
