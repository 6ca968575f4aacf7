// Package matchers wires the concrete pattern matchers (dictionary,
// spatial, sequence, repeat, date, year) into the zxcore decomposition
// engine's Configuration.Matchers slot.
package matchers

import (
	"github.com/rafaelsanzio/zxcheck/internal/matchers/date"
	"github.com/rafaelsanzio/zxcheck/internal/matchers/dictionary"
	"github.com/rafaelsanzio/zxcheck/internal/matchers/repeat"
	"github.com/rafaelsanzio/zxcheck/internal/matchers/sequence"
	"github.com/rafaelsanzio/zxcheck/internal/matchers/spatial"
	"github.com/rafaelsanzio/zxcheck/internal/matchers/year"
	"github.com/rafaelsanzio/zxcheck/zxcore"
)

// Default returns the standard matcher set used by EntropyModeDecomposition:
// dictionary matches first (most informative when present), then the
// structural matchers.
func Default() []zxcore.PatternMatcher {
	return []zxcore.PatternMatcher{
		dictionary.New(),
		spatial.New(),
		sequence.New(),
		repeat.New(),
		date.New(),
		year.New(),
	}
}
