// Package normalize applies Unicode NFC normalization to passwords before
// analysis, so that visually and semantically identical passwords typed
// with different combining-character sequences (e.g. precomposed "é"
// U+00E9 vs. "e" U+0065 + combining acute U+0301) decompose into the same
// matches and receive the same score.
package normalize

import "golang.org/x/text/unicode/norm"

// NFC returns the Unicode Normalization Form C (canonical composition) of
// password. It is idempotent: normalizing an already-normalized string
// returns it unchanged.
func NFC(password string) string {
	return norm.NFC.String(password)
}
