// apps/go-solver/internal/words/normalize.go
//
// Word normalization for the Motus alphabet.
//
// Steps, in order:
//   1. trim + lowercase
//   2. expand ligatures (œ → oe, æ → ae)
//   3. NFD-decompose and drop combining marks (é → e, ç → c)
//   4. reject anything outside a–z
//
// The result is the canonical spelling used everywhere else: in the corpus,
// in blocklists, and in feedback letters.

package words

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var ligatures = strings.NewReplacer("œ", "oe", "æ", "ae")

// Normalize returns the canonical form of raw and whether it is a valid word.
func Normalize(raw string) (string, bool) {
	w := strings.ToLower(strings.TrimSpace(raw))
	if w == "" {
		return "", false
	}
	w = ligatures.Replace(w)

	// Transformers carry state, so build a fresh chain per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, w)
	if err != nil {
		return "", false
	}
	if !isAlpha(out) {
		return "", false
	}
	return out, true
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
