package lexical

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// transformers are stateful, so each goroutine takes its own chain from the pool
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			cases.Fold(),
			runes.Remove(runes.In(unicode.Cf)), // zero-width joiners and friends
			width.Fold,
		)
	},
}

// Normalize folds case and canonicalises Unicode so that blocklist terms and
// user input are compared in the same form. Devanagari vowel signs are kept.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToValidUTF8(s, "")

	tr, ok := chainPool.Get().(transform.Transformer)
	if !ok {
		return strings.ToLower(s)
	}
	out, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}
