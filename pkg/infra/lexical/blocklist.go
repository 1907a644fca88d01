package lexical

import (
	"regexp"
	"strings"
)

type Script string

const (
	ScriptLatin      Script = "latin"
	ScriptDevanagari Script = "devanagari"
)

// MatchStrategy is part of the policy: Latin terms must stand alone as a
// token, other scripts are matched as substrings because tokenisation is
// unreliable there.
type MatchStrategy string

const (
	MatchWordBoundary MatchStrategy = "word_boundary"
	MatchSubstring    MatchStrategy = "substring"
)

var latinTerm = regexp.MustCompile(`^[a-zA-Z\s]+$`)

type Term struct {
	Text     string
	Script   Script
	Strategy MatchStrategy
}

// NewTerm tags a term with its script and the strategy that script implies.
func NewTerm(text string) Term {
	text = strings.TrimSpace(text)
	if latinTerm.MatchString(text) {
		return Term{Text: text, Script: ScriptLatin, Strategy: MatchWordBoundary}
	}
	return Term{Text: text, Script: ScriptDevanagari, Strategy: MatchSubstring}
}

func NewTerms(texts ...string) []Term {
	out := make([]Term, 0, len(texts))
	for _, t := range texts {
		if strings.TrimSpace(t) == "" {
			continue
		}
		out = append(out, NewTerm(t))
	}
	return out
}

// Pattern is an obfuscation regex checked after the exact terms.
type Pattern struct {
	Name string
	Expr *regexp.Regexp
}

type BlockList struct {
	Terms    []Term
	Patterns []Pattern
}

func DefaultBlockList() BlockList {
	terms := make([]Term, 0, len(englishTerms)+len(hindiRomanTerms)+len(hindiDevanagariTerms))
	terms = append(terms, NewTerms(englishTerms...)...)
	terms = append(terms, NewTerms(hindiRomanTerms...)...)
	terms = append(terms, NewTerms(hindiDevanagariTerms...)...)

	return BlockList{
		Terms:    terms,
		Patterns: obfuscationPatterns,
	}
}
