// Package lexical implements the local profanity filter that runs before any
// call to the AI classifier.
package lexical

import (
	"regexp"
	"strings"
)

type MatchSource string

const (
	SourceTerm    MatchSource = "term"
	SourcePattern MatchSource = "pattern"
)

// Match describes the rule that fired. It is meant for operator logs only.
type Match struct {
	Rule     string
	Source   MatchSource
	Script   Script
	Strategy MatchStrategy
}

type compiledTerm struct {
	term       Term
	normalized string
	re         *regexp.Regexp
}

// Filter is immutable after construction and safe for concurrent use.
type Filter struct {
	terms    []compiledTerm
	patterns []Pattern
}

func New(list BlockList) *Filter {
	f := &Filter{
		terms:    make([]compiledTerm, 0, len(list.Terms)),
		patterns: list.Patterns,
	}
	for _, t := range list.Terms {
		normalized := Normalize(strings.TrimSpace(t.Text))
		if normalized == "" {
			continue
		}
		ct := compiledTerm{term: t, normalized: normalized}
		if t.Strategy == MatchWordBoundary {
			ct.re = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(normalized) + `\b`)
		}
		f.terms = append(f.terms, ct)
	}
	return f
}

// Match scans every blocklist term and then the obfuscation patterns,
// returning the first rule that fires.
func (f *Filter) Match(text string) (Match, bool) {
	if strings.TrimSpace(text) == "" {
		return Match{}, false
	}
	normalized := Normalize(text)

	for _, ct := range f.terms {
		if ct.hit(normalized) {
			return Match{
				Rule:     ct.term.Text,
				Source:   SourceTerm,
				Script:   ct.term.Script,
				Strategy: ct.term.Strategy,
			}, true
		}
	}

	for _, p := range f.patterns {
		if p.Expr != nil && p.Expr.MatchString(normalized) {
			return Match{Rule: p.Name, Source: SourcePattern}, true
		}
	}

	return Match{}, false
}

func (f *Filter) ContainsProfanity(text string) bool {
	_, ok := f.Match(text)
	return ok
}

func (ct compiledTerm) hit(normalized string) bool {
	switch ct.term.Strategy {
	case MatchWordBoundary:
		return ct.re.MatchString(normalized)
	default:
		return strings.Contains(normalized, ct.normalized)
	}
}

var defaultFilter = New(DefaultBlockList())

func Default() *Filter {
	return defaultFilter
}

func ContainsProfanity(text string) bool {
	return defaultFilter.ContainsProfanity(text)
}
