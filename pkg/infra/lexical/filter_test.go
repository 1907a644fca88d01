package lexical_test

import (
	"testing"

	"github.com/MyCircle/moderation/pkg/infra/lexical"
	"github.com/stretchr/testify/assert"
)

func TestContainsProfanity_WordBoundary(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "standalone term", text: "you are an asshole", want: true},
		{name: "uppercase term", text: "What the FUCK", want: true},
		{name: "term with punctuation", text: "shit!", want: true},
		{name: "multi word term", text: "please kill yourself now", want: true},
		{name: "abbreviation", text: "kys loser", want: true},
		{name: "substring of longer word", text: "assholeness", want: false},
		{name: "innocent word containing term", text: "We will assess the classic cocktail", want: false},
		{name: "place name", text: "Scunthorpe United", want: false},
		{name: "clean listing", text: "Free laptop, barely used", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lexical.ContainsProfanity(tt.text))
		})
	}
}

func TestContainsProfanity_DevanagariSubstring(t *testing.T) {
	t.Run("standalone term", func(t *testing.T) {
		assert.True(t, lexical.ContainsProfanity("तुम हरामी हो"))
	})

	t.Run("term glued to other characters still matches", func(t *testing.T) {
		assert.True(t, lexical.ContainsProfanity("अरेहरामीपन"))
	})

	t.Run("clean devanagari text", func(t *testing.T) {
		assert.False(t, lexical.ContainsProfanity("नमस्ते, यह साइकिल बिक्री के लिए है"))
	})
}

func TestContainsProfanity_RomanizedHindi(t *testing.T) {
	assert.True(t, lexical.ContainsProfanity("tu chutiya hai"))
	assert.False(t, lexical.ContainsProfanity("kaminari ramen"))
}

func TestContainsProfanity_Obfuscation(t *testing.T) {
	for _, text := range []string{"f*ck", "what the f**k", "sh1t happens", "b!tch", "a$$hole", "c*nt", "wh0re", "b@stard"} {
		t.Run(text, func(t *testing.T) {
			assert.True(t, lexical.ContainsProfanity(text))
		})
	}
}

func TestContainsProfanity_EmptyInput(t *testing.T) {
	for _, text := range []string{"", " ", "\t\n  "} {
		assert.False(t, lexical.ContainsProfanity(text))
	}
}

func TestFilter_Match_ReportsRule(t *testing.T) {
	f := lexical.Default()

	m, ok := f.Match("total bullshit")
	assert.True(t, ok)
	assert.Equal(t, "bullshit", m.Rule)
	assert.Equal(t, lexical.SourceTerm, m.Source)
	assert.Equal(t, lexical.MatchWordBoundary, m.Strategy)

	m, ok = f.Match("sh1t")
	assert.True(t, ok)
	assert.Equal(t, lexical.SourcePattern, m.Source)
	assert.Equal(t, "shit", m.Rule)
}

func TestFilter_TermsBeforePatterns(t *testing.T) {
	f := lexical.Default()

	// "fuck" is both a term and covered by a pattern; the term wins.
	m, ok := f.Match("fuck")
	assert.True(t, ok)
	assert.Equal(t, lexical.SourceTerm, m.Source)
}

func TestNewTerm_TagsScript(t *testing.T) {
	latin := lexical.NewTerm("son of a bitch")
	assert.Equal(t, lexical.ScriptLatin, latin.Script)
	assert.Equal(t, lexical.MatchWordBoundary, latin.Strategy)

	hindi := lexical.NewTerm("हरामी")
	assert.Equal(t, lexical.ScriptDevanagari, hindi.Script)
	assert.Equal(t, lexical.MatchSubstring, hindi.Strategy)
}

func TestFilter_ExplicitStrategyIsHonoured(t *testing.T) {
	f := lexical.New(lexical.BlockList{
		Terms: []lexical.Term{
			{Text: "spam", Script: lexical.ScriptLatin, Strategy: lexical.MatchSubstring},
		},
	})

	assert.True(t, f.ContainsProfanity("spammer"))
	assert.False(t, lexical.New(lexical.BlockList{Terms: lexical.NewTerms("spam")}).ContainsProfanity("spammer"))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "hello", lexical.Normalize("HeLLo"))
	// zero width joiner inserted to dodge the filter
	assert.Equal(t, "shit", lexical.Normalize("sh\u200dit"))
	// fullwidth letters fold to ASCII
	assert.Equal(t, "fuck", lexical.Normalize("ｆｕｃｋ"))
}
