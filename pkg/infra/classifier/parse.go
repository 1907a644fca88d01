package classifier

import (
	"fmt"

	"github.com/MyCircle/moderation/pkg/domain/moderation"
	"github.com/valyala/fastjson"
)

var parserPool fastjson.ParserPool

// ExtractJSONObject returns the first balanced top-level {...} span in text.
// Braces inside JSON strings are ignored.
func ExtractJSONObject(text string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(text); i++ {
		ch := text[i]
		if start < 0 {
			if ch == '{' {
				start = i
				depth = 1
			}
			continue
		}
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}
	return "", false
}

// parseResponse locates the JSON object in a model reply and hands it to
// decode. Every failure is reported as ErrMalformedResponse.
func parseResponse[T any](text string, decode func(v *fastjson.Value) (T, error)) (T, error) {
	var zero T

	raw, ok := ExtractJSONObject(text)
	if !ok {
		return zero, fmt.Errorf("%w: no JSON object found", moderation.ErrMalformedResponse)
	}

	p := parserPool.Get()
	defer parserPool.Put(p)

	v, err := p.Parse(raw)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", moderation.ErrMalformedResponse, err)
	}
	if v.Type() != fastjson.TypeObject {
		return zero, fmt.Errorf("%w: expected object", moderation.ErrMalformedResponse)
	}

	out, err := decode(v)
	if err != nil {
		return zero, fmt.Errorf("%w: %v", moderation.ErrMalformedResponse, err)
	}
	return out, nil
}

func ParseVerdict(text string) (moderation.SafetyVerdict, error) {
	return parseResponse(text, decodeVerdict)
}

func ParseQuickReplies(text string) ([]string, error) {
	return parseResponse(text, decodeQuickReplies)
}

func ParsePostAnalysis(text string) (moderation.PostAnalysis, error) {
	return parseResponse(text, decodePostAnalysis)
}

func ParsePostExplanation(text string) (moderation.PostExplanation, error) {
	return parseResponse(text, decodePostExplanation)
}

func decodeVerdict(v *fastjson.Value) (moderation.SafetyVerdict, error) {
	safe, err := requiredBool(v, "safe")
	if err != nil {
		return moderation.SafetyVerdict{}, err
	}
	if safe {
		return moderation.Safe(), nil
	}
	reason, err := optionalString(v, "reason")
	if err != nil {
		return moderation.SafetyVerdict{}, err
	}
	return moderation.Unsafe(reason), nil
}

func decodeQuickReplies(v *fastjson.Value) ([]string, error) {
	return requiredStrings(v, "replies")
}

func decodePostAnalysis(v *fastjson.Value) (moderation.PostAnalysis, error) {
	summary, err := requiredString(v, "summary")
	if err != nil {
		return moderation.PostAnalysis{}, err
	}
	tips, err := requiredStrings(v, "tips")
	if err != nil {
		return moderation.PostAnalysis{}, err
	}
	score, err := requiredNumber(v, "score")
	if err != nil {
		return moderation.PostAnalysis{}, err
	}
	return moderation.PostAnalysis{
		Summary: summary,
		Tips:    tips,
		Score:   clampScore(score),
	}, nil
}

func decodePostExplanation(v *fastjson.Value) (moderation.PostExplanation, error) {
	summary, err := requiredString(v, "summary")
	if err != nil {
		return moderation.PostExplanation{}, err
	}
	background, err := requiredString(v, "context")
	if err != nil {
		return moderation.PostExplanation{}, err
	}
	facts, err := requiredStrings(v, "interestingFacts")
	if err != nil {
		return moderation.PostExplanation{}, err
	}
	return moderation.PostExplanation{
		Summary:          summary,
		Context:          background,
		InterestingFacts: facts,
	}, nil
}

func requiredBool(v *fastjson.Value, key string) (bool, error) {
	f := v.Get(key)
	if f == nil {
		return false, fmt.Errorf("missing field %q", key)
	}
	b, err := f.Bool()
	if err != nil {
		return false, fmt.Errorf("field %q: %w", key, err)
	}
	return b, nil
}

func requiredString(v *fastjson.Value, key string) (string, error) {
	f := v.Get(key)
	if f == nil {
		return "", fmt.Errorf("missing field %q", key)
	}
	b, err := f.StringBytes()
	if err != nil {
		return "", fmt.Errorf("field %q: %w", key, err)
	}
	return string(b), nil
}

func optionalString(v *fastjson.Value, key string) (string, error) {
	f := v.Get(key)
	if f == nil || f.Type() == fastjson.TypeNull {
		return "", nil
	}
	b, err := f.StringBytes()
	if err != nil {
		return "", fmt.Errorf("field %q: %w", key, err)
	}
	return string(b), nil
}

func requiredNumber(v *fastjson.Value, key string) (float64, error) {
	f := v.Get(key)
	if f == nil {
		return 0, fmt.Errorf("missing field %q", key)
	}
	n, err := f.Float64()
	if err != nil {
		return 0, fmt.Errorf("field %q: %w", key, err)
	}
	return n, nil
}

func requiredStrings(v *fastjson.Value, key string) ([]string, error) {
	f := v.Get(key)
	if f == nil {
		return nil, fmt.Errorf("missing field %q", key)
	}
	items, err := f.Array()
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", key, err)
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		b, err := item.StringBytes()
		if err != nil {
			return nil, fmt.Errorf("field %q[%d]: %w", key, i, err)
		}
		out = append(out, string(b))
	}
	return out, nil
}

func clampScore(score float64) int {
	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	default:
		return int(score + 0.5)
	}
}
