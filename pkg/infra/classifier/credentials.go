package classifier

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/MyCircle/moderation/pkg/domain/moderation"
)

const minCredentialLength = 16

// CredentialSource yields the provider credential. It is consulted on every
// operation so rotated or late-configured keys take effect without restart.
type CredentialSource func() string

func StaticCredential(key string) CredentialSource {
	return func() string { return key }
}

var placeholderCredentials = map[string]struct{}{
	"your_api_key_here":        {},
	"your-api-key-here":        {},
	"your_api_key":             {},
	"your-api-key":             {},
	"your_gemini_api_key":      {},
	"your_gemini_api_key_here": {},
	"your_openai_api_key":      {},
	"your_anthropic_api_key":   {},
	"gemini_api_key":           {},
	"api_key":                  {},
	"apikey":                   {},
	"<api-key>":                {},
	"<api_key>":                {},
	"<your-api-key>":           {},
	"changeme":                 {},
	"change_me":                {},
	"placeholder":              {},
	"xxx":                      {},
	"todo":                     {},
	"test":                     {},
	"dummy":                    {},
}

// ValidateCredential rejects blank keys, keys containing whitespace, keys too
// short to be real and well-known placeholder values.
func ValidateCredential(key string) error {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return fmt.Errorf("%w: no API key configured", moderation.ErrClassifierDisabled)
	}
	if _, ok := placeholderCredentials[strings.ToLower(trimmed)]; ok {
		return fmt.Errorf("%w: API key is a placeholder", moderation.ErrClassifierDisabled)
	}
	if strings.IndexFunc(trimmed, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: API key contains whitespace", moderation.ErrClassifierDisabled)
	}
	if strings.Trim(trimmed, "xX*.-_") == "" {
		return fmt.Errorf("%w: API key is a placeholder", moderation.ErrClassifierDisabled)
	}
	if len(trimmed) < minCredentialLength {
		return fmt.Errorf("%w: API key is too short", moderation.ErrClassifierDisabled)
	}
	return nil
}
