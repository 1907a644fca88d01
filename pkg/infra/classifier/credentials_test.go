package classifier_test

import (
	"testing"

	"github.com/MyCircle/moderation/pkg/domain/moderation"
	"github.com/MyCircle/moderation/pkg/infra/classifier"
	"github.com/stretchr/testify/assert"
)

func TestValidateCredential(t *testing.T) {
	invalid := []string{
		"",
		"   ",
		"your_api_key_here",
		"YOUR_GEMINI_API_KEY",
		"changeme",
		"<api-key>",
		"xxxxxxxxxxxxxxxxxxxxxxxx",
		"AIzaSy Test Key 1234567890",
		"short-key",
	}
	for _, key := range invalid {
		t.Run(key, func(t *testing.T) {
			assert.ErrorIs(t, classifier.ValidateCredential(key), moderation.ErrClassifierDisabled)
		})
	}

	assert.NoError(t, classifier.ValidateCredential("AIzaSyD-realLooking_key123456"))
	assert.NoError(t, classifier.ValidateCredential("  sk-proj-abcdefghijklmnop  "))
}
