package providers_test

import (
	"testing"

	"github.com/MyCircle/moderation/pkg/infra/providers"
	"github.com/stretchr/testify/assert"
)

func TestFormatInstructions(t *testing.T) {
	assert.Equal(t, "[Instructions]\n", providers.FormatInstructions(nil))
	assert.Equal(t,
		"[Instructions]\n- reply in JSON\n- be brief\n",
		providers.FormatInstructions([]string{"reply in JSON", " ", "be brief"}),
	)
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"safe": true}`, `{"safe": true}`},
		{"json fence", "```json\n{\"safe\": true}\n```", `{"safe": true}`},
		{"bare fence", "```\n{\"safe\": true}\n```", `{"safe": true}`},
		{"inline fence", "```{\"safe\": true}```", `{"safe": true}`},
		{"surrounding space", "  ok  ", "ok"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, providers.StripCodeFence(tt.in))
		})
	}
}

func TestAttachmentDataURL(t *testing.T) {
	a := providers.Attachment{Data: []byte("hi"), MIMEType: "image/png"}
	assert.Equal(t, "aGk=", a.Base64())
	assert.Equal(t, "data:image/png;base64,aGk=", a.DataURL())
}

func TestMaxTokensOrDefault(t *testing.T) {
	assert.Equal(t, providers.DefaultMaxTokens, providers.MaxTokensOrDefault(0))
	assert.Equal(t, 200, providers.MaxTokensOrDefault(200))
}

func TestConfigSystemText(t *testing.T) {
	cfg := &providers.Config{
		SystemPrompt: "You are a moderator.",
		Instructions: []string{"reply in JSON"},
		JSONOutput:   true,
	}

	assert.Equal(t, "You are a moderator.\n\n[Instructions]\n- reply in JSON", cfg.SystemText(true))
	assert.Equal(t,
		"You are a moderator.\n\n[Instructions]\n- reply in JSON\n- Respond with a single JSON object and nothing else.",
		cfg.SystemText(false),
	)
	assert.Equal(t, []string{"reply in JSON"}, cfg.Instructions)

	assert.Empty(t, (&providers.Config{}).SystemText(true))
	assert.Equal(t, "[Instructions]\n- Respond with a single JSON object and nothing else.",
		(&providers.Config{JSONOutput: true}).SystemText(false))
}

func TestCompletionResponse(t *testing.T) {
	var missing *providers.CompletionResponse
	assert.True(t, missing.Empty())
	assert.True(t, (&providers.CompletionResponse{Response: "  "}).Empty())
	assert.False(t, (&providers.CompletionResponse{Response: "{}"}).Empty())

	assert.Equal(t, providers.Usage{PromptTokens: 12, CompletionTokens: 8, TotalTokens: 20}, providers.NewUsage(12, 8))
}
