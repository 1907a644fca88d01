package providers

import (
	"context"
)

type Config struct {
	Credentials  Credentials `json:"credentials"`
	Model        string      `json:"model"`
	MaxTokens    int         `json:"max_tokens,omitempty"`
	Temperature  float64     `json:"temperature,omitempty"`
	SystemPrompt string      `json:"system_prompt,omitempty"`
	Instructions []string    `json:"instructions,omitempty"`
	// JSONOutput asks the provider for a JSON-only reply where it supports it.
	JSONOutput bool `json:"json_output,omitempty"`
}

type Credentials struct {
	ApiKey string `json:"api_key"`
}

// Attachment is binary content sent next to the prompt, such as an image.
type Attachment struct {
	Data     []byte
	MIMEType string
}

//go:generate mockery --name=Client --dir=. --output=./mocks --filename=client_mock.go --case=underscore --with-expecter

type Client interface {
	Ask(ctx context.Context, config *Config, prompt string, attachments ...Attachment) (*CompletionResponse, error)
}
