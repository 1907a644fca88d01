package anthropic

import (
	"context"
	"fmt"
	"sync"

	"github.com/MyCircle/moderation/pkg/infra/providers"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	ProviderName = "anthropic"
	DefaultModel = "claude-3-5-haiku-latest"
)

type client struct {
	clientPool *sync.Map
	baseURL    string
}

type Option func(*client)

// WithBaseURL points the SDK at another endpoint, such as a proxy or a test server.
func WithBaseURL(url string) Option {
	return func(c *client) {
		c.baseURL = url
	}
}

func NewAnthropicClient(opts ...Option) providers.Client {
	c := &client{
		clientPool: &sync.Map{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *client) Ask(
	ctx context.Context,
	config *providers.Config,
	prompt string,
	attachments ...providers.Attachment,
) (*providers.CompletionResponse, error) {
	if config.Credentials.ApiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	anthropicClient := c.getOrCreateClient(config.Credentials.ApiKey)

	blocks := make([]anthropic.ContentBlockParamUnion, 0, len(attachments)+1)
	for _, a := range attachments {
		blocks = append(blocks, anthropic.NewImageBlockBase64(a.MIMEType, a.Base64()))
	}
	if prompt != "" {
		blocks = append(blocks, anthropic.NewTextBlock(prompt))
	}
	if len(blocks) == 0 {
		return nil, fmt.Errorf("prompt is required")
	}

	model := anthropic.Model(DefaultModel)
	if config.Model != "" {
		model = anthropic.Model(config.Model)
	}

	params := anthropic.MessageNewParams{
		Model:     model,
		Messages:  []anthropic.MessageParam{anthropic.NewUserMessage(blocks...)},
		MaxTokens: int64(providers.MaxTokensOrDefault(config.MaxTokens)),
	}

	// no native JSON mode: the contract goes into the system prompt
	if system := config.SystemText(false); system != "" {
		params.System = []anthropic.TextBlockParam{
			{
				Text: system,
				Type: "text",
			},
		}
	}

	if config.Temperature > 0 {
		params.Temperature = anthropic.Float(config.Temperature)
	}

	message, err := anthropicClient.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic request failed: %w", err)
	}

	if len(message.Content) == 0 {
		return nil, fmt.Errorf("no completions returned")
	}

	var responseText string
	for _, content := range message.Content {
		if content.Type == "text" {
			responseText = content.Text
			break
		}
	}

	if responseText == "" {
		return nil, fmt.Errorf("no text content returned")
	}

	return &providers.CompletionResponse{
		ID:       message.ID,
		Provider: ProviderName,
		Model:    string(model),
		Response: providers.StripCodeFence(responseText),
		Usage:    providers.NewUsage(message.Usage.InputTokens, message.Usage.OutputTokens),
	}, nil
}

func (c *client) getOrCreateClient(apiKey string) anthropic.Client {
	if clientVal, ok := c.clientPool.Load(apiKey); ok {
		if client, ok := clientVal.(anthropic.Client); ok {
			return client
		}
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if c.baseURL != "" {
		opts = append(opts, option.WithBaseURL(c.baseURL))
	}
	newClient := anthropic.NewClient(opts...)
	c.clientPool.Store(apiKey, newClient)
	return newClient
}
