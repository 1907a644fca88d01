package openai

import (
	"context"
	"fmt"
	"sync"

	"github.com/MyCircle/moderation/pkg/infra/providers"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/shared"
	"golang.org/x/sync/singleflight"
)

const ProviderName = "openai"

type client struct {
	clientPool *sync.Map
	sf         singleflight.Group
	baseURL    string
}

type Option func(*client)

// WithBaseURL points the SDK at another endpoint, such as a proxy or a test server.
func WithBaseURL(url string) Option {
	return func(c *client) {
		c.baseURL = url
	}
}

func NewOpenaiClient(opts ...Option) providers.Client {
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
	if config.Model == "" {
		return nil, fmt.Errorf("model is required")
	}

	openaiClient := c.getOrCreateClient(config.Credentials.ApiKey)

	var messages []openai.ChatCompletionMessageParamUnion

	if system := config.SystemText(true); system != "" {
		messages = append(messages, openai.SystemMessage(system))
	}

	switch {
	case len(attachments) > 0:
		content := []openai.ChatCompletionContentPartUnionParam{openai.TextContentPart(prompt)}
		for _, a := range attachments {
			content = append(content, openai.ImageContentPart(
				openai.ChatCompletionContentPartImageImageURLParam{URL: a.DataURL()},
			))
		}
		messages = append(messages, openai.UserMessage(content))
	case prompt != "":
		messages = append(messages, openai.UserMessage(prompt))
	}

	params := openai.ChatCompletionNewParams{
		Model:    config.Model,
		Messages: messages,
	}

	if config.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(config.MaxTokens))
	}

	if config.Temperature > 0 {
		params.Temperature = openai.Float(config.Temperature)
	}

	if config.JSONOutput {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		}
	}

	resp, err := openaiClient.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("OpenAI request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no completions returned")
	}

	return &providers.CompletionResponse{
		ID:       resp.ID,
		Provider: ProviderName,
		Model:    resp.Model,
		Response: providers.StripCodeFence(resp.Choices[0].Message.Content),
		Usage:    providers.NewUsage(resp.Usage.PromptTokens, resp.Usage.CompletionTokens),
	}, nil
}

func (c *client) getOrCreateClient(apiKey string) *openai.Client {
	if v, ok := c.clientPool.Load(apiKey); ok {
		if client, ok := v.(*openai.Client); ok {
			return client
		}
	}
	v, err, _ := c.sf.Do(apiKey, func() (any, error) {
		if v2, ok := c.clientPool.Load(apiKey); ok {
			return v2, nil
		}
		cli := c.newClient(apiKey)
		c.clientPool.Store(apiKey, cli)
		return cli, nil
	})
	if err == nil {
		if client, ok := v.(*openai.Client); ok {
			return client
		}
	}
	return c.newClient(apiKey)
}

func (c *client) newClient(apiKey string) *openai.Client {
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if c.baseURL != "" {
		opts = append(opts, option.WithBaseURL(c.baseURL))
	}
	cli := openai.NewClient(opts...)
	return &cli
}
