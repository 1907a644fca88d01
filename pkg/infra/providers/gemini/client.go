package gemini

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MyCircle/moderation/pkg/common"
	"github.com/MyCircle/moderation/pkg/infra/providers"
	"golang.org/x/sync/singleflight"
	"google.golang.org/genai"
)

const (
	ProviderName = "gemini"
	DefaultModel = "gemini-2.0-flash"
)

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

func NewGeminiClient(opts ...Option) providers.Client {
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

	model := config.Model
	if model == "" {
		model = DefaultModel
	}

	genaiClient, err := c.getOrCreateClient(ctx, config.Credentials.ApiKey)
	if err != nil {
		return nil, err
	}

	var systemParts []*genai.Part
	if config.SystemPrompt != "" {
		systemParts = append(systemParts, &genai.Part{Text: config.SystemPrompt})
	}
	if len(config.Instructions) > 0 {
		systemParts = append(systemParts, &genai.Part{
			Text: providers.FormatInstructions(config.Instructions),
		})
	}

	parts := []*genai.Part{{Text: prompt}}
	for _, a := range attachments {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{
				Data:     a.Data,
				MIMEType: a.MIMEType,
			},
		})
	}
	contents := []*genai.Content{{Role: "user", Parts: parts}}

	genConfig := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(providers.MaxTokensOrDefault(config.MaxTokens)),
	}
	if len(systemParts) > 0 {
		genConfig.SystemInstruction = &genai.Content{Parts: systemParts}
	}
	if config.JSONOutput {
		genConfig.ResponseMIMEType = "application/json"
	}
	if config.Temperature > 0 {
		temperature := float32(config.Temperature)
		genConfig.Temperature = &temperature
	}

	result, err := genaiClient.Models.GenerateContent(ctx, model, contents, genConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	responseText := providers.StripCodeFence(result.Text())
	if responseText == "" {
		return nil, fmt.Errorf("no completions returned")
	}

	id := fmt.Sprintf("gemini-%d", time.Now().UnixNano())
	if requestID := common.RequestID(ctx); requestID != "" {
		id = fmt.Sprintf("gemini-%s", requestID)
	}

	completionResp := &providers.CompletionResponse{
		ID:       id,
		Provider: ProviderName,
		Model:    model,
		Response: responseText,
	}
	if result.UsageMetadata != nil {
		completionResp.Usage = providers.NewUsage(
			int64(result.UsageMetadata.PromptTokenCount),
			int64(result.UsageMetadata.CandidatesTokenCount),
		)
	}

	return completionResp, nil
}

func (c *client) getOrCreateClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if v, ok := c.clientPool.Load(apiKey); ok {
		if cli, ok := v.(*genai.Client); ok {
			return cli, nil
		}
	}
	v, err, _ := c.sf.Do(apiKey, func() (any, error) {
		if v2, ok := c.clientPool.Load(apiKey); ok {
			return v2, nil
		}
		cfg := &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		}
		if c.baseURL != "" {
			cfg.HTTPOptions = genai.HTTPOptions{BaseURL: c.baseURL}
		}
		cli, err := genai.NewClient(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		c.clientPool.Store(apiKey, cli)
		return cli, nil
	})
	if err != nil {
		return nil, err
	}
	cli, ok := v.(*genai.Client)
	if !ok {
		return nil, fmt.Errorf("unexpected gemini client type %T", v)
	}
	return cli, nil
}
