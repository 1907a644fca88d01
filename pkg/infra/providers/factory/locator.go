package factory

import (
	"fmt"
	"strings"
	"sync"

	"github.com/MyCircle/moderation/pkg/infra/providers"
	"github.com/MyCircle/moderation/pkg/infra/providers/anthropic"
	"github.com/MyCircle/moderation/pkg/infra/providers/gemini"
	"github.com/MyCircle/moderation/pkg/infra/providers/openai"
)

const (
	ProviderGemini    = "gemini"
	ProviderGoogle    = "google"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

//go:generate mockery --name=ProviderLocator --dir=. --output=./mocks --filename=provider_locator_mock.go --case=underscore --with-expecter

type ProviderLocator interface {
	Get(provider string) (providers.Client, error)
}

type providerLocator struct {
	mu      sync.Mutex
	clients map[string]providers.Client
}

func NewProviderLocator() ProviderLocator {
	return &providerLocator{
		clients: make(map[string]providers.Client),
	}
}

// Get returns one shared client per provider so connection pools are reused.
func (f *providerLocator) Get(provider string) (providers.Client, error) {
	name := strings.ToLower(strings.TrimSpace(provider))
	if name == ProviderGoogle {
		name = ProviderGemini
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.clients[name]; ok {
		return c, nil
	}

	var c providers.Client
	switch name {
	case ProviderGemini:
		c = gemini.NewGeminiClient()
	case ProviderOpenAI:
		c = openai.NewOpenaiClient()
	case ProviderAnthropic:
		c = anthropic.NewAnthropicClient()
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
	f.clients[name] = c
	return c, nil
}
