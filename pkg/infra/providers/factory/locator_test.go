package factory_test

import (
	"testing"

	"github.com/MyCircle/moderation/pkg/infra/providers/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderLocator_Get(t *testing.T) {
	locator := factory.NewProviderLocator()

	for _, name := range []string{
		factory.ProviderGemini,
		factory.ProviderGoogle,
		factory.ProviderOpenAI,
		factory.ProviderAnthropic,
		" Gemini ",
	} {
		t.Run(name, func(t *testing.T) {
			c, err := locator.Get(name)
			require.NoError(t, err)
			assert.NotNil(t, c)
		})
	}
}

func TestProviderLocator_ReusesClients(t *testing.T) {
	locator := factory.NewProviderLocator()

	a, err := locator.Get(factory.ProviderGemini)
	require.NoError(t, err)
	b, err := locator.Get(factory.ProviderGoogle)
	require.NoError(t, err)

	assert.Same(t, a, b)
}

func TestProviderLocator_Unsupported(t *testing.T) {
	locator := factory.NewProviderLocator()

	c, err := locator.Get("bedrock")

	assert.Nil(t, c)
	assert.EqualError(t, err, "unsupported provider: bedrock")
}
