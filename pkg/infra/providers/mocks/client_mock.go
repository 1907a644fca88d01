package mocks

import (
	"context"
	"fmt"

	"github.com/MyCircle/moderation/pkg/infra/providers"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (m *Client) Ask(
	ctx context.Context,
	config *providers.Config,
	prompt string,
	attachments ...providers.Attachment,
) (*providers.CompletionResponse, error) {
	args := m.Called(ctx, config, prompt, attachments)
	resp, ok := args.Get(0).(*providers.CompletionResponse)
	if !ok && args.Get(0) != nil {
		return nil, fmt.Errorf("expected *providers.CompletionResponse, got %T", args.Get(0))
	}
	return resp, args.Error(1)
}
