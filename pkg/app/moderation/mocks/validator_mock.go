package mocks

import (
	"context"

	appModeration "github.com/MyCircle/moderation/pkg/app/moderation"
	"github.com/MyCircle/moderation/pkg/domain/moderation"
	"github.com/stretchr/testify/mock"
)

type Validator struct {
	mock.Mock
}

func (m *Validator) ValidateTextSubmission(
	ctx context.Context,
	category moderation.Category,
	fields moderation.TextPayload,
) moderation.TextResult {
	args := m.Called(ctx, category, fields)
	return args.Get(0).(moderation.TextResult)
}

func (m *Validator) ValidateImageSubmission(
	ctx context.Context,
	img moderation.ImageSource,
	cleanup appModeration.CleanupFunc,
) moderation.ImageResult {
	args := m.Called(ctx, img, cleanup)
	return args.Get(0).(moderation.ImageResult)
}

func (m *Validator) GenerateQuickReplies(ctx context.Context, history []moderation.ChatMessage) []string {
	args := m.Called(ctx, history)
	replies, _ := args.Get(0).([]string)
	return replies
}

func (m *Validator) GeneratePostAnalysis(ctx context.Context, title, description string) moderation.PostAnalysis {
	args := m.Called(ctx, title, description)
	return args.Get(0).(moderation.PostAnalysis)
}

func (m *Validator) GeneratePostExplanation(ctx context.Context, title, description string) moderation.PostExplanation {
	args := m.Called(ctx, title, description)
	return args.Get(0).(moderation.PostExplanation)
}
