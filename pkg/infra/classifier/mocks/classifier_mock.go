package mocks

import (
	"context"

	"github.com/MyCircle/moderation/pkg/domain/moderation"
	"github.com/stretchr/testify/mock"
)

type Classifier struct {
	mock.Mock
}

func (m *Classifier) CheckTextSafety(ctx context.Context, text string) moderation.SafetyVerdict {
	args := m.Called(ctx, text)
	return args.Get(0).(moderation.SafetyVerdict)
}

func (m *Classifier) CheckImageSafety(ctx context.Context, data []byte, mimeType string) moderation.SafetyVerdict {
	args := m.Called(ctx, data, mimeType)
	return args.Get(0).(moderation.SafetyVerdict)
}

func (m *Classifier) GenerateQuickReplies(ctx context.Context, history []moderation.ChatMessage) []string {
	args := m.Called(ctx, history)
	replies, _ := args.Get(0).([]string)
	return replies
}

func (m *Classifier) GeneratePostAnalysis(ctx context.Context, title, description string) moderation.PostAnalysis {
	args := m.Called(ctx, title, description)
	return args.Get(0).(moderation.PostAnalysis)
}

func (m *Classifier) GeneratePostExplanation(ctx context.Context, title, description string) moderation.PostExplanation {
	args := m.Called(ctx, title, description)
	return args.Get(0).(moderation.PostExplanation)
}
