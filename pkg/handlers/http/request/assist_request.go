package request

import (
	"fmt"
	"strings"

	"github.com/MyCircle/moderation/pkg/domain/moderation"
)

const maxChatMessages = 50

type ChatMessage struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

type QuickRepliesRequest struct {
	Messages []ChatMessage `json:"messages"`
}

func (r *QuickRepliesRequest) Validate() error {
	if len(r.Messages) == 0 {
		return fmt.Errorf("messages is required")
	}
	if len(r.Messages) > maxChatMessages {
		return fmt.Errorf("at most %d messages are allowed", maxChatMessages)
	}
	for i, m := range r.Messages {
		if strings.TrimSpace(m.Text) == "" {
			return fmt.Errorf("message at index %d is empty", i)
		}
	}
	return nil
}

func (r *QuickRepliesRequest) History() []moderation.ChatMessage {
	history := make([]moderation.ChatMessage, 0, len(r.Messages))
	for _, m := range r.Messages {
		history = append(history, moderation.ChatMessage{Sender: m.Sender, Text: m.Text})
	}
	return history
}

type PostContentRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (r *PostContentRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}
