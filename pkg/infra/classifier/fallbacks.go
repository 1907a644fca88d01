package classifier

import (
	"errors"
	"slices"
	"strings"

	"github.com/MyCircle/moderation/pkg/domain/moderation"
)

const (
	DegradedWarning = "AI moderation unavailable"

	DefaultAnalysisScore = 50
)

var defaultQuickReplies = []string{
	"Is this still available?",
	"Thanks, sounds good!",
	"When can I pick it up?",
}

func DefaultQuickReplies() []string {
	out := make([]string, len(defaultQuickReplies))
	copy(out, defaultQuickReplies)
	return out
}

func DefaultPostAnalysis() moderation.PostAnalysis {
	return moderation.PostAnalysis{
		Summary: "This post looks good. Add clear details so neighbours know what to expect.",
		Tips: []string{
			"Add a clear photo",
			"Mention condition and price",
			"Say when and where to pick up",
		},
		Score: DefaultAnalysisScore,
	}
}

func DefaultPostExplanation() moderation.PostExplanation {
	return moderation.PostExplanation{
		Summary:          "No additional explanation is available for this post right now.",
		Context:          "Contact the author for more details.",
		InterestingFacts: []string{},
	}
}

// verdictFallback is the fail-open verdict for err.
func verdictFallback(err error) moderation.SafetyVerdict {
	if errors.Is(err, moderation.ErrClassifierDisabled) {
		return moderation.Degraded(moderation.ErrClassifierDisabled.Error(), err.Error())
	}
	return moderation.Degraded(DegradedWarning, err.Error())
}

// normalizeReplies pads or trims to exactly QuickReplyCount non-blank replies.
func normalizeReplies(replies []string) []string {
	out := make([]string, 0, moderation.QuickReplyCount)
	for _, r := range replies {
		if len(out) == moderation.QuickReplyCount {
			break
		}
		if r = strings.TrimSpace(r); r != "" {
			out = append(out, r)
		}
	}
	for _, d := range defaultQuickReplies {
		if len(out) == moderation.QuickReplyCount {
			break
		}
		if !slices.Contains(out, d) {
			out = append(out, d)
		}
	}
	return out
}
