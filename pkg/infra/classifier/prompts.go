package classifier

import (
	"fmt"
	"strings"

	"github.com/MyCircle/moderation/pkg/domain/moderation"
)

const maxHistoryMessages = 10

const (
	// safety checks want the same answer for the same content
	safetyTemperature     = 0.1
	generativeTemperature = 0.7
)

const safetyTaxonomy = `Judge the content against these categories:
- sexual content (explicit, suggestive or involving minors)
- hate speech (attacks on protected groups, slurs, harassment)
- violence (threats, glorification, self-harm encouragement)
- illegal activity (drugs, weapons, stolen goods, fraud)
- scams (phishing, fake giveaways, advance-fee schemes, payment off-platform)`

const noProse = "No text, no commentary, no markdown."

// request is one provider call: the role and output contract go to the
// system side, the content to the user message.
type request struct {
	system       string
	instructions []string
	temperature  float64
	prompt       string
}

var verdictInstructions = []string{
	`You must produce only a JSON object that exactly matches this schema: {"safe": <boolean>, "reason": <string>}`,
	noProse,
	`"reason" is a short, user-facing explanation when "safe" is false, and an empty string otherwise.`,
}

func textSafetyRequest(text string) request {
	return request{
		system: "You are a content moderator for a community marketplace where neighbours post items, services and profiles.\n\n" +
			safetyTaxonomy,
		instructions: append([]string{
			`"safe" is false when the content clearly falls into any category above.`,
			"Ordinary listings, casual slang and mild negativity are safe.",
		}, verdictInstructions...),
		temperature: safetyTemperature,
		prompt:      fmt.Sprintf("Content:\n\"\"\"\n%s\n\"\"\"", text),
	}
}

func imageSafetyRequest() request {
	return request{
		system: "You are an image moderator for a community marketplace. Images are uploaded with a post or a profile.\n\n" +
			safetyTaxonomy,
		instructions: append([]string{
			`"safe" is false when the image clearly falls into any category above.`,
		}, verdictInstructions...),
		temperature: safetyTemperature,
		prompt:      "Classify the attached image.",
	}
}

func quickRepliesRequest(history []moderation.ChatMessage) request {
	if len(history) > maxHistoryMessages {
		history = history[len(history)-maxHistoryMessages:]
	}
	var b strings.Builder
	for _, m := range history {
		b.WriteString(m.Sender)
		b.WriteString(": ")
		b.WriteString(m.Text)
		b.WriteByte('\n')
	}
	return request{
		system: "You suggest short replies for the next message in a chat between neighbours on a community marketplace.",
		instructions: []string{
			`You must produce only a JSON object that exactly matches this schema: {"replies": [<string>, <string>, <string>]}`,
			noProse,
			fmt.Sprintf("Exactly %d replies, each under 60 characters.", moderation.QuickReplyCount),
			"Friendly, polite and relevant to the last message.",
		},
		temperature: generativeTemperature,
		prompt:      "Conversation:\n" + b.String(),
	}
}

func postAnalysisRequest(title, description string) request {
	return request{
		system: "You review marketplace posts and help the author improve them.",
		instructions: []string{
			`You must produce only a JSON object that exactly matches this schema: {"summary": <string>, "tips": [<string>, ...], "score": <integer>}`,
			noProse,
			`"summary" is one sentence describing the post.`,
			`"tips" holds two to four concrete suggestions to make the post clearer or more attractive.`,
			`"score" rates the post quality from 0 to 100.`,
		},
		temperature: generativeTemperature,
		prompt:      postContent(title, description),
	}
}

func postExplanationRequest(title, description string) request {
	return request{
		system: "You explain marketplace posts to readers who are unfamiliar with the item or service.",
		instructions: []string{
			`You must produce only a JSON object that exactly matches this schema: {"summary": <string>, "context": <string>, "interestingFacts": [<string>, ...]}`,
			noProse,
			`"summary" is one or two sentences in plain language.`,
			`"context" explains what the item or service is typically used for.`,
			`"interestingFacts" holds up to three short facts; use an empty array when none apply.`,
		},
		temperature: generativeTemperature,
		prompt:      postContent(title, description),
	}
}

func postContent(title, description string) string {
	return fmt.Sprintf("Title: %s\nDescription: %s", title, description)
}
