package moderation

// ChatMessage is one entry of the conversation used for quick replies.
type ChatMessage struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

const QuickReplyCount = 3

type PostAnalysis struct {
	Summary string   `json:"summary"`
	Tips    []string `json:"tips"`
	Score   int      `json:"score"`
}

type PostExplanation struct {
	Summary          string   `json:"summary"`
	Context          string   `json:"context"`
	InterestingFacts []string `json:"interestingFacts"`
}
