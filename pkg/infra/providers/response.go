package providers

import "strings"

// CompletionResponse is a provider reply reduced to what callers read.
type CompletionResponse struct {
	ID       string
	Provider string
	Model    string
	Response string
	Usage    Usage
}

type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

func NewUsage(prompt, completion int64) Usage {
	return Usage{
		PromptTokens:     int(prompt),
		CompletionTokens: int(completion),
		TotalTokens:      int(prompt + completion),
	}
}

// Empty reports whether the reply carries no usable text.
func (r *CompletionResponse) Empty() bool {
	return r == nil || strings.TrimSpace(r.Response) == ""
}
