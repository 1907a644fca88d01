package providers

import (
	"encoding/base64"
	"strings"
)

const DefaultMaxTokens = 1024

func FormatInstructions(instr []string) string {
	if len(instr) == 0 {
		return "[Instructions]\n"
	}

	var b strings.Builder
	b.WriteString("[Instructions]\n")
	for _, rule := range instr {
		if strings.TrimSpace(rule) == "" {
			continue
		}
		b.WriteString("- ")
		b.WriteString(rule)
		b.WriteByte('\n')
	}
	return b.String()
}

// jsonOnlyInstruction is added for providers without a native JSON mode.
const jsonOnlyInstruction = "Respond with a single JSON object and nothing else."

// SystemText merges the system prompt and the formatted instructions into the
// single system message used by providers that take one.
func (c *Config) SystemText(nativeJSON bool) string {
	var parts []string
	if s := strings.TrimSpace(c.SystemPrompt); s != "" {
		parts = append(parts, s)
	}
	instructions := c.Instructions
	if c.JSONOutput && !nativeJSON {
		instructions = append(append([]string(nil), instructions...), jsonOnlyInstruction)
	}
	if len(instructions) > 0 {
		parts = append(parts, strings.TrimRight(FormatInstructions(instructions), "\n"))
	}
	return strings.Join(parts, "\n\n")
}

// StripCodeFence removes a surrounding markdown code fence from a model reply.
func StripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```")
	if nl := strings.IndexByte(text, '\n'); nl >= 0 && !strings.ContainsAny(text[:nl], "{[") {
		text = text[nl+1:]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

func (a Attachment) Base64() string {
	return base64.StdEncoding.EncodeToString(a.Data)
}

func (a Attachment) DataURL() string {
	return "data:" + a.MIMEType + ";base64," + a.Base64()
}

func MaxTokensOrDefault(n int) int {
	if n <= 0 {
		return DefaultMaxTokens
	}
	return n
}
