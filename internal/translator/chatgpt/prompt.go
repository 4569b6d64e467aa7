// Package chatgpt translates through an OpenAI-compatible chat completions
// endpoint.
package chatgpt

import "strings"

// Sentinel bounds the text to translate inside the user turn. Text containing
// the sentinel itself is sent as is.
const Sentinel = "///"

const systemPrompt = "You are a professional translator. Translate the text exactly as provided, maintaining any HTML or XML tags if present. Only return the translated text without any explanations or additional content. The text to be translated should be added between /// and ///. Do not include the /// in the translation."

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// PromptBuilder builds the two-turn translation prompt.
type PromptBuilder struct{}

// Build returns the system and user turns. The source clause is omitted when
// sourceLang is empty. hints are appended to the system turn.
func (PromptBuilder) Build(text, targetLang, sourceLang string, hints ...string) []Message {
	system := systemPrompt
	if len(hints) > 0 {
		system += " " + strings.Join(hints, " ")
	}
	return []Message{
		{Role: "system", Content: system},
		{Role: "user", Content: UserTurn(text, targetLang, sourceLang)},
	}
}

func UserTurn(text, targetLang, sourceLang string) string {
	var b strings.Builder
	b.WriteString("Translate the following text to ")
	b.WriteString(targetLang)
	if sourceLang != "" {
		b.WriteString(" from ")
		b.WriteString(sourceLang)
	}
	b.WriteString(": ")
	b.WriteString(Sentinel)
	b.WriteString(text)
	b.WriteString(Sentinel)
	return b.String()
}
