// Package postprocess strips chat-model artifacts from a translation reply.
package postprocess

import (
	"regexp"
	"strings"
)

// Step rewrites a reply. Steps must return the input unchanged when they do
// not apply.
type Step func(string) string

// Pipeline runs steps in order and trims the result.
type Pipeline []Step

func (p Pipeline) Run(text string) string {
	for _, step := range p {
		text = step(text)
	}
	return strings.TrimSpace(text)
}

// Sentinel is the delimiter the prompt puts around the source text.
const Sentinel = "///"

// Default is applied when chatgpt/clean_output is on.
var Default = Pipeline{
	RemoveReasoning,
	RemoveLeadIn,
	UnwrapSentinel(Sentinel),
	RemoveQuotes,
}

// Clean runs the Default pipeline.
func Clean(text string) string {
	return Default.Run(text)
}

var (
	// RE2 has no backreferences, so each tag pair is spelled out.
	reReasoning = regexp.MustCompile(
		`(?is)<think>.*?</think>|<thinking>.*?</thinking>|<reasoning>.*?</reasoning>`,
	)
	// an opening tag left unclosed when the reply was cut off
	reReasoningOpen = regexp.MustCompile(`(?is)(?:<think>|<thinking>|<reasoning>).*$`)

	reLeadIns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^(?:certainly|sure|of course)[,.!]?\s+`),
		regexp.MustCompile(`(?i)^here(?:'s| is)(?: the| your)? (?:translated text|translation)(?: to [\p{L} -]+)?\s*:`),
		regexp.MustCompile(`(?i)^(?:translation|translated text)(?: \([^)]*\))?\s*:`),
	}
)

// RemoveReasoning drops <think>-style blocks some models emit.
func RemoveReasoning(text string) string {
	text = reReasoning.ReplaceAllString(text, "")
	text = reReasoningOpen.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// RemoveLeadIn drops a "Here is the translation:" style preface. A bare
// "Sure," is only removed when a labelled preface follows it.
func RemoveLeadIn(text string) string {
	text = strings.TrimSpace(text)
	rest := text
	if loc := reLeadIns[0].FindStringIndex(rest); loc != nil {
		rest = rest[loc[1]:]
	}
	for _, re := range reLeadIns[1:] {
		if loc := re.FindStringIndex(rest); loc != nil {
			return strings.TrimSpace(rest[loc[1]:])
		}
	}
	return text
}

// UnwrapSentinel strips sentinel delimiters the model echoed around its
// reply. Text that neither starts nor ends with the sentinel is left alone.
func UnwrapSentinel(sentinel string) Step {
	return func(text string) string {
		t := strings.TrimSpace(text)
		starts, ends := strings.HasPrefix(t, sentinel), strings.HasSuffix(t, sentinel)
		if !starts && !ends {
			return text
		}
		if starts {
			t = t[len(sentinel):]
		}
		if ends && len(t) >= len(sentinel) {
			t = strings.TrimSuffix(t, sentinel)
		}
		return strings.TrimSpace(t)
	}
}

var quotePairs = map[rune]rune{
	'"':      '"',
	'\'':     '\'',
	'\u00AB': '\u00BB', // « »
	'\u201C': '\u201D', // “ ”
	'\u2018': '\u2019', // ‘ ’
	'\u201E': '\u201C', // „ “
}

// RemoveQuotes strips one matching pair of quotes around the whole reply.
func RemoveQuotes(text string) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) < 2 {
		return text
	}
	if closing, ok := quotePairs[runes[0]]; ok && runes[len(runes)-1] == closing {
		inner := string(runes[1 : len(runes)-1])
		if !strings.ContainsRune(inner, runes[0]) {
			return strings.TrimSpace(inner)
		}
	}
	return text
}
