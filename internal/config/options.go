package config

import (
	"fmt"
	"strings"
)

// Option is one selectable value of an enumerated setting.
type Option struct {
	Value string
	Label string
}

var optionTables = map[string][]Option{
	PathAIEngine: {
		{Value: "deepl", Label: "DeepL"},
		{Value: "chatgpt", Label: "ChatGPT"},
		{Value: "google", Label: "Google Cloud Translation"},
	},
	PathDeeplAPIDomain: {
		{Value: "api.deepl.com", Label: "DeepL API Pro (api.deepl.com)"},
		{Value: "api-free.deepl.com", Label: "DeepL API Free (api-free.deepl.com)"},
	},
	PathDeeplModelType: {
		{Value: "", Label: "Default"},
		{Value: "base", Label: "Base (Faster)"},
		{Value: "accurate", Label: "Accurate (Higher quality)"},
	},
	PathDeeplSplitSentences: {
		{Value: "1", Label: "Split on punctuation and newlines"},
		{Value: "0", Label: "No splitting"},
		{Value: "nonewlines", Label: "Split on punctuation only"},
	},
	PathDeeplFormality: {
		{Value: "default", Label: "Default"},
		{Value: "more", Label: "More Formal"},
		{Value: "less", Label: "Less Formal"},
		{Value: "prefer_more", Label: "Prefer More Formal"},
		{Value: "prefer_less", Label: "Prefer Less Formal"},
	},
	PathDeeplTagHandling: {
		{Value: "", Label: "None"},
		{Value: "xml", Label: "XML"},
		{Value: "html", Label: "HTML"},
	},
	PathChatGPTModel: {
		{Value: "gpt-4", Label: "GPT-4"},
		{Value: "gpt-4-turbo-preview", Label: "GPT-4 Turbo"},
		{Value: "gpt-3.5-turbo", Label: "GPT-3.5 Turbo"},
	},
	PathGoogleFormat: {
		{Value: "text", Label: "Plain text"},
		{Value: "html", Label: "HTML"},
	},
}

// Options returns the allowed values for an enumerated setting, or nil when
// the setting accepts free-form input.
func Options(path string) []Option {
	return optionTables[path]
}

// ValidateValue checks value against the option table of path. Free-form
// settings always pass. ChatGPT models are free-form in practice, so the
// table there is advisory only.
func ValidateValue(path, value string) error {
	opts := Options(path)
	if len(opts) == 0 || path == PathChatGPTModel {
		return nil
	}
	allowed := make([]string, 0, len(opts))
	for _, o := range opts {
		if o.Value == value {
			return nil
		}
		allowed = append(allowed, fmt.Sprintf("%q", o.Value))
	}
	return fmt.Errorf("invalid value %q for %s (allowed: %s)", value, path, strings.Join(allowed, ", "))
}
