package postprocess

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "plain translation",
			input:    "  Hola mundo  ",
			expected: "Hola mundo",
		},
		{
			name:     "echoed sentinel",
			input:    "///Hola mundo///",
			expected: "Hola mundo",
		},
		{
			name:     "sentinel with padding",
			input:    "/// Hola ///\n",
			expected: "Hola",
		},
		{
			name:     "leading sentinel only",
			input:    "///Hola",
			expected: "Hola",
		},
		{
			name:     "lead-in",
			input:    "Here is the translation: Bonjour",
			expected: "Bonjour",
		},
		{
			name:     "lead-in with language",
			input:    "Here's the translation to Spanish: Hola",
			expected: "Hola",
		},
		{
			name:     "polite lead-in and sentinel",
			input:    "Sure, here is the translation: ///Hallo///",
			expected: "Hallo",
		},
		{
			name:     "bare label",
			input:    "Translation (ES): Hola",
			expected: "Hola",
		},
		{
			name:     "reasoning block",
			input:    "<think>The user wants Spanish.</think>\nHola",
			expected: "Hola",
		},
		{
			name:     "unclosed reasoning",
			input:    "Hola<thinking>still going",
			expected: "Hola",
		},
		{
			name:     "wrapped in quotes",
			input:    "\"Hola mundo\"",
			expected: "Hola mundo",
		},
		{
			name:     "guillemets",
			input:    "«Bonjour»",
			expected: "Bonjour",
		},
		{
			name:     "markup is kept",
			input:    "<p>Hola <b>mundo</b></p>",
			expected: "<p>Hola <b>mundo</b></p>",
		},
		{
			name:     "inner slashes are kept",
			input:    "Ver a/b///c",
			expected: "Ver a/b///c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.input); got != tt.expected {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRemoveLeadIn_KeepsContent(t *testing.T) {
	inputs := []string{
		"Sure thing, we ship worldwide.",
		"Translation services are available.",
		"Here is our store.",
	}
	for _, in := range inputs {
		if got := RemoveLeadIn(in); got != in {
			t.Errorf("RemoveLeadIn(%q) = %q, want unchanged", in, got)
		}
	}
}

func TestRemoveQuotes_MultipleQuoted(t *testing.T) {
	in := `"red" and "blue"`
	if got := RemoveQuotes(in); got != in {
		t.Errorf("RemoveQuotes(%q) = %q, want unchanged", in, got)
	}
}

func TestPipeline_Run(t *testing.T) {
	exclaim := func(s string) string { return s + "!" }
	p := Pipeline{UnwrapSentinel("##"), exclaim}

	if got := p.Run("##hi##"); got != "hi!" {
		t.Errorf("unexpected result %q", got)
	}
}
