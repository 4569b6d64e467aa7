// Package placeholder shields markup from an LLM translator. Tags, template
// directives and code are swapped for numbered [PHn] markers before the
// prompt is built and put back once the reply arrives.
package placeholder

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// fenced code first so inline spans inside it are not split
	reFencedCode = regexp.MustCompile("(?s)```.*?```")
	reInlineCode = regexp.MustCompile("`[^`\n]+`")

	// CMS template directives such as {{media url="x.png"}} or {{/if}}
	reDirective = regexp.MustCompile(`\{\{[^{}]*\}\}`)

	reTag    = regexp.MustCompile(`</?[A-Za-z][^<>]*>`)
	reEntity = regexp.MustCompile(`&(?:[A-Za-z]+|#[0-9]+|#x[0-9A-Fa-f]+);`)

	reMarker = regexp.MustCompile(`\[PH(\d+)\]`)
)

// Hint is appended to the system prompt when markup is shielded.
const Hint = "The text contains placeholders of the form [PH0], [PH1] and so on. Keep every placeholder exactly as written and in a sensible position; never translate or drop them."

// MissingError lists markers the translation dropped.
type MissingError struct {
	Indices []int
}

func (e *MissingError) Error() string {
	parts := make([]string, len(e.Indices))
	for i, idx := range e.Indices {
		parts[i] = fmt.Sprintf("[PH%d]", idx)
	}
	return "translation lost placeholders " + strings.Join(parts, ", ")
}

// Shield holds the protected text and the originals its markers stand for.
type Shield struct {
	text      string
	originals []string
}

// Protect replaces markup in text with markers, in order of appearance
// within each pattern class.
func Protect(text string) *Shield {
	s := &Shield{}
	replace := func(match string) string {
		marker := "[PH" + strconv.Itoa(len(s.originals)) + "]"
		s.originals = append(s.originals, match)
		return marker
	}
	for _, re := range []*regexp.Regexp{reFencedCode, reInlineCode, reDirective, reTag, reEntity} {
		text = re.ReplaceAllStringFunc(text, replace)
	}
	s.text = text
	return s
}

// Text is the shielded text to send for translation.
func (s *Shield) Text() string {
	return s.text
}

// Len is the number of markers created.
func (s *Shield) Len() int {
	return len(s.originals)
}

// Missing returns the indices of markers absent from translated.
func (s *Shield) Missing(translated string) []int {
	var missing []int
	for i := range s.originals {
		if !strings.Contains(translated, "[PH"+strconv.Itoa(i)+"]") {
			missing = append(missing, i)
		}
	}
	return missing
}

// Restore puts the originals back into translated. It fails with a
// *MissingError when the translation dropped any marker; unknown indices are
// left untouched.
func (s *Shield) Restore(translated string) (string, error) {
	if missing := s.Missing(translated); len(missing) > 0 {
		return "", &MissingError{Indices: missing}
	}
	return reMarker.ReplaceAllStringFunc(translated, func(m string) string {
		idx, err := strconv.Atoi(reMarker.FindStringSubmatch(m)[1])
		if err != nil || idx >= len(s.originals) {
			return m
		}
		return s.originals[idx]
	}), nil
}
