// Package validator checks that a translation came back in the requested
// language.
package validator

import (
	"fmt"
	"strings"
)

// minValidationLength is the rune count below which detection is too
// unreliable to reject a reply.
const minValidationLength = 20

// Detector is implemented by *detector.Detector.
type Detector interface {
	DetectCode(text string) (string, bool)
}

// MismatchError reports a reply detected in another language.
type MismatchError struct {
	Expected string
	Detected string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("translation is in %s, expected %s", e.Detected, e.Expected)
}

type Validator struct {
	det Detector
}

func New(det Detector) *Validator {
	return &Validator{det: det}
}

// Check returns nil when translated appears to be written in targetLang.
// Empty or short texts, undetectable languages and targets that do not reduce
// to an ISO 639-1 code pass.
func (v *Validator) Check(translated, targetLang string) error {
	want, ok := BaseCode(targetLang)
	if !ok {
		return nil
	}

	text := strings.TrimSpace(translated)
	if len([]rune(text)) < minValidationLength {
		return nil
	}

	got, ok := v.det.DetectCode(text)
	if !ok {
		return nil
	}
	if got != want {
		return &MismatchError{Expected: want, Detected: got}
	}
	return nil
}

// BaseCode reduces a target such as "EN-US", "pt_BR" or "de" to its lower
// case two-letter language code. "nb" is reported as "no".
func BaseCode(target string) (string, bool) {
	lang := strings.ToLower(strings.TrimSpace(target))
	if i := strings.IndexAny(lang, "-_"); i >= 0 {
		lang = lang[:i]
	}
	if len(lang) != 2 || lang[0] < 'a' || lang[0] > 'z' || lang[1] < 'a' || lang[1] > 'z' {
		return "", false
	}
	if lang == "nb" {
		lang = "no"
	}
	return lang, true
}
