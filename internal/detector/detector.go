// Package detector guesses the source language of a text for engines that
// translate better with an explicit "from" language.
package detector

import (
	"strings"
	"sync"

	lingua "github.com/pemistahl/lingua-go"
)

// Languages are the source languages offered for the ChatGPT engine.
var Languages = []lingua.Language{
	lingua.English, lingua.Spanish, lingua.French, lingua.German,
	lingua.Italian, lingua.Portuguese, lingua.Dutch, lingua.Russian,
	lingua.Japanese, lingua.Korean, lingua.Chinese, lingua.Arabic,
	lingua.Hindi, lingua.Turkish, lingua.Polish, lingua.Vietnamese,
	lingua.Thai, lingua.Indonesian, lingua.Swedish, lingua.Danish,
	lingua.Finnish, lingua.Bokmal, lingua.Czech, lingua.Greek,
	lingua.Hebrew, lingua.Romanian, lingua.Hungarian, lingua.Ukrainian,
}

// Detector builds its language models on first use. It is safe for
// concurrent use.
type Detector struct {
	languages []lingua.Language

	once     sync.Once
	detector lingua.LanguageDetector
}

// New returns a detector over languages, or over Languages when none are
// given.
func New(languages ...lingua.Language) *Detector {
	if len(languages) == 0 {
		languages = Languages
	}
	return &Detector{languages: languages}
}

func (d *Detector) build() lingua.LanguageDetector {
	d.once.Do(func() {
		d.detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(d.languages...).
			Build()
	})
	return d.detector
}

func (d *Detector) Detect(text string) (lingua.Language, bool) {
	if strings.TrimSpace(text) == "" {
		return lingua.Unknown, false
	}
	return d.build().DetectLanguageOf(text)
}

// DetectCode returns the lower-case ISO 639-1 code of text, for example "de".
// Norwegian Bokmål is reported as "no".
func (d *Detector) DetectCode(text string) (string, bool) {
	lang, ok := d.Detect(text)
	if !ok {
		return "", false
	}
	if lang == lingua.Bokmal {
		return "no", true
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}
