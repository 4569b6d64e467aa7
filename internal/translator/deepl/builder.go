package deepl

import (
	"context"
	"strings"

	"github.com/valpere/simpletran/internal/config"
	"github.com/valpere/simpletran/internal/translator"
)

// FallbackTargetLang is used when neither a target language nor a store
// locale is configured.
const FallbackTargetLang = "EN-US"

// SettingsSource is implemented by *config.Provider.
type SettingsSource interface {
	DeeplSettings(ctx context.Context, scope config.Scope) (config.DeeplSettings, error)
}

// ParametersBuilder turns deepl/* settings into request parameters.
type ParametersBuilder struct {
	settings SettingsSource
}

func NewParametersBuilder(settings SettingsSource) *ParametersBuilder {
	return &ParametersBuilder{settings: settings}
}

// ByScope builds the parameters for a scope driven call, auth_key included.
func (b *ParametersBuilder) ByScope(ctx context.Context, scope config.Scope) (*Params, error) {
	s, err := b.settings.DeeplSettings(ctx, scope)
	if err != nil {
		return nil, err
	}
	return b.ForScope(s)
}

// ForScope is ByScope over an already read settings snapshot.
func (b *ParametersBuilder) ForScope(s config.DeeplSettings) (*Params, error) {
	if s.APIKey == "" {
		return nil, errMissingKey()
	}
	return BuildParams(s, TargetLanguage(s), true), nil
}

// ByTargetLanguage builds the parameters for an explicit target language from
// the default scope. auth_key is left to the caller.
func (b *ParametersBuilder) ByTargetLanguage(ctx context.Context, targetLang string) (*Params, error) {
	s, err := b.settings.DeeplSettings(ctx, config.DefaultScope)
	if err != nil {
		return nil, err
	}
	return b.ForTargetLanguage(s, targetLang)
}

// ForTargetLanguage is ByTargetLanguage over an already read default scope
// snapshot. An empty targetLang is a configuration error.
func (b *ParametersBuilder) ForTargetLanguage(s config.DeeplSettings, targetLang string) (*Params, error) {
	if targetLang == "" {
		return nil, errTargetRequired()
	}
	return BuildParams(s, targetLang, false), nil
}

// BuildParams is the pure core of the builder. Optional fields are only added
// when set, and the XML options only when tag handling is "xml".
func BuildParams(s config.DeeplSettings, targetLang string, withKey bool) *Params {
	p := NewParams()
	if withKey {
		p.Set("auth_key", s.APIKey)
	}
	setIf(p, "source_lang", s.DefaultSourceLang)
	setIf(p, "target_lang", targetLang)
	setIf(p, "model", s.ModelType)
	setIf(p, "split_sentences", s.SplitSentences)
	if s.PreserveFormatting {
		p.Set("preserve_formatting", "1")
	}
	if s.Formality != "default" {
		setIf(p, "formality", s.Formality)
	}
	setIf(p, "tag_handling", s.TagHandling)
	if s.TagHandling == "xml" {
		if s.OutlineDetection {
			p.Set("outline_detection", "1")
		}
		setIf(p, "non_splitting_tags", s.NonSplittingTags)
		setIf(p, "splitting_tags", s.SplittingTags)
		setIf(p, "ignore_tags", s.IgnoreTags)
	}
	if s.ShowBilledCharacters {
		p.Set("show_billed_characters", "1")
	}
	return p
}

// TargetLanguage returns the configured default target, or one derived from
// the store locale through the locale table.
func TargetLanguage(s config.DeeplSettings) string {
	if s.DefaultTargetLang != "" {
		return s.DefaultTargetLang
	}
	return LocaleToTarget(s.StoreLocale, s.LocaleTargets)
}

// LocaleToTarget maps a locale such as "pt_BR" to a DeepL target code. The
// language subtag is looked up in table; unknown languages are upper-cased.
func LocaleToTarget(locale string, table map[string]string) string {
	lang, _, _ := strings.Cut(strings.ReplaceAll(strings.TrimSpace(locale), "-", "_"), "_")
	lang = strings.ToLower(lang)
	if lang == "" {
		return FallbackTargetLang
	}
	if target, ok := table[lang]; ok {
		return target
	}
	return strings.ToUpper(lang)
}

func setIf(p *Params, key, value string) {
	if value != "" {
		p.Set(key, value)
	}
}

func errTargetRequired() error {
	return &translator.ConfigError{
		Option:  config.PathDeeplDefaultTargetLang,
		Message: "Target language is required for translation.",
	}
}

func errMissingKey() error {
	return &translator.ConfigError{Option: config.PathDeeplAPIKey, Message: "Missing DeepL API key"}
}
