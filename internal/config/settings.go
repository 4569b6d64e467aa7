package config

import (
	"context"
	"strings"
	"time"
)

// DeeplSettings is everything one DeepL call needs, read in a single pass.
type DeeplSettings struct {
	APIDomain            string
	APIKey               string
	DefaultSourceLang    string
	DefaultTargetLang    string
	ModelType            string
	SplitSentences       string
	PreserveFormatting   bool
	Formality            string
	TagHandling          string
	OutlineDetection     bool
	NonSplittingTags     string
	SplittingTags        string
	IgnoreTags           string
	ShowBilledCharacters bool
	RequestTimeout       time.Duration
	StoreLocale          string
	LocaleTargets        map[string]string
}

// ChatGPTSettings is the per-call view of the chatgpt/* options.
type ChatGPTSettings struct {
	APIKey            string
	Endpoint          string
	Model             string
	Temperature       float64
	DefaultSourceLang string
	DefaultTargetLang string
	RequestTimeout    time.Duration
	CleanOutput       bool
	ProtectMarkup     bool
	DetectSourceLang  bool
	VerifyTargetLang  bool
}

// GoogleSettings is the per-call view of the google/* options.
type GoogleSettings struct {
	APIKey            string
	Credentials       string
	Endpoint          string
	DefaultSourceLang string
	DefaultTargetLang string
	Format            string
	RequestTimeout    time.Duration
}

// reader keeps the first error so settings can be read without an if after
// every line.
type reader struct {
	ctx   context.Context
	p     *Provider
	scope Scope
	err   error
}

func (r *reader) str(path string) string {
	if r.err != nil {
		return ""
	}
	v, err := r.p.String(r.ctx, path, r.scope)
	r.err = err
	return v
}

func (r *reader) flag(path string) bool {
	if r.err != nil {
		return false
	}
	v, err := r.p.Flag(r.ctx, path, r.scope)
	r.err = err
	return v
}

func (r *reader) secret(path string) string {
	if r.err != nil {
		return ""
	}
	v, err := r.p.Secret(r.ctx, path, r.scope)
	r.err = err
	return v
}

func (r *reader) timeout(path string) time.Duration {
	if r.err != nil {
		return 0
	}
	v, err := r.p.Timeout(r.ctx, path, r.scope)
	r.err = err
	return v
}

// DeeplSettings reads all deepl/* options for scope. The API key is read
// last so that a broken decryption key does not hide other config errors.
func (p *Provider) DeeplSettings(ctx context.Context, scope Scope) (DeeplSettings, error) {
	r := &reader{ctx: ctx, p: p, scope: scope}
	s := DeeplSettings{
		APIDomain:            r.str(PathDeeplAPIDomain),
		DefaultSourceLang:    r.str(PathDeeplDefaultSourceLang),
		DefaultTargetLang:    r.str(PathDeeplDefaultTargetLang),
		ModelType:            r.str(PathDeeplModelType),
		SplitSentences:       r.str(PathDeeplSplitSentences),
		PreserveFormatting:   r.flag(PathDeeplPreserveFormatting),
		Formality:            r.str(PathDeeplFormality),
		TagHandling:          r.str(PathDeeplTagHandling),
		OutlineDetection:     r.flag(PathDeeplOutlineDetection),
		NonSplittingTags:     r.str(PathDeeplNonSplittingTags),
		SplittingTags:        r.str(PathDeeplSplittingTags),
		IgnoreTags:           r.str(PathDeeplIgnoreTags),
		ShowBilledCharacters: r.flag(PathDeeplShowBilledCharacters),
		RequestTimeout:       r.timeout(PathDeeplRequestTimeout),
		StoreLocale:          r.str(PathStoreLocale),
	}
	table := r.str(PathDeeplLocaleTargets)
	if table == "" {
		table = DefaultLocaleTargets
	}
	s.LocaleTargets = ParseLocaleTargets(table)
	s.APIKey = r.secret(PathDeeplAPIKey)
	if r.err != nil {
		return DeeplSettings{}, r.err
	}
	return s, nil
}

// ChatGPTSettings reads all chatgpt/* options for scope, with defaults for
// endpoint, model and temperature.
func (p *Provider) ChatGPTSettings(ctx context.Context, scope Scope) (ChatGPTSettings, error) {
	r := &reader{ctx: ctx, p: p, scope: scope}
	s := ChatGPTSettings{
		DefaultSourceLang: r.str(PathChatGPTDefaultSourceLang),
		DefaultTargetLang: r.str(PathChatGPTDefaultTargetLang),
		RequestTimeout:    r.timeout(PathChatGPTRequestTimeout),
		CleanOutput:       r.flag(PathChatGPTCleanOutput),
		ProtectMarkup:     r.flag(PathChatGPTProtectMarkup),
		DetectSourceLang:  r.flag(PathChatGPTDetectSourceLang),
		VerifyTargetLang:  r.flag(PathChatGPTVerifyTargetLang),
	}
	if r.err != nil {
		return ChatGPTSettings{}, r.err
	}
	var err error
	if s.Endpoint, err = p.ChatGPTEndpoint(ctx, scope); err != nil {
		return ChatGPTSettings{}, err
	}
	if s.Model, err = p.ChatGPTModel(ctx, scope); err != nil {
		return ChatGPTSettings{}, err
	}
	if s.Temperature, err = p.ChatGPTTemperature(ctx, scope); err != nil {
		return ChatGPTSettings{}, err
	}
	if s.APIKey, err = p.ChatGPTAPIKey(ctx, scope); err != nil {
		return ChatGPTSettings{}, err
	}
	return s, nil
}

// GoogleSettings reads all google/* options for scope.
func (p *Provider) GoogleSettings(ctx context.Context, scope Scope) (GoogleSettings, error) {
	r := &reader{ctx: ctx, p: p, scope: scope}
	s := GoogleSettings{
		Credentials:       r.str(PathGoogleCredentials),
		Endpoint:          r.str(PathGoogleEndpoint),
		DefaultSourceLang: r.str(PathGoogleDefaultSourceLang),
		DefaultTargetLang: r.str(PathGoogleDefaultTargetLang),
		Format:            r.str(PathGoogleFormat),
		RequestTimeout:    r.timeout(PathGoogleRequestTimeout),
	}
	s.APIKey = r.secret(PathGoogleAPIKey)
	if r.err != nil {
		return GoogleSettings{}, r.err
	}
	return s, nil
}

// ParseLocaleTargets parses "en=EN-US,pt=PT-BR" into a lower-cased language
// to target-code table. Malformed pairs are skipped.
func ParseLocaleTargets(s string) map[string]string {
	out := make(map[string]string)
	for _, pair := range strings.Split(s, ",") {
		lang, target, ok := strings.Cut(strings.TrimSpace(pair), "=")
		lang = strings.ToLower(strings.TrimSpace(lang))
		target = strings.TrimSpace(target)
		if !ok || lang == "" || target == "" {
			continue
		}
		out[lang] = target
	}
	return out
}
