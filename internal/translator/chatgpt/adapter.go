package chatgpt

import (
	"context"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/valpere/simpletran/internal/config"
	"github.com/valpere/simpletran/internal/detector"
	"github.com/valpere/simpletran/internal/placeholder"
	"github.com/valpere/simpletran/internal/postprocess"
	"github.com/valpere/simpletran/internal/translator"
	"github.com/valpere/simpletran/internal/validator"
)

const Name = "chatgpt"

// LanguageDetector guesses the ISO 639-1 code of a text.
type LanguageDetector interface {
	DetectCode(text string) (string, bool)
}

// Adapter is the translator.Adapter for ChatGPT.
type Adapter struct {
	settings SettingsSource
	prompts  PromptBuilder
	client   *Client
	detector LanguageDetector
	verifier *validator.Validator
	logger   *zap.Logger
}

type Option func(*Adapter)

// WithDetector replaces the language detector. nil disables source detection
// and target verification.
func WithDetector(d LanguageDetector) Option {
	return func(a *Adapter) { a.detector = d }
}

func NewAdapter(settings SettingsSource, client *Client, logger *zap.Logger, opts ...Option) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &Adapter{
		settings: settings,
		client:   client,
		detector: detector.New(),
		logger:   logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.detector != nil {
		a.verifier = validator.New(a.detector)
	}
	return a
}

// New wires client and adapter over one settings source.
func New(settings SettingsSource, httpClient *resty.Client, logger *zap.Logger, opts ...Option) *Adapter {
	return NewAdapter(settings, NewClient(settings, httpClient, logger), logger, opts...)
}

func (a *Adapter) Name() string {
	return Name
}

// Translate uses the source and target languages configured for scope.
func (a *Adapter) Translate(ctx context.Context, text string, scope config.Scope) (string, error) {
	s, err := a.settings.ChatGPTSettings(ctx, scope)
	if err != nil {
		return "", a.fail(err, zap.String("scope", string(scope)))
	}
	if s.DefaultTargetLang == "" {
		return "", a.fail(errTargetRequired(), zap.String("scope", string(scope)))
	}

	source := s.DefaultSourceLang
	if source == "" && s.DetectSourceLang && a.detector != nil {
		if code, ok := a.detector.DetectCode(text); ok {
			source = code
		}
	}
	return a.run(ctx, text, s.DefaultTargetLang, source, s, scope)
}

// TranslateToLanguage sends no source language; the remaining options come
// from the default scope.
func (a *Adapter) TranslateToLanguage(ctx context.Context, text, targetLang string) (string, error) {
	if targetLang == "" {
		return "", a.fail(errTargetRequired())
	}
	s, err := a.settings.ChatGPTSettings(ctx, config.DefaultScope)
	if err != nil {
		return "", a.fail(err, zap.String("target_lang", targetLang))
	}
	return a.run(ctx, text, targetLang, "", s, config.DefaultScope)
}

func (a *Adapter) run(ctx context.Context, text, target, source string, s config.ChatGPTSettings, scope config.Scope) (string, error) {
	input := text
	var hints []string
	var shield *placeholder.Shield
	if s.ProtectMarkup {
		shield = placeholder.Protect(text)
		if shield.Len() > 0 {
			input = shield.Text()
			hints = append(hints, placeholder.Hint)
		} else {
			shield = nil
		}
	}

	resp, err := a.client.SendRequest(ctx, a.prompts.Build(input, target, source, hints...), scope)
	if err != nil {
		return "", a.fail(err, zap.String("scope", string(scope)), zap.String("target_lang", target))
	}

	out := ExtractTranslation(resp)
	if s.CleanOutput {
		out = postprocess.Clean(out)
	}
	if shield != nil {
		if out, err = shield.Restore(out); err != nil {
			return "", a.fail(err, zap.String("target_lang", target))
		}
	}
	if s.VerifyTargetLang && a.verifier != nil {
		if err := a.verifier.Check(out, target); err != nil {
			return "", a.fail(err, zap.String("target_lang", target))
		}
	}
	return out, nil
}

func (a *Adapter) fail(err error, fields ...zap.Field) error {
	a.logger.Error("ChatGPT translation error", append(fields, zap.Error(err))...)
	return translator.Failed(Name, "ChatGPT", err)
}

func errTargetRequired() error {
	return &translator.ConfigError{
		Option:  config.PathChatGPTDefaultTargetLang,
		Message: "Target language is required for translation.",
	}
}
