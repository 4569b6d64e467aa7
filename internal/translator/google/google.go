// Package google translates through Google Cloud Translation (v2 basic).
package google

import (
	"context"
	"errors"
	"fmt"
	"strings"

	translate "cloud.google.com/go/translate"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"google.golang.org/api/option"

	"github.com/valpere/simpletran/internal/config"
	"github.com/valpere/simpletran/internal/translator"
)

const Name = "google"

var errNoTranslation = errors.New("no translation returned")

// SettingsSource is implemented by *config.Provider.
type SettingsSource interface {
	GoogleSettings(ctx context.Context, scope config.Scope) (config.GoogleSettings, error)
}

// Adapter is the translator.Adapter for Google. A client is created per call
// since key and credentials may differ between scopes.
type Adapter struct {
	settings SettingsSource
	logger   *zap.Logger
}

func New(settings SettingsSource, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{settings: settings, logger: logger}
}

func (a *Adapter) Name() string {
	return Name
}

func (a *Adapter) Translate(ctx context.Context, text string, scope config.Scope) (string, error) {
	s, err := a.settings.GoogleSettings(ctx, scope)
	if err != nil {
		return "", a.fail(err, zap.String("scope", string(scope)))
	}
	if s.DefaultTargetLang == "" {
		return "", a.fail(&translator.ConfigError{
			Option:  config.PathGoogleDefaultTargetLang,
			Message: "Missing Google target language",
		}, zap.String("scope", string(scope)))
	}
	return a.translate(ctx, text, s.DefaultTargetLang, s.DefaultSourceLang, s)
}

// TranslateToLanguage lets Google detect the source; the remaining options
// come from the default scope.
func (a *Adapter) TranslateToLanguage(ctx context.Context, text, targetLang string) (string, error) {
	s, err := a.settings.GoogleSettings(ctx, config.DefaultScope)
	if err != nil {
		return "", a.fail(err, zap.String("target_lang", targetLang))
	}
	return a.translate(ctx, text, targetLang, "", s)
}

func (a *Adapter) translate(ctx context.Context, text, target, source string, s config.GoogleSettings) (string, error) {
	targetTag, err := language.Parse(target)
	if err != nil {
		return "", a.fail(fmt.Errorf("invalid target language %q: %w", target, err))
	}
	opts, err := TranslateOptions(source, s.Format)
	if err != nil {
		return "", a.fail(err)
	}

	timeout := s.RequestTimeout
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := translate.NewClient(ctx, ClientOptions(s)...)
	if err != nil {
		return "", a.fail(fmt.Errorf("failed to create client: %w", err))
	}
	defer client.Close()

	translations, err := client.Translate(ctx, []string{text}, targetTag, opts)
	if err != nil {
		return "", a.fail(err, zap.String("target_lang", target))
	}
	if len(translations) == 0 {
		return "", a.fail(errNoTranslation, zap.String("target_lang", target))
	}
	return translations[0].Text, nil
}

// ClientOptions maps the google/* settings to client options. An API key
// takes precedence over a credentials file; with neither, application
// default credentials apply.
func ClientOptions(s config.GoogleSettings) []option.ClientOption {
	var opts []option.ClientOption
	switch {
	case s.APIKey != "":
		opts = append(opts, option.WithAPIKey(s.APIKey))
	case s.Credentials != "":
		opts = append(opts, option.WithCredentialsFile(s.Credentials))
	}
	if s.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(s.Endpoint))
	}
	return opts
}

// TranslateOptions returns nil when Google should detect the source and use
// its default format.
func TranslateOptions(source, format string) (*translate.Options, error) {
	var opts translate.Options
	set := false
	if source != "" && !strings.EqualFold(source, "auto") {
		tag, err := language.Parse(source)
		if err != nil {
			return nil, fmt.Errorf("invalid source language %q: %w", source, err)
		}
		opts.Source = tag
		set = true
	}
	switch strings.ToLower(format) {
	case "":
	case "html":
		opts.Format = translate.HTML
		set = true
	case "text":
		opts.Format = translate.Text
		set = true
	default:
		return nil, &translator.ConfigError{
			Option:  config.PathGoogleFormat,
			Message: fmt.Sprintf("Unsupported Google format %q", format),
		}
	}
	if !set {
		return nil, nil
	}
	return &opts, nil
}

func (a *Adapter) fail(err error, fields ...zap.Field) error {
	a.logger.Error("Google translation error", append(fields, zap.Error(err))...)
	return translator.Failed(Name, "Google", err)
}
