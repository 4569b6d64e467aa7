package deepl

import (
	"context"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/valpere/simpletran/internal/config"
	"github.com/valpere/simpletran/internal/translator"
)

const Name = "deepl"

// Adapter is the translator.Adapter for DeepL.
type Adapter struct {
	client *Client
	logger *zap.Logger
}

func NewAdapter(client *Client, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{client: client, logger: logger}
}

// New wires builder, client and adapter over one settings source.
func New(settings SettingsSource, httpClient *resty.Client, logger *zap.Logger) *Adapter {
	return NewAdapter(NewClient(settings, NewParametersBuilder(settings), httpClient), logger)
}

func (a *Adapter) Name() string {
	return Name
}

func (a *Adapter) Translate(ctx context.Context, text string, scope config.Scope) (string, error) {
	resp, err := a.client.TranslateByScope(ctx, text, scope)
	if err != nil {
		a.logger.Error("DeepL translation failed", zap.String("scope", string(scope)), zap.Error(err))
		return "", translator.Failed(Name, "DeepL", err)
	}
	return resp.FirstText(), nil
}

func (a *Adapter) TranslateToLanguage(ctx context.Context, text, targetLang string) (string, error) {
	resp, err := a.client.TranslateToTargetLanguage(ctx, text, targetLang)
	if err != nil {
		a.logger.Error("DeepL translation failed", zap.String("target_lang", targetLang), zap.Error(err))
		return "", translator.Failed(Name, "DeepL", err)
	}
	return resp.FirstText(), nil
}
