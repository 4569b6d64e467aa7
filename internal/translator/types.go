package translator

import (
	"context"

	"github.com/valpere/simpletran/internal/config"
)

// Adapter is one translation engine. Implementations read their settings on
// every call and keep no per-call state, so one value serves concurrent
// callers.
type Adapter interface {
	Name() string
	Translate(ctx context.Context, text string, scope config.Scope) (string, error)
	TranslateToLanguage(ctx context.Context, text, targetLang string) (string, error)
}

// Request is one translation call. A non-empty TargetLang bypasses the
// scope's configured target.
type Request struct {
	Text       string       `json:"text"`
	Scope      config.Scope `json:"scope"`
	TargetLang string       `json:"target_lang,omitempty"`
}
