package translator

import (
	"context"

	"github.com/valpere/simpletran/internal/config"
)

// Settings is the part of the configuration the dispatcher reads.
type Settings interface {
	IsModuleEnabled(ctx context.Context, scope config.Scope) (bool, error)
	AIEngine(ctx context.Context, scope config.Scope) (string, error)
}

// Lookup finds the adapter registered for an engine key.
type Lookup interface {
	Get(engine string) (Adapter, bool)
}

// Dispatcher routes calls to the adapter of the configured engine. Results
// and errors from the adapter are returned unchanged.
type Dispatcher struct {
	settings Settings
	adapters Lookup
}

func NewDispatcher(settings Settings, adapters Lookup) *Dispatcher {
	return &Dispatcher{settings: settings, adapters: adapters}
}

// Translate translates text with the engine and target language configured
// for scope.
func (d *Dispatcher) Translate(ctx context.Context, text string, scope config.Scope) (string, error) {
	adapter, err := d.resolve(ctx, scope)
	if err != nil {
		return "", err
	}
	return adapter.Translate(ctx, text, scope)
}

// TranslateToLanguage translates text into targetLang using the default
// scope's engine.
func (d *Dispatcher) TranslateToLanguage(ctx context.Context, text, targetLang string) (string, error) {
	adapter, err := d.resolve(ctx, config.DefaultScope)
	if err != nil {
		return "", err
	}
	return adapter.TranslateToLanguage(ctx, text, targetLang)
}

// Do runs req through TranslateToLanguage when it names a target language
// and through Translate otherwise.
func (d *Dispatcher) Do(ctx context.Context, req Request) (string, error) {
	if req.TargetLang != "" {
		return d.TranslateToLanguage(ctx, req.Text, req.TargetLang)
	}
	return d.Translate(ctx, req.Text, req.Scope)
}

func (d *Dispatcher) resolve(ctx context.Context, scope config.Scope) (Adapter, error) {
	enabled, err := d.settings.IsModuleEnabled(ctx, scope)
	if err != nil {
		return nil, err
	}
	if !enabled {
		return nil, ErrNotEnabled
	}

	engine, err := d.settings.AIEngine(ctx, scope)
	if err != nil {
		return nil, err
	}
	adapter, ok := d.adapters.Get(engine)
	if !ok {
		return nil, &AdapterNotFoundError{Engine: engine}
	}
	return adapter, nil
}
