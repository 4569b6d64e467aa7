package translator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/valpere/simpletran/internal/config"
)

type stubAdapter struct {
	name       string
	result     string
	err        error
	lastText   string
	lastScope  config.Scope
	lastLang   string
	translated int
	toLanguage int
}

func (a *stubAdapter) Name() string { return a.name }

func (a *stubAdapter) Translate(_ context.Context, text string, scope config.Scope) (string, error) {
	a.translated++
	a.lastText, a.lastScope = text, scope
	return a.result, a.err
}

func (a *stubAdapter) TranslateToLanguage(_ context.Context, text, lang string) (string, error) {
	a.toLanguage++
	a.lastText, a.lastLang = text, lang
	return a.result, a.err
}

type countingLookup struct {
	inner Lookup
	calls int
}

func (l *countingLookup) Get(engine string) (Adapter, bool) {
	l.calls++
	return l.inner.Get(engine)
}

func newTestDispatcher(values config.MapStore, adapters ...Adapter) (*Dispatcher, *countingLookup) {
	lookup := &countingLookup{inner: NewRegistry(adapters...)}
	return NewDispatcher(config.NewProvider(values, nil), lookup), lookup
}

func TestDispatcher_Translate(t *testing.T) {
	deepl := &stubAdapter{name: "deepl", result: "Hola"}
	d, _ := newTestDispatcher(config.MapStore{
		"0": {config.PathEnable: "1", config.PathAIEngine: "deepl"},
	}, deepl)

	got, err := d.Translate(context.Background(), "Hello", "0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Hola" {
		t.Errorf("expected 'Hola', got %q", got)
	}
	if deepl.lastText != "Hello" || deepl.lastScope != "0" {
		t.Errorf("unexpected adapter call: %+v", deepl)
	}
}

func TestDispatcher_Translate_Disabled(t *testing.T) {
	for _, enable := range []string{"", "0", "false"} {
		deepl := &stubAdapter{name: "deepl"}
		d, lookup := newTestDispatcher(config.MapStore{
			"0": {config.PathEnable: enable, config.PathAIEngine: "deepl"},
		}, deepl)

		_, err := d.Translate(context.Background(), "x", "0")
		if !errors.Is(err, ErrNotEnabled) {
			t.Errorf("enable=%q: expected ErrNotEnabled, got %v", enable, err)
		}
		if err != nil && !strings.Contains(err.Error(), "not enabled") {
			t.Errorf("expected 'not enabled' message, got %q", err.Error())
		}
		if lookup.calls != 0 {
			t.Errorf("enable=%q: expected no registry lookup, got %d", enable, lookup.calls)
		}
		if deepl.translated != 0 {
			t.Errorf("enable=%q: adapter was called", enable)
		}
	}
}

func TestDispatcher_Translate_UnknownEngine(t *testing.T) {
	for _, engine := range []string{"bing", "", "DeepL"} {
		d, _ := newTestDispatcher(config.MapStore{
			config.DefaultScope: {config.PathEnable: "1"},
			"3":                 {config.PathAIEngine: engine},
		}, &stubAdapter{name: "deepl"})

		_, err := d.Translate(context.Background(), "x", "3")
		if !errors.Is(err, ErrAdapterNotFound) {
			t.Fatalf("engine %q: expected ErrAdapterNotFound, got %v", engine, err)
		}
		var nf *AdapterNotFoundError
		if !errors.As(err, &nf) || nf.Engine != engine {
			t.Errorf("engine %q: expected error naming the key, got %v", engine, err)
		}
		if !strings.Contains(err.Error(), "'"+engine+"'") {
			t.Errorf("engine %q: message does not name key: %q", engine, err.Error())
		}
	}
}

func TestDispatcher_Translate_AdapterErrorVerbatim(t *testing.T) {
	failure := Failed("chatgpt", "ChatGPT", errors.New("boom"))
	d, _ := newTestDispatcher(config.MapStore{
		config.DefaultScope: {config.PathEnable: "1", config.PathAIEngine: "chatgpt"},
	}, &stubAdapter{name: "chatgpt", err: failure})

	_, err := d.Translate(context.Background(), "x", "1")
	if err != failure {
		t.Errorf("expected adapter error unchanged, got %v", err)
	}
}

func TestDispatcher_TranslateToLanguage_UsesDefaultScope(t *testing.T) {
	chatgpt := &stubAdapter{name: "chatgpt", result: "Bonjour"}
	deepl := &stubAdapter{name: "deepl"}
	d, _ := newTestDispatcher(config.MapStore{
		config.DefaultScope: {config.PathEnable: "1", config.PathAIEngine: "chatgpt"},
		"1":                 {config.PathEnable: "0", config.PathAIEngine: "deepl"},
	}, chatgpt, deepl)

	got, err := d.TranslateToLanguage(context.Background(), "Hello", "FR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Bonjour" || chatgpt.lastLang != "FR" {
		t.Errorf("unexpected result %q, adapter %+v", got, chatgpt)
	}
	if deepl.toLanguage != 0 {
		t.Error("store scoped engine should not be used")
	}
}

func TestDispatcher_TranslateToLanguage_Disabled(t *testing.T) {
	d, lookup := newTestDispatcher(config.MapStore{}, &stubAdapter{name: "deepl"})

	if _, err := d.TranslateToLanguage(context.Background(), "x", "DE"); !errors.Is(err, ErrNotEnabled) {
		t.Errorf("expected ErrNotEnabled, got %v", err)
	}
	if lookup.calls != 0 {
		t.Errorf("expected no registry lookup, got %d", lookup.calls)
	}
}

func TestDispatcher_Do(t *testing.T) {
	deepl := &stubAdapter{name: "deepl", result: "ok"}
	d, _ := newTestDispatcher(config.MapStore{
		config.DefaultScope: {config.PathEnable: "1", config.PathAIEngine: "deepl"},
	}, deepl)
	ctx := context.Background()

	if _, err := d.Do(ctx, Request{Text: "a", Scope: "2"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deepl.translated != 1 || deepl.lastScope != "2" {
		t.Errorf("expected scope driven call, got %+v", deepl)
	}

	if _, err := d.Do(ctx, Request{Text: "b", Scope: "2", TargetLang: "IT"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deepl.toLanguage != 1 || deepl.lastLang != "IT" {
		t.Errorf("expected explicit language call, got %+v", deepl)
	}
}

func TestDispatcher_SettingsError(t *testing.T) {
	boom := errors.New("db down")
	d := NewDispatcher(errSettings{err: boom}, NewRegistry())

	if _, err := d.Translate(context.Background(), "x", "1"); !errors.Is(err, boom) {
		t.Errorf("expected settings error, got %v", err)
	}
}

type errSettings struct{ err error }

func (s errSettings) IsModuleEnabled(context.Context, config.Scope) (bool, error) {
	return false, s.err
}

func (s errSettings) AIEngine(context.Context, config.Scope) (string, error) {
	return "", s.err
}

func TestRegistry(t *testing.T) {
	r := NewRegistry(&stubAdapter{name: "deepl"}, &stubAdapter{name: "chatgpt"})

	if _, ok := r.Get("deepl"); !ok {
		t.Error("expected deepl adapter")
	}
	if _, ok := r.Get("google"); ok {
		t.Error("expected no google adapter")
	}
	engines := r.Engines()
	if len(engines) != 2 || engines[0] != "chatgpt" || engines[1] != "deepl" {
		t.Errorf("unexpected engines: %v", engines)
	}
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate adapter")
		}
	}()
	NewRegistry(&stubAdapter{name: "deepl"}, &stubAdapter{name: "deepl"})
}

func TestError_Unwrap(t *testing.T) {
	cause := &ConfigError{Option: config.PathDeeplAPIKey, Message: "Missing DeepL API key"}
	err := Failed("deepl", "DeepL", cause)

	if err.Error() != "DeepL translation failed: Missing DeepL API key" {
		t.Errorf("unexpected message: %q", err.Error())
	}
	var ce *ConfigError
	if !errors.As(err, &ce) || ce.Option != config.PathDeeplAPIKey {
		t.Errorf("expected ConfigError cause, got %v", err)
	}
}
