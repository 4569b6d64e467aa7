package google

import (
	"context"
	"errors"
	"testing"

	translate "cloud.google.com/go/translate"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/valpere/simpletran/internal/config"
	"github.com/valpere/simpletran/internal/translator"
)

type fakeSettings struct {
	byScope map[config.Scope]config.GoogleSettings
	err     error
	scopes  []config.Scope
}

func (f *fakeSettings) GoogleSettings(_ context.Context, scope config.Scope) (config.GoogleSettings, error) {
	f.scopes = append(f.scopes, scope)
	return f.byScope[scope], f.err
}

func TestAdapter_Translate_MissingTarget(t *testing.T) {
	a := New(&fakeSettings{byScope: map[config.Scope]config.GoogleSettings{
		"1": {APIKey: "K"},
	}}, zap.NewNop())

	_, err := a.Translate(context.Background(), "Hello", "1")
	var ce *translator.ConfigError
	if !errors.As(err, &ce) || ce.Option != config.PathGoogleDefaultTargetLang {
		t.Fatalf("expected target ConfigError, got %v", err)
	}
	var te *translator.Error
	if !errors.As(err, &te) || te.Engine != Name {
		t.Errorf("expected google translator.Error, got %v", err)
	}
}

func TestAdapter_Translate_InvalidLanguage(t *testing.T) {
	a := New(&fakeSettings{byScope: map[config.Scope]config.GoogleSettings{
		"1": {APIKey: "K", DefaultTargetLang: "not a tag!"},
	}}, zap.NewNop())

	if _, err := a.Translate(context.Background(), "Hello", "1"); err == nil {
		t.Fatal("expected invalid target error")
	}
}

func TestAdapter_TranslateToLanguage_DefaultScope(t *testing.T) {
	settings := &fakeSettings{byScope: map[config.Scope]config.GoogleSettings{
		config.DefaultScope: {APIKey: "K", Format: "markdown"},
	}}
	a := New(settings, zap.NewNop())

	_, err := a.TranslateToLanguage(context.Background(), "Hello", "fr")
	var ce *translator.ConfigError
	if !errors.As(err, &ce) || ce.Option != config.PathGoogleFormat {
		t.Fatalf("expected format ConfigError, got %v", err)
	}
	if len(settings.scopes) != 1 || settings.scopes[0] != config.DefaultScope {
		t.Errorf("expected default scope read, got %v", settings.scopes)
	}
}

func TestAdapter_SettingsError(t *testing.T) {
	boom := errors.New("boom")
	a := New(&fakeSettings{err: boom}, zap.NewNop())

	if _, err := a.Translate(context.Background(), "Hello", "1"); !errors.Is(err, boom) {
		t.Errorf("expected settings error, got %v", err)
	}
}

func TestTranslateOptions(t *testing.T) {
	tests := []struct {
		name   string
		source string
		format string
		want   *translate.Options
	}{
		{name: "nothing set", want: nil},
		{name: "auto source", source: "auto", want: nil},
		{name: "source", source: "en", want: &translate.Options{Source: language.English}},
		{name: "html", format: "HTML", want: &translate.Options{Format: translate.HTML}},
		{name: "text and source", source: "de", format: "text", want: &translate.Options{Source: language.German, Format: translate.Text}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TranslateOptions(tt.source, tt.format)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
			if got != nil && (got.Source.String() != tt.want.Source.String() || got.Format != tt.want.Format) {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}

	if _, err := TranslateOptions("??", ""); err == nil {
		t.Error("expected invalid source error")
	}
}

func TestClientOptions(t *testing.T) {
	tests := []struct {
		name string
		s    config.GoogleSettings
		want int
	}{
		{name: "application default", want: 0},
		{name: "key wins over credentials", s: config.GoogleSettings{APIKey: "K", Credentials: "/tmp/sa.json"}, want: 1},
		{name: "credentials and endpoint", s: config.GoogleSettings{Credentials: "/tmp/sa.json", Endpoint: "https://example.test/"}, want: 2},
	}
	for _, tt := range tests {
		if got := len(ClientOptions(tt.s)); got != tt.want {
			t.Errorf("%s: expected %d options, got %d", tt.name, tt.want, got)
		}
	}
}
