package detector

import (
	"sync"
	"testing"

	lingua "github.com/pemistahl/lingua-go"
)

func TestDetector_DetectCode(t *testing.T) {
	d := New()

	tests := []struct {
		name     string
		text     string
		wantCode string
		wantOK   bool
	}{
		{
			name:   "empty text",
			text:   "",
			wantOK: false,
		},
		{
			name:   "whitespace only",
			text:   "  \n\t",
			wantOK: false,
		},
		{
			name:     "english text",
			text:     "Hello, this is a test in English.",
			wantCode: "en",
			wantOK:   true,
		},
		{
			name:     "german text",
			text:     "Hallo, das ist ein Test auf Deutsch.",
			wantCode: "de",
			wantOK:   true,
		},
		{
			name:     "spanish text",
			text:     "Hola, esto es una prueba en español.",
			wantCode: "es",
			wantOK:   true,
		},
		{
			name:     "ukrainian text",
			text:     "Привіт, це тест українською мовою.",
			wantCode: "uk",
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := d.DetectCode(tt.text)
			if ok != tt.wantOK {
				t.Errorf("DetectCode(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
				return
			}
			if tt.wantOK && code != tt.wantCode {
				t.Errorf("DetectCode(%q) = %q, want %q", tt.text, code, tt.wantCode)
			}
		})
	}
}

func TestDetector_RestrictedLanguages(t *testing.T) {
	d := New(lingua.English, lingua.French)

	lang, ok := d.Detect("Bonjour, ceci est un test en français.")
	if !ok || lang != lingua.French {
		t.Errorf("expected French, got %v ok=%v", lang, ok)
	}
}

func TestDetector_ConcurrentFirstUse(t *testing.T) {
	d := New(lingua.English, lingua.German)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.DetectCode("Das ist ein deutscher Satz.")
		}()
	}
	wg.Wait()

	if code, ok := d.DetectCode("Das ist ein deutscher Satz."); !ok || code != "de" {
		t.Errorf("expected de, got %q ok=%v", code, ok)
	}
}
