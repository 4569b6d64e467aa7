package placeholder_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/valpere/simpletran/internal/placeholder"
)

func TestProtect_NoMarkup(t *testing.T) {
	s := placeholder.Protect("Hello, world!")
	if s.Text() != "Hello, world!" {
		t.Errorf("expected unchanged text, got %q", s.Text())
	}
	if s.Len() != 0 {
		t.Errorf("expected 0 markers, got %d", s.Len())
	}
}

func TestProtect_Markup(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		markers int
		gone    []string
	}{
		{"html tags", "<p>Hello <b>world</b></p>", 4, []string{"<p>", "<b>", "</b>", "</p>"}},
		{"self closing", "Line<br/>next", 1, []string{"<br/>"}},
		{"directive", `See {{media url="a.png"}} here`, 1, []string{"{{media"}},
		{"entity", "Fish&nbsp;&amp;&#160;chips", 3, []string{"&nbsp;", "&amp;", "&#160;"}},
		{"inline code", "Use `fmt.Println` to print.", 1, []string{"`fmt.Println`"}},
		{"fenced code", "Before\n```go\nx := `a`\n```\nAfter", 1, []string{"```"}},
		{"comparison is not a tag", "a < b and c > d", 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := placeholder.Protect(tt.text)
			if s.Len() != tt.markers {
				t.Fatalf("expected %d markers, got %d in %q", tt.markers, s.Len(), s.Text())
			}
			for _, g := range tt.gone {
				if strings.Contains(s.Text(), g) {
					t.Errorf("expected %q to be replaced in %q", g, s.Text())
				}
			}
		})
	}
}

func TestRestore_RoundTrip(t *testing.T) {
	text := `<p>Hello <a href="/x">world</a> {{store url=""}}</p>`
	s := placeholder.Protect(text)

	got, err := s.Restore(s.Text())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != text {
		t.Errorf("expected %q, got %q", text, got)
	}
}

func TestRestore_ReorderedMarkers(t *testing.T) {
	s := placeholder.Protect("<b>red</b> car")

	// a translator may move markup around words
	got, err := s.Restore("coche [PH0]rojo[PH1]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "coche <b>rojo</b>" {
		t.Errorf("unexpected restore %q", got)
	}
}

func TestRestore_MissingMarker(t *testing.T) {
	s := placeholder.Protect("<b>red</b> car")

	_, err := s.Restore("coche rojo[PH1]")
	var missing *placeholder.MissingError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingError, got %v", err)
	}
	if len(missing.Indices) != 1 || missing.Indices[0] != 0 {
		t.Errorf("expected index 0 missing, got %v", missing.Indices)
	}
	if !strings.Contains(err.Error(), "[PH0]") {
		t.Errorf("message should name the marker: %q", err.Error())
	}
}

func TestRestore_UnknownIndexKept(t *testing.T) {
	s := placeholder.Protect("<i>x</i>")

	got, err := s.Restore("[PH0]y[PH1][PH7]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "<i>y</i>[PH7]" {
		t.Errorf("unexpected restore %q", got)
	}
}
