package deepl

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"

	"github.com/valpere/simpletran/internal/config"
	"github.com/valpere/simpletran/internal/translator"
)

const translatePath = "v2/translate"

// APIError is a non-2xx answer from DeepL.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("DeepL API error (%d): %s", e.StatusCode, e.Message)
}

type Translation struct {
	DetectedSourceLanguage string `json:"detected_source_language"`
	Text                   string `json:"text"`
	BilledCharacters       int    `json:"billed_characters,omitempty"`
}

// Response is the decoded body of /v2/translate.
type Response struct {
	Translations []Translation `json:"translations"`
}

// FirstText returns translations[0].text, or "" when there is none.
func (r *Response) FirstText() string {
	if r == nil || len(r.Translations) == 0 {
		return ""
	}
	return r.Translations[0].Text
}

type Client struct {
	settings SettingsSource
	builder  *ParametersBuilder
	http     *resty.Client
}

// NewClient uses httpClient for outbound calls, or a default resty client when
// it is nil.
func NewClient(settings SettingsSource, builder *ParametersBuilder, httpClient *resty.Client) *Client {
	if httpClient == nil {
		httpClient = resty.New()
	}
	return &Client{settings: settings, builder: builder, http: httpClient}
}

// TranslateByScope translates text with the parameters configured for scope.
func (c *Client) TranslateByScope(ctx context.Context, text string, scope config.Scope) (*Response, error) {
	s, err := c.settings.DeeplSettings(ctx, scope)
	if err != nil {
		return nil, err
	}
	params, err := c.builder.ForScope(s)
	if err != nil {
		return nil, err
	}
	params.Set("text", text)
	return c.send(ctx, params, s)
}

// TranslateToTargetLanguage translates text into targetLang with the default
// scope's options and key.
func (c *Client) TranslateToTargetLanguage(ctx context.Context, text, targetLang string) (*Response, error) {
	if targetLang == "" {
		return nil, errTargetRequired()
	}
	s, err := c.settings.DeeplSettings(ctx, config.DefaultScope)
	if err != nil {
		return nil, err
	}
	if s.APIKey == "" {
		return nil, errMissingKey()
	}
	params, err := c.builder.ForTargetLanguage(s, targetLang)
	if err != nil {
		return nil, err
	}
	params.Set("auth_key", s.APIKey)
	params.Set("text", text)
	params.Set("target_lang", targetLang)
	return c.send(ctx, params, s)
}

// send posts params using the domain and timeout of the same snapshot the
// params were built from.
func (c *Client) send(ctx context.Context, params *Params, s config.DeeplSettings) (*Response, error) {
	if s.APIDomain == "" {
		return nil, &translator.ConfigError{
			Option:  config.PathDeeplAPIDomain,
			Message: "Missing DeepL API domain configuration",
		}
	}

	timeout := s.RequestTimeout
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	url := fmt.Sprintf("https://%s/%s", s.APIDomain, translatePath)
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetHeader("Accept", "application/json").
		SetBody(params.Encode()).
		Post(url)
	if err != nil {
		return nil, fmt.Errorf("deepl request failed: %w", err)
	}

	if !resp.IsSuccess() {
		var body struct {
			Message string `json:"message"`
		}
		msg := resp.Status()
		if json.Unmarshal(resp.Body(), &body) == nil && body.Message != "" {
			msg = body.Message
		}
		return nil, &APIError{StatusCode: resp.StatusCode(), Message: msg}
	}

	var out Response
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("failed to decode deepl response: %w", err)
	}
	return &out, nil
}
