package chatgpt

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/valpere/simpletran/internal/config"
	"github.com/valpere/simpletran/internal/translator"
)

const (
	msgTransport = "ChatGPT API Error. Failed to get response from ChatGPT API"
	msgUnknown   = "Unknown error occurred while calling ChatGPT API."
)

// SettingsSource is implemented by *config.Provider.
type SettingsSource interface {
	ChatGPTSettings(ctx context.Context, scope config.Scope) (config.ChatGPTSettings, error)
}

// APIError is a failed or unusable chat completions call. Message is the
// provider's own message when it sent one.
type APIError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

type Choice struct {
	Index   int `json:"index"`
	Message struct {
		Role    string  `json:"role"`
		Content *string `json:"content"`
	} `json:"message"`
	FinishReason string `json:"finish_reason"`
}

// Response is the decoded chat completions body.
type Response struct {
	ID      string   `json:"id"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Error   *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

func (r *Response) content() (string, bool) {
	if r == nil || len(r.Choices) == 0 || r.Choices[0].Message.Content == nil {
		return "", false
	}
	return *r.Choices[0].Message.Content, true
}

func (r *Response) errorMessage() string {
	if r == nil || r.Error == nil {
		return ""
	}
	return r.Error.Message
}

type Client struct {
	settings SettingsSource
	http     *resty.Client
	logger   *zap.Logger
}

func NewClient(settings SettingsSource, httpClient *resty.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = resty.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{settings: settings, http: httpClient, logger: logger}
}

// SendRequest posts messages with the model, temperature, key and timeout
// configured for scope. A response without choices[0].message.content is an
// *APIError.
func (c *Client) SendRequest(ctx context.Context, messages []Message, scope config.Scope) (*Response, error) {
	s, err := c.settings.ChatGPTSettings(ctx, scope)
	if err != nil {
		return nil, err
	}
	if s.APIKey == "" {
		return nil, &translator.ConfigError{Option: config.PathChatGPTAPIKey, Message: "Missing ChatGPT API key"}
	}
	if s.Endpoint == "" {
		return nil, &translator.ConfigError{Option: config.PathChatGPTEndpoint, Message: "Missing ChatGPT API endpoint"}
	}

	timeout := s.RequestTimeout
	if timeout <= 0 {
		timeout = config.DefaultRequestTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(s.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(chatRequest{Model: s.Model, Messages: messages, Temperature: s.Temperature}).
		Post(s.Endpoint)
	if err != nil {
		c.logger.Error("ChatGPT API error", zap.Error(err))
		return nil, &APIError{Message: msgTransport, Err: err}
	}

	var out Response
	decodeErr := json.Unmarshal(resp.Body(), &out)

	if !resp.IsSuccess() {
		c.logger.Error("ChatGPT API error",
			zap.Int("status", resp.StatusCode()),
			zap.String("body", abbreviate(resp.String(), 1000)),
		)
		msg := msgTransport
		if decodeErr == nil && out.errorMessage() != "" {
			msg += ": " + out.errorMessage()
		}
		return nil, &APIError{
			StatusCode: resp.StatusCode(),
			Message:    msg,
			Err:        fmt.Errorf("unexpected status %s", resp.Status()),
		}
	}

	if _, ok := out.content(); decodeErr != nil || !ok {
		c.logger.Error("ChatGPT API error", zap.String("body", abbreviate(resp.String(), 1000)))
		msg := out.errorMessage()
		if decodeErr != nil || msg == "" {
			msg = msgUnknown
		}
		return nil, &APIError{StatusCode: resp.StatusCode(), Message: msg, Err: decodeErr}
	}
	return &out, nil
}

// ExtractTranslation returns the trimmed content of the first choice.
func ExtractTranslation(resp *Response) string {
	text, _ := resp.content()
	return strings.TrimSpace(text)
}

func abbreviate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
