package server

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/valpere/simpletran/internal/config"
	"github.com/valpere/simpletran/internal/translator"
)

const (
	msgInvalidFormKey = "Invalid form key. Please refresh the page."
	msgTextRequired   = "Text parameter is required."
	msgStoreRequired  = "Valid Store ID parameter is required."
	msgGeneric        = "An error occurred while processing your request. Please try again."
)

// Translator is implemented by *translator.Dispatcher.
type Translator interface {
	Translate(ctx context.Context, text string, scope config.Scope) (string, error)
}

// Response is the body of every /translate reply. Failures are reported
// with success=false and HTTP 200.
type Response struct {
	Success     bool   `json:"success"`
	Translation string `json:"translation,omitempty"`
	Message     string `json:"message,omitempty"`
}

type TranslateHandler struct {
	translator Translator
	formKey    string
	logger     *zap.Logger
}

// NewTranslateHandler checks form_key against formKey unless formKey is
// empty.
func NewTranslateHandler(t Translator, formKey string, logger *zap.Logger) *TranslateHandler {
	return &TranslateHandler{translator: t, formKey: formKey, logger: logger}
}

// Translate handles POST /translate. Parameters are read from the form body
// first and the query string second.
func (h *TranslateHandler) Translate(c *gin.Context) {
	rid := zap.String("request_id", c.GetString("request_id"))

	if h.formKey != "" && subtle.ConstantTimeCompare([]byte(param(c, "form_key")), []byte(h.formKey)) != 1 {
		h.logger.Error("Translation validation error", rid, zap.String("message", msgInvalidFormKey))
		h.respond(c, Response{Message: msgInvalidFormKey})
		return
	}

	text := strings.TrimSpace(param(c, "text"))
	scope, ok := parseStoreID(param(c, "storeId"))
	h.logger.Info("Translation request", rid, zap.String("text", text), zap.String("store_id", string(scope)))

	if text == "" {
		h.respond(c, Response{Message: msgTextRequired})
		return
	}
	if !ok {
		h.respond(c, Response{Message: msgStoreRequired})
		return
	}

	out, err := h.translator.Translate(c.Request.Context(), text, scope)
	if err != nil {
		msg := userMessage(err)
		h.logger.Error("Translation error", rid, zap.String("store_id", string(scope)), zap.Error(err))
		h.respond(c, Response{Message: msg})
		return
	}

	h.logger.Info("Translation successful", rid, zap.String("result", out))
	h.respond(c, Response{Success: true, Translation: out})
}

func (h *TranslateHandler) respond(c *gin.Context, r Response) {
	c.JSON(http.StatusOK, r)
}

func param(c *gin.Context, key string) string {
	if v, ok := c.GetPostForm(key); ok {
		return v
	}
	return c.Query(key)
}

// parseStoreID accepts non-negative integers only.
func parseStoreID(raw string) (config.Scope, bool) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id < 0 {
		return "", false
	}
	return config.Scope(strconv.Itoa(id)), true
}

// userMessage keeps the message of errors meant for the user and hides the
// rest behind a generic one.
func userMessage(err error) string {
	var te *translator.Error
	var ce *translator.ConfigError
	var nf *translator.AdapterNotFoundError
	switch {
	case errors.As(err, &te):
		return te.Message
	case errors.As(err, &ce):
		return ce.Message
	case errors.As(err, &nf):
		return nf.Error()
	case errors.Is(err, translator.ErrNotEnabled):
		return err.Error()
	default:
		return msgGeneric
	}
}
