package config

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultRequestTimeout applies when a timeout option is unset or not positive.
const DefaultRequestTimeout = 30 * time.Second

// Decryptor turns stored ciphertext into the plain secret.
type Decryptor interface {
	Decrypt(ciphertext string) (string, error)
}

// Provider resolves settings through the scope -> default fallback. It keeps
// no state between calls, so every read hits the underlying Store.
type Provider struct {
	store     Store
	decryptor Decryptor
}

func NewProvider(store Store, decryptor Decryptor) *Provider {
	return &Provider{store: store, decryptor: decryptor}
}

// String returns the value of path for scope, falling back to the default
// scope. An absent value is "".
func (p *Provider) String(ctx context.Context, path string, scope Scope) (string, error) {
	if !scope.IsDefault() {
		v, ok, err := p.store.Value(ctx, path, scope)
		if err != nil {
			return "", fmt.Errorf("read %s for scope %q: %w", path, scope, err)
		}
		if ok {
			return v, nil
		}
	}
	v, _, err := p.store.Value(ctx, path, DefaultScope)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return v, nil
}

// Flag reports whether path is set to a truthy value. Empty, "0" and "false"
// are false; anything else is true.
func (p *Provider) Flag(ctx context.Context, path string, scope Scope) (bool, error) {
	v, err := p.String(ctx, path, scope)
	if err != nil {
		return false, err
	}
	v = strings.TrimSpace(v)
	return v != "" && v != "0" && !strings.EqualFold(v, "false"), nil
}

// Int parses path as an integer. Unparsable values read as zero.
func (p *Provider) Int(ctx context.Context, path string, scope Scope) (int, error) {
	v, err := p.String(ctx, path, scope)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, nil
	}
	return n, nil
}

// Float parses path as a float. Unparsable values read as zero.
func (p *Provider) Float(ctx context.Context, path string, scope Scope) (float64, error) {
	v, err := p.String(ctx, path, scope)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, nil
	}
	return f, nil
}

// Secret decrypts the ciphertext stored under path. Empty ciphertext yields ""
// without touching the decryptor.
func (p *Provider) Secret(ctx context.Context, path string, scope Scope) (string, error) {
	cipher, err := p.String(ctx, path, scope)
	if err != nil {
		return "", err
	}
	if cipher == "" {
		return "", nil
	}
	if p.decryptor == nil {
		return "", fmt.Errorf("decrypt %s: no decryption key configured", path)
	}
	plain, err := p.decryptor.Decrypt(cipher)
	if err != nil {
		return "", fmt.Errorf("decrypt %s: %w", path, err)
	}
	return plain, nil
}

// Timeout reads path as whole seconds.
func (p *Provider) Timeout(ctx context.Context, path string, scope Scope) (time.Duration, error) {
	n, err := p.Int(ctx, path, scope)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return DefaultRequestTimeout, nil
	}
	return time.Duration(n) * time.Second, nil
}

func (p *Provider) IsModuleEnabled(ctx context.Context, scope Scope) (bool, error) {
	return p.Flag(ctx, PathEnable, scope)
}

func (p *Provider) AIEngine(ctx context.Context, scope Scope) (string, error) {
	return p.String(ctx, PathAIEngine, scope)
}

func (p *Provider) StoreLocale(ctx context.Context, scope Scope) (string, error) {
	return p.String(ctx, PathStoreLocale, scope)
}

func (p *Provider) DeeplAPIDomain(ctx context.Context, scope Scope) (string, error) {
	return p.String(ctx, PathDeeplAPIDomain, scope)
}

func (p *Provider) DeeplAPIKey(ctx context.Context, scope Scope) (string, error) {
	return p.Secret(ctx, PathDeeplAPIKey, scope)
}

func (p *Provider) DeeplRequestTimeout(ctx context.Context, scope Scope) (time.Duration, error) {
	return p.Timeout(ctx, PathDeeplRequestTimeout, scope)
}

func (p *Provider) ChatGPTAPIKey(ctx context.Context, scope Scope) (string, error) {
	return p.Secret(ctx, PathChatGPTAPIKey, scope)
}

func (p *Provider) ChatGPTEndpoint(ctx context.Context, scope Scope) (string, error) {
	v, err := p.String(ctx, PathChatGPTEndpoint, scope)
	if err != nil || v != "" {
		return v, err
	}
	return DefaultChatGPTEndpoint, nil
}

func (p *Provider) ChatGPTModel(ctx context.Context, scope Scope) (string, error) {
	v, err := p.String(ctx, PathChatGPTModel, scope)
	if err != nil || v != "" {
		return v, err
	}
	return DefaultChatGPTModel, nil
}

// ChatGPTTemperature treats zero as unset.
func (p *Provider) ChatGPTTemperature(ctx context.Context, scope Scope) (float64, error) {
	t, err := p.Float(ctx, PathChatGPTTemperature, scope)
	if err != nil {
		return 0, err
	}
	if t == 0 {
		return DefaultChatGPTTemperature, nil
	}
	return t, nil
}

func (p *Provider) ChatGPTDefaultSourceLang(ctx context.Context, scope Scope) (string, error) {
	return p.String(ctx, PathChatGPTDefaultSourceLang, scope)
}

func (p *Provider) ChatGPTDefaultTargetLang(ctx context.Context, scope Scope) (string, error) {
	return p.String(ctx, PathChatGPTDefaultTargetLang, scope)
}

func (p *Provider) ChatGPTRequestTimeout(ctx context.Context, scope Scope) (time.Duration, error) {
	return p.Timeout(ctx, PathChatGPTRequestTimeout, scope)
}
