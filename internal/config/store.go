// Package config resolves scoped translator settings.
//
// Settings are addressed by a slash-separated path ("deepl/api_key") and a
// Scope. A Store answers for one exact layer; the Provider walks the layers,
// store scope first and then the default scope, on every read.
package config

import (
	"context"
	"strings"

	"github.com/spf13/viper"
)

// Scope identifies a store (tenant) configuration layer.
type Scope string

// DefaultScope is the global layer every store scope falls back to.
const DefaultScope Scope = ""

// IsDefault reports whether s is the global layer.
func (s Scope) IsDefault() bool {
	return s == DefaultScope
}

// Store answers lookups for a single exact layer. ok is false when the layer
// has no value for path.
type Store interface {
	Value(ctx context.Context, path string, scope Scope) (value string, ok bool, err error)
}

// MapStore is an in-memory Store.
type MapStore map[Scope]map[string]string

func (m MapStore) Value(_ context.Context, path string, scope Scope) (string, bool, error) {
	layer, ok := m[scope]
	if !ok {
		return "", false, nil
	}
	v, ok := layer[path]
	return v, ok, nil
}

// Chain queries stores in order and returns the first hit for the layer.
type Chain []Store

func (c Chain) Value(ctx context.Context, path string, scope Scope) (string, bool, error) {
	for _, s := range c {
		if s == nil {
			continue
		}
		v, ok, err := s.Value(ctx, path, scope)
		if err != nil {
			return "", false, err
		}
		if ok {
			return v, true, nil
		}
	}
	return "", false, nil
}

// ViperStore reads settings from a viper instance laid out as
//
//	default:
//	  deepl:
//	    api_domain: api-free.deepl.com
//	stores:
//	  "1":
//	    deepl:
//	      default_target_lang: DE
type ViperStore struct {
	v *viper.Viper
}

func NewViperStore(v *viper.Viper) *ViperStore {
	return &ViperStore{v: v}
}

func (s *ViperStore) Value(_ context.Context, path string, scope Scope) (string, bool, error) {
	key := viperKey(path, scope)
	if !s.v.IsSet(key) {
		return "", false, nil
	}
	return s.v.GetString(key), true, nil
}

func viperKey(path string, scope Scope) string {
	dotted := strings.ReplaceAll(path, "/", ".")
	if scope.IsDefault() {
		return "default." + dotted
	}
	return "stores." + string(scope) + "." + dotted
}
