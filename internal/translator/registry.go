package translator

import (
	"fmt"
	"sort"
)

// Registry maps engine keys to adapters. It is fixed at construction and safe
// for concurrent reads.
type Registry struct {
	adapters map[string]Adapter
}

// NewRegistry keys every adapter by its Name. A duplicate name panics.
func NewRegistry(adapters ...Adapter) *Registry {
	m := make(map[string]Adapter, len(adapters))
	for _, a := range adapters {
		name := a.Name()
		if _, dup := m[name]; dup {
			panic(fmt.Sprintf("translator: duplicate adapter %q", name))
		}
		m[name] = a
	}
	return &Registry{adapters: m}
}

func (r *Registry) Get(engine string) (Adapter, bool) {
	a, ok := r.adapters[engine]
	return a, ok
}

// Engines returns the registered keys in sorted order.
func (r *Registry) Engines() []string {
	keys := make([]string, 0, len(r.adapters))
	for k := range r.adapters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
