package models

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/zeusync/levelcheck/internal/core/level"
)

var ErrModelNotFound = errors.New("model not found")

const (
	NameExact    = "exact"
	NameOffByOne = "off-by-one"
	NameZero     = "zero"
)

// Registry maps model names to implementations.
type Registry struct {
	mu     sync.RWMutex
	models map[string]level.Model
}

func NewRegistry() *Registry {
	return &Registry{models: make(map[string]level.Model)}
}

// Default returns a registry holding the reference models.
func Default() *Registry {
	r := NewRegistry()
	r.Register(NameExact, Exact)
	r.Register(NameOffByOne, OffByOne)
	r.Register(NameZero, Zero)
	return r
}

func (r *Registry) Register(name string, model level.Model) {
	r.mu.Lock()
	r.models[name] = model
	r.mu.Unlock()
}

func (r *Registry) Get(name string) (level.Model, error) {
	r.mu.RLock()
	m := r.models[name]
	r.mu.RUnlock()
	if m == nil {
		return nil, fmt.Errorf("%w: %s", ErrModelNotFound, name)
	}
	return m, nil
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
