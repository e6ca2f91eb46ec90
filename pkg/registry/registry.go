// Package registry manages named field callbacks so declarative manifests can
// reference predicates, getters, transformers, validators, and setters by name.
package registry

import (
	"sync"

	"github.com/aretw0/espalier/pkg/domain"
)

// Registry holds named callbacks. The zero value is not usable; call New.
type Registry struct {
	mu           sync.RWMutex
	predicates   map[string]domain.Predicate
	getters      map[string]domain.Getter
	defaults     map[string]domain.DefaultFunc
	transformers map[string]domain.Transformer
	validators   map[string]domain.Validator
	setters      map[string]domain.Setter
}

// New creates a new empty registry.
func New() *Registry {
	return &Registry{
		predicates:   make(map[string]domain.Predicate),
		getters:      make(map[string]domain.Getter),
		defaults:     make(map[string]domain.DefaultFunc),
		transformers: make(map[string]domain.Transformer),
		validators:   make(map[string]domain.Validator),
		setters:      make(map[string]domain.Setter),
	}
}

// RegisterPredicate adds a named predicate. Same-name registration overwrites.
func (r *Registry) RegisterPredicate(name string, fn domain.Predicate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.predicates[name] = fn
}

// Predicate looks up a named predicate.
func (r *Registry) Predicate(name string) (domain.Predicate, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.predicates[name]
	return fn, ok
}

// RegisterGetter adds a named getter. Same-name registration overwrites.
func (r *Registry) RegisterGetter(name string, fn domain.Getter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.getters[name] = fn
}

// Getter looks up a named getter.
func (r *Registry) Getter(name string) (domain.Getter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.getters[name]
	return fn, ok
}

// RegisterDefault adds a named default function. Same-name registration overwrites.
func (r *Registry) RegisterDefault(name string, fn domain.DefaultFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.defaults[name] = fn
}

// Default looks up a named default function.
func (r *Registry) Default(name string) (domain.DefaultFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.defaults[name]
	return fn, ok
}

// RegisterTransformer adds a named transformer. Same-name registration overwrites.
func (r *Registry) RegisterTransformer(name string, fn domain.Transformer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transformers[name] = fn
}

// Transformer looks up a named transformer.
func (r *Registry) Transformer(name string) (domain.Transformer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.transformers[name]
	return fn, ok
}

// RegisterValidator adds a named validator. Same-name registration overwrites.
func (r *Registry) RegisterValidator(name string, fn domain.Validator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.validators[name] = fn
}

// Validator looks up a named validator.
func (r *Registry) Validator(name string) (domain.Validator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.validators[name]
	return fn, ok
}

// RegisterSetter adds a named setter. Same-name registration overwrites.
func (r *Registry) RegisterSetter(name string, fn domain.Setter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.setters[name] = fn
}

// Setter looks up a named setter.
func (r *Registry) Setter(name string) (domain.Setter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.setters[name]
	return fn, ok
}
