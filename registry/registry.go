// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: registry/registry.go
// Summary: Category to surface style registry with lazy defaults and memoized fallback.
// Usage: Renderers call Lookup for every element category; Reconfigure replaces the table.

package registry

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/framegrace/surfacestyle/style"
)

const (
	// FallbackName names the built-in fallback descriptor.
	FallbackName = "DefaultMaterial"

	// Wildcard is the document key whose entry becomes the fallback.
	Wildcard = "*"
)

var (
	// ErrConfigParse reports a style document that cannot be read or decoded.
	ErrConfigParse = errors.New("style config parse error")

	// ErrUnknownCategory reports an update for a category that was never bound.
	ErrUnknownCategory = errors.New("no style registered")

	// ErrMalformedColor reports an RGB list without exactly three values.
	ErrMalformedColor = style.ErrMalformedColor
)

// Options control registry behavior.
type Options struct {
	// LegacyDefaults reproduces the historical built-in table in which the
	// IfcSpace values were written onto IfcWindow, leaving IfcSpace empty.
	LegacyDefaults bool
}

// Option modifies Options.
type Option func(*Options)

// WithLegacyDefaults selects the historical built-in table.
func WithLegacyDefaults() Option { return func(o *Options) { o.LegacyDefaults = true } }

// Registry maps category names to shared style descriptors.
// All methods are safe for concurrent use. Built-in defaults are populated on
// first use of any method.
type Registry struct {
	opt         Options
	once        sync.Once
	initialized atomic.Bool

	mu       sync.RWMutex
	styles   map[string]*style.Descriptor // category -> descriptor
	fallback *style.Descriptor

	missLogged *style.Descriptor // fallback whose first miss has been logged
}

// New creates a registry. Defaults are not populated until first use.
func New(opts ...Option) *Registry {
	var o Options
	for _, fn := range opts {
		fn(&o)
	}
	return &Registry{
		opt:    o,
		styles: make(map[string]*style.Descriptor),
	}
}

// ready is the single gate every public method passes through.
// It must not be called with r.mu held.
func (r *Registry) ready() {
	r.once.Do(r.populate)
}

func (r *Registry) populate() {
	styles, fallback := builtinStyles(r.opt.LegacyDefaults)

	r.mu.Lock()
	r.styles = styles
	r.fallback = fallback
	r.mu.Unlock()

	r.initialized.Store(true)
	log.Printf("Styles: Registered %d built-in styles (legacy=%t)", len(styles), r.opt.LegacyDefaults)
}

// Initialized reports whether the built-in defaults have been populated.
func (r *Registry) Initialized() bool {
	return r.initialized.Load()
}

// Lookup returns the descriptor bound to name. An unknown name is bound to the
// current fallback descriptor and that binding is kept, so later lookups
// return the same pointer even after the fallback is replaced.
// Only the first miss against each fallback is logged.
// Lookup never returns nil.
func (r *Registry) Lookup(name string) *style.Descriptor {
	r.ready()

	r.mu.RLock()
	d, ok := r.styles[name]
	r.mu.RUnlock()
	if ok {
		return d
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if d, ok := r.styles[name]; ok {
		return d
	}
	r.styles[name] = r.fallback
	if r.missLogged != r.fallback {
		r.missLogged = r.fallback
		log.Printf("Styles: No style for %q, binding %s (further misses not logged)", name, r.fallback.Name())
	}
	return r.fallback
}

// Update returns the descriptor bound to name for in-place edits.
// Unlike Lookup it never creates a binding.
func (r *Registry) Update(name string) (*style.Descriptor, error) {
	r.ready()

	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.styles[name]
	if !ok {
		return nil, fmt.Errorf("%w for %q", ErrUnknownCategory, name)
	}
	return d, nil
}

// Fallback returns the descriptor used for unknown categories.
func (r *Registry) Fallback() *style.Descriptor {
	r.ready()
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.fallback
}

// Has reports whether name is bound, either explicitly or by an earlier miss.
func (r *Registry) Has(name string) bool {
	r.ready()
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.styles[name]
	return ok
}

// Names returns all bound category names in lexicographic order.
func (r *Registry) Names() []string {
	r.ready()
	r.mu.RLock()
	names := make([]string, 0, len(r.styles))
	for name := range r.styles {
		names = append(names, name)
	}
	r.mu.RUnlock()

	sort.Strings(names)
	return names
}

// Count returns the number of bound category names.
func (r *Registry) Count() int {
	r.ready()
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.styles)
}

// swap replaces the table and, when fallback is non-nil, the fallback.
func (r *Registry) swap(styles map[string]*style.Descriptor, fallback *style.Descriptor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.styles = styles
	if fallback != nil {
		r.fallback = fallback
	}
}
