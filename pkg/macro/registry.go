package macro

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrMacroNotFound is returned when a name has no registered macro.
var ErrMacroNotFound = errors.New("macro not found")

// Registry stores macros by name and is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	macros map[string]Macro
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		macros: make(map[string]Macro),
	}
}

// NewDefaultRegistry creates a registry holding the built-in macros.
func NewDefaultRegistry() *Registry {
	reg := NewRegistry()
	for _, m := range Builtins() {
		reg.MustRegister(m)
	}
	return reg
}

// Register adds a macro by its Name(). Duplicate names return an error.
func (r *Registry) Register(m Macro) error {
	if m == nil {
		return fmt.Errorf("macro: macro is required")
	}
	name := strings.TrimSpace(m.Name())
	if name == "" {
		return fmt.Errorf("macro: macro name is required")
	}
	if strings.ContainsAny(name, " ]") {
		return fmt.Errorf("macro: invalid macro name %q", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.macros[name]; exists {
		return fmt.Errorf("macro: macro %q already registered", name)
	}

	r.macros[name] = m
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(m Macro) {
	if err := r.Register(m); err != nil {
		panic(err)
	}
}

// Get retrieves a macro by name.
func (r *Registry) Get(name string) (Macro, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.macros[name]
	if !ok {
		return nil, fmt.Errorf("macro: %q: %w", name, ErrMacroNotFound)
	}
	return m, nil
}

// MustGet panics if the macro is missing.
func (r *Registry) MustGet(name string) Macro {
	m, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return m
}

// List returns a sorted list of macro names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.macros))
	for name := range r.macros {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a macro is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.macros[name]
	return ok
}

// Expand looks up name and expands it against src and args.
func (r *Registry) Expand(name, src string, args ...any) (string, error) {
	m, err := r.Get(name)
	if err != nil {
		return "", err
	}
	return m.Expand(src, args...)
}
