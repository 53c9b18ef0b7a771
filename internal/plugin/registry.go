package plugin

import (
	"sort"
	"strings"
	"sync"
)

// Registry owns plugin instances and the pattern index.
type Registry struct {
	mu       sync.RWMutex
	plugins  map[string]Plugin // name -> plugin
	patterns map[string]string // pattern -> plugin name
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		plugins:  make(map[string]Plugin),
		patterns: make(map[string]string),
	}
}

// Register validates and adds a plugin. Registration is atomic: on any
// validation failure the registry is left unchanged. OnRegister is
// invoked after a successful insert.
func (r *Registry) Register(p Plugin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.validateLocked(p); err != nil {
		return err
	}

	meta := p.Meta()
	r.plugins[meta.Name] = p
	for _, pattern := range meta.Patterns {
		r.patterns[pattern] = meta.Name
	}

	p.OnRegister()
	return nil
}

// validateLocked checks plugin metadata and pattern uniqueness.
func (r *Registry) validateLocked(p Plugin) error {
	if p == nil {
		return Errorf(CodePluginRegistrationFailed, "", "nil plugin")
	}

	meta := p.Meta()
	if meta.Name == "" {
		return Errorf(CodePluginRegistrationFailed, "", "empty plugin name")
	}
	if meta.Version == "" {
		return Errorf(CodePluginRegistrationFailed, meta.Name, "empty version")
	}
	if meta.Description == "" {
		return Errorf(CodePluginRegistrationFailed, meta.Name, "empty description")
	}
	if len(meta.Patterns) == 0 {
		return Errorf(CodePluginRegistrationFailed, meta.Name, "no patterns")
	}
	if len(meta.Modes) == 0 {
		return Errorf(CodePluginRegistrationFailed, meta.Name, "no supported modes")
	}
	if _, exists := r.plugins[meta.Name]; exists {
		return Errorf(CodePluginRegistrationFailed, meta.Name, "name already registered")
	}

	for _, pattern := range meta.Patterns {
		if !p.ValidatePattern(pattern) {
			return Errorf(CodeInvalidPattern, meta.Name, "invalid pattern %q", pattern)
		}
		if owner, exists := r.patterns[pattern]; exists {
			return Errorf(CodePatternConflict, meta.Name,
				"pattern %q already owned by %s", pattern, owner)
		}
	}

	return nil
}

// Unregister removes a plugin and all of its patterns.
// OnUnregister is invoked after removal.
func (r *Registry) Unregister(name string) error {
	r.mu.Lock()

	p, ok := r.plugins[name]
	if !ok {
		r.mu.Unlock()
		return Errorf(CodePluginNotFound, name, "not registered")
	}

	delete(r.plugins, name)
	for pattern, owner := range r.patterns {
		if owner == name {
			delete(r.patterns, pattern)
		}
	}
	r.mu.Unlock()

	p.OnUnregister()
	return nil
}

// AddPattern binds an additional pattern to an already-registered
// plugin, for user keymap overrides.
func (r *Registry) AddPattern(name, pattern string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.plugins[name]
	if !ok {
		return Errorf(CodePluginNotFound, name, "not registered")
	}
	if !p.ValidatePattern(pattern) {
		return Errorf(CodeInvalidPattern, name, "invalid pattern %q", pattern)
	}
	if owner, exists := r.patterns[pattern]; exists {
		return Errorf(CodePatternConflict, name,
			"pattern %q already owned by %s", pattern, owner)
	}
	r.patterns[pattern] = name
	return nil
}

// Get returns a plugin by name.
func (r *Registry) Get(name string) (Plugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.plugins[name]
	return p, ok
}

// FindByPattern returns the plugin owning an exact pattern.
func (r *Registry) FindByPattern(pattern string) (Plugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name, ok := r.patterns[pattern]
	if !ok {
		return nil, false
	}
	p, ok := r.plugins[name]
	return p, ok
}

// HasPrefix reports whether seq is a strict prefix of any registered
// pattern (an exact match does not count).
func (r *Registry) HasPrefix(seq string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for pattern := range r.patterns {
		if len(pattern) > len(seq) && strings.HasPrefix(pattern, seq) {
			return true
		}
	}
	return false
}

// Patterns returns all registered patterns, sorted.
func (r *Registry) Patterns() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	patterns := make([]string, 0, len(r.patterns))
	for pattern := range r.patterns {
		patterns = append(patterns, pattern)
	}
	sort.Strings(patterns)
	return patterns
}

// Names returns all registered plugin names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.plugins))
	for name := range r.plugins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered plugins.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.plugins)
}

// Clear removes all plugins, invoking OnUnregister on each.
func (r *Registry) Clear() {
	r.mu.Lock()
	plugins := make([]Plugin, 0, len(r.plugins))
	for _, p := range r.plugins {
		plugins = append(plugins, p)
	}
	r.plugins = make(map[string]Plugin)
	r.patterns = make(map[string]string)
	r.mu.Unlock()

	for _, p := range plugins {
		p.OnUnregister()
	}
}
