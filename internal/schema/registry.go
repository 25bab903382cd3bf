package schema

import "sync"

// Registry is the catalogue of command definitions. It performs no schema
// validation of its own; structural checks happen at parser registration.
// Registration is expected during bootstrap, but plugin-style late
// registration is tolerated, so mutation is guarded.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]*CommandDefinition
	order  []string
}

// NewRegistry creates an empty registry. The registry is an explicit
// dependency of the parser and help generator; there is no package-level
// instance.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*CommandDefinition)}
}

// Register stores def keyed by its name. A repeated name overwrites the
// earlier definition; this catalogue is an internal bootstrap table, so
// last-wins is the intended behavior, not an error.
func (r *Registry) Register(def *CommandDefinition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byName[def.Name]; !exists {
		r.order = append(r.order, def.Name)
	}
	r.byName[def.Name] = def
}

// Get returns the definition registered under name, or nil.
func (r *Registry) Get(name string) *CommandDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byName[name]
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.byName[name]
	return ok
}

// All returns every definition in registration order.
func (r *Registry) All() []*CommandDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	defs := make([]*CommandDefinition, 0, len(r.order))
	for _, name := range r.order {
		defs = append(defs, r.byName[name])
	}
	return defs
}
