// Package toolkit provides the tool capability contract and the compile-time
// registry that tool source files register into.
package toolkit

import (
	"sort"
	"sync"

	"github.com/go-chi/chi/v5"
)

// Tool describes one mountable unit of HTTP functionality. Router constructs
// the tool's routing object; construction failures are isolated per tool by
// the loader and never abort startup.
type Tool struct {
	Description string
	Router      func() (chi.Router, error)
}

// Registry maps path-derived tool identifiers (e.g. "math/add" for
// tools/math/add.go) to their definitions.
type Registry struct {
	tools map[string]Tool
	mu    sync.RWMutex
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool under the given identifier. Registering the same
// identifier again overwrites the earlier definition.
func (r *Registry) Register(path string, tool Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[path] = tool
}

// Lookup returns the tool registered under the given identifier.
func (r *Registry) Lookup(path string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tool, exists := r.tools[path]
	return tool, exists
}

// Paths returns all registered identifiers in sorted order.
func (r *Registry) Paths() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	paths := make([]string, 0, len(r.tools))
	for path := range r.tools {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Default is the registry tool source files register into from init.
var Default = NewRegistry()

// Register adds a tool to the default registry.
func Register(path string, tool Tool) {
	Default.Register(path, tool)
}

// Lookup returns a tool from the default registry.
func Lookup(path string) (Tool, bool) {
	return Default.Lookup(path)
}
