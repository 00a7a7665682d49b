package domain

import orderedmap "github.com/wk8/go-ordered-map/v2"

// Registry is the insertion-ordered set of field paths discovered in a file.
// The first occurrence of a path fixes its position; later additions are no-ops.
type Registry struct {
	paths *orderedmap.OrderedMap[string, struct{}]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{paths: orderedmap.New[string, struct{}]()}
}

// Add registers path if it has not been seen yet.
// Returns true when the path was new.
func (r *Registry) Add(path string) bool {
	if r.Contains(path) {
		return false
	}
	r.paths.Set(path, struct{}{})
	return true
}

// Contains reports whether path has been registered
func (r *Registry) Contains(path string) bool {
	_, ok := r.paths.Get(path)
	return ok
}

// Len returns the number of distinct paths
func (r *Registry) Len() int {
	return r.paths.Len()
}

// Paths returns the registered paths in discovery order
func (r *Registry) Paths() []string {
	out := make([]string, 0, r.paths.Len())
	for pair := r.paths.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}
