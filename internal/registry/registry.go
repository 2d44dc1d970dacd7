// Package registry holds the immutable table of page routes served by the site.
// A Registry is built once at startup from a declarative []Route and is safe
// for concurrent reads without locking because it is never mutated afterwards.
package registry

import (
	"fmt"
	"slices"
)

// Registry maps exact URL paths to routes in registration order.
type Registry struct {
	routes []Route
	index  map[string]int
}

// New registers routes in order. It fails on the first invalid or duplicate path.
func New(routes ...Route) (*Registry, error) {
	r := &Registry{
		routes: make([]Route, 0, len(routes)),
		index:  make(map[string]int, len(routes)),
	}

	for _, route := range routes {
		if err := r.register(route); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func (r *Registry) register(route Route) error {
	if err := route.validate(); err != nil {
		return err
	}
	if _, exists := r.index[route.Path]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateRoute, route.Path)
	}
	r.index[route.Path] = len(r.routes)
	r.routes = append(r.routes, route)
	return nil
}

// Resolve returns the route registered for path. Matching is exact.
func (r *Registry) Resolve(path string) (Route, error) {
	i, ok := r.index[path]
	if !ok {
		return Route{}, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return r.routes[i], nil
}

// Has reports whether path is registered.
func (r *Registry) Has(path string) bool {
	_, ok := r.index[path]
	return ok
}

// Routes returns a copy of the registered routes in registration order.
func (r *Registry) Routes() []Route {
	return slices.Clone(r.routes)
}

// Len returns the number of registered routes.
func (r *Registry) Len() int {
	return len(r.routes)
}
