package registry

import (
	"fmt"
	"strings"
)

// Route associates an exact URL path with the template that renders it.
type Route struct {
	Path     string `yaml:"path"`
	Resource string `yaml:"resource"`
	Title    string `yaml:"title"`
	Section  string `yaml:"section"`
}

// Template returns the page template file name for the route's resource.
func (r Route) Template() string {
	return r.Resource + ".html"
}

func (r Route) validate() error {
	switch {
	case !strings.HasPrefix(r.Path, "/"):
		return fmt.Errorf("%w: path %q must start with /", ErrInvalidRoute, r.Path)
	case strings.ContainsAny(r.Path, " \t\r\n{}*?#"):
		return fmt.Errorf("%w: path %q must be a literal path", ErrInvalidRoute, r.Path)
	case r.Resource == "":
		return fmt.Errorf("%w: path %q has no resource", ErrInvalidRoute, r.Path)
	case strings.ContainsAny(r.Resource, `/\`) || strings.Contains(r.Resource, ".."):
		return fmt.Errorf("%w: resource %q must be a plain name", ErrInvalidRoute, r.Resource)
	}
	return nil
}
