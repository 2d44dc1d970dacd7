// Package module provides prefix-mounted HTTP modules with their own middleware chains.
package module

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/JaimeStill/physics-lab/pkg/middleware"
)

// Module is an http.Handler mounted under a single-segment path prefix.
// Requests reach the inner handler with the prefix stripped.
type Module struct {
	prefix     string
	handler    http.Handler
	middleware middleware.System
}

// New creates a module for prefix. It panics when prefix is empty, lacks a
// leading slash, or spans more than one path segment.
func New(prefix string, handler http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{
		prefix:     prefix,
		handler:    handler,
		middleware: middleware.New(),
	}
}

// Prefix returns the mount prefix.
func (m *Module) Prefix() string {
	return m.prefix
}

// Use appends mw to the module middleware chain.
func (m *Module) Use(mw func(http.Handler) http.Handler) {
	m.middleware.Use(mw)
}

// Handler returns the inner handler wrapped in the module middleware.
func (m *Module) Handler() http.Handler {
	return m.middleware.Apply(m.handler)
}

// Serve strips the module prefix from the request path and dispatches to Handler.
func (m *Module) Serve(w http.ResponseWriter, req *http.Request) {
	path := strings.TrimPrefix(req.URL.Path, m.prefix)
	if path == "" {
		path = "/"
	}

	r2 := req.Clone(req.Context())
	r2.URL.Path = path
	r2.URL.RawPath = ""

	m.Handler().ServeHTTP(w, r2)
}

func validatePrefix(prefix string) error {
	if prefix == "" || prefix == "/" {
		return fmt.Errorf("module: prefix %q must not be empty", prefix)
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("module: prefix %q must start with /", prefix)
	}
	if strings.Contains(prefix[1:], "/") {
		return fmt.Errorf("module: prefix %q must be a single path segment", prefix)
	}
	return nil
}
