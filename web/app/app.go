// Package app provides the physics demo site: embedded page templates and
// the handler that dispatches registered paths to them.
package app

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"slices"

	"github.com/JaimeStill/physics-lab/internal/registry"
	"github.com/JaimeStill/physics-lab/pkg/web"
)

//go:embed server/layouts/* server/views/*
var serverFS embed.FS

const layout = "app.html"

// AllowedMethods is sent in the Allow header for registered paths.
const AllowedMethods = "GET, HEAD, OPTIONS"

var (
	notFoundView = web.ViewDef{Template: "404.html", Title: "Not Found"}
	errorView    = web.ViewDef{Template: "500.html", Title: "Server Error"}
)

// Handler serves registry routes through a template set.
type Handler struct {
	registry    *registry.Registry
	templates   *web.TemplateSet
	notFound    http.HandlerFunc
	serverError http.HandlerFunc
	logger      *slog.Logger
}

// NewHandler parses the page templates for every route in reg. Templates come
// from the embedded set unless cfg.TemplatesDir points at a directory with the
// same layouts/ and views/ structure.
func NewHandler(reg *registry.Registry, cfg *web.Config, basePath string, logger *slog.Logger) (*Handler, error) {
	fsys, err := templateFS(cfg.TemplatesDir)
	if err != nil {
		return nil, err
	}

	nav := make([]web.ViewDef, 0, reg.Len())
	for _, route := range reg.Routes() {
		nav = append(nav, web.ViewDef{
			Route:    route.Path,
			Template: route.Template(),
			Title:    route.Title,
			Section:  route.Section,
		})
	}

	ts, err := web.NewTemplateSet(
		fsys,
		web.TemplateOptions{
			LayoutGlob: "layouts/*.html",
			ViewDir:    "views",
			BasePath:   basePath,
			Nav:        nav,
			MaxSize:    cfg.MaxTemplateSizeBytes(),
			Reload:     cfg.Reload,
		},
		slices.Concat(nav, []web.ViewDef{notFoundView, errorView}),
	)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	return &Handler{
		registry:    reg,
		templates:   ts,
		notFound:    ts.ErrorHandler(layout, notFoundView, http.StatusNotFound),
		serverError: ts.ErrorHandler(layout, errorView, http.StatusInternalServerError),
		logger:      logger.With("system", "site"),
	}, nil
}

// Templates returns the parsed template set.
func (h *Handler) Templates() *web.TemplateSet {
	return h.templates
}

// Router returns the site handler. GET and HEAD requests are resolved
// against the registry. On a registered path OPTIONS answers 200 with the
// Allow header and any other method answers 405; elsewhere the answer is 404.
func (h *Handler) Router() http.Handler {
	r := web.NewRouter()
	r.SetFallback(h.fallback)
	r.HandleFunc("GET /", h.page)
	return r
}

func (h *Handler) page(w http.ResponseWriter, r *http.Request) {
	route, err := h.registry.Resolve(r.URL.Path)
	if err != nil {
		h.renderError(w, r, registry.MapHTTPStatus(err), err)
		return
	}

	data := web.ViewData{
		Title:   route.Title,
		Section: route.Section,
		Path:    route.Path,
	}
	if err := h.templates.Render(w, http.StatusOK, layout, route.Template(), data); err != nil {
		h.renderError(w, r, http.StatusInternalServerError, err)
	}
}

func (h *Handler) fallback(w http.ResponseWriter, r *http.Request) {
	if !h.registry.Has(r.URL.Path) {
		h.renderError(w, r, http.StatusNotFound, registry.ErrNotFound)
		return
	}

	w.Header().Set("Allow", AllowedMethods)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, err error) {
	if status == http.StatusNotFound {
		h.notFound(w, r)
		return
	}
	h.logger.Error("render failed", "path", r.URL.Path, "status", status, "error", err)
	h.serverError(w, r)
}

func templateFS(dir string) (fs.FS, error) {
	if dir == "" {
		return fs.Sub(serverFS, "server")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("templates dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("templates dir %s is not a directory", dir)
	}
	return os.DirFS(dir), nil
}
