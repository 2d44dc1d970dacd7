package main

import (
	"os"
	"time"

	"github.com/docker/go-units"

	"github.com/JaimeStill/physics-lab/internal/config"
	"github.com/JaimeStill/physics-lab/internal/infrastructure"
	"github.com/JaimeStill/physics-lab/internal/server"
)

// Server coordinates the lifecycle of all subsystems.
type Server struct {
	infra   *infrastructure.Infrastructure
	modules *Modules
	http    server.System
}

// NewServer creates and initializes the service with all subsystems.
func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}
	return newServer(cfg, infra)
}

func newServer(cfg *config.Config, infra *infrastructure.Infrastructure) (*Server, error) {
	modules, err := NewModules(infra, cfg)
	if err != nil {
		return nil, err
	}

	router := buildRouter(infra.Lifecycle)
	modules.Mount(router)

	templates := modules.Site.Templates()
	infra.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
		"routes", infra.Registry.Len(),
		"templates", units.HumanSize(float64(templates.Size())),
		"reload", cfg.Web.Reload,
	)
	if missing := templates.Missing(); len(missing) > 0 {
		infra.Logger.Warn("templates missing, affected routes will answer 500", "templates", missing)
	}
	if _, err := os.Stat(cfg.Web.StaticDir); err != nil {
		infra.Logger.Warn("static directory unavailable", "dir", cfg.Web.StaticDir, "error", err)
	}

	return &Server{
		infra:   infra,
		modules: modules,
		http:    server.New(&cfg.Server, router, infra.Logger),
	}, nil
}

// Addr returns the address the HTTP listener is bound to.
func (s *Server) Addr() string {
	return s.http.Addr()
}

// Start begins all subsystems and returns once the listener is bound.
func (s *Server) Start() error {
	s.infra.Logger.Info("starting service")

	if err := s.infra.Start(); err != nil {
		return err
	}

	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("all subsystems ready")
	}()

	return nil
}

// Shutdown gracefully stops all subsystems within timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	return s.infra.Lifecycle.Shutdown(timeout)
}
