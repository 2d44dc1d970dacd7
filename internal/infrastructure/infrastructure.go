// Package infrastructure provides core service initialization for application startup.
// It assembles the shared dependencies (lifecycle, logging, route registry) that
// the site and server systems require.
package infrastructure

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/JaimeStill/physics-lab/internal/config"
	"github.com/JaimeStill/physics-lab/internal/registry"
	"github.com/JaimeStill/physics-lab/pkg/lifecycle"
	"github.com/JaimeStill/physics-lab/pkg/logging"
)

// Infrastructure holds the core systems required by all modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Registry  *registry.Registry

	routeSet string
}

// New creates an Infrastructure from the application configuration, logging to stdout.
func New(cfg *config.Config) (*Infrastructure, error) {
	return NewWithWriter(cfg, nil)
}

// NewWithWriter creates an Infrastructure whose logger writes to w.
// A nil writer logs to stdout.
func NewWithWriter(cfg *config.Config, w io.Writer) (*Infrastructure, error) {
	var logger *slog.Logger
	if w == nil {
		logger = logging.New(&cfg.Logging)
	} else {
		logger = logging.NewWithWriter(&cfg.Logging, w)
	}

	routes, err := cfg.Routes.Select()
	if err != nil {
		return nil, fmt.Errorf("select routes: %w", err)
	}

	reg, err := registry.New(routes...)
	if err != nil {
		return nil, fmt.Errorf("registry init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    logger,
		Registry:  reg,
		routeSet:  cfg.Routes.Set,
	}, nil
}

// Start registers infrastructure startup hooks with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	i.Lifecycle.OnStartup(func() {
		i.Logger.Info("route registry ready", "set", i.routeSet, "routes", i.Registry.Len())
	})
	return nil
}
