package main

import (
	"net/http"
	"os"

	"github.com/JaimeStill/physics-lab/internal/config"
	"github.com/JaimeStill/physics-lab/internal/infrastructure"
	"github.com/JaimeStill/physics-lab/pkg/lifecycle"
	"github.com/JaimeStill/physics-lab/pkg/middleware"
	"github.com/JaimeStill/physics-lab/pkg/module"
	"github.com/JaimeStill/physics-lab/pkg/web"
	"github.com/JaimeStill/physics-lab/web/app"
)

type Modules struct {
	Site   *app.Handler
	Static *module.Module

	site http.Handler
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	site, err := app.NewHandler(infra.Registry, &cfg.Web, "", infra.Logger)
	if err != nil {
		return nil, err
	}

	siteMiddleware := middleware.New()
	siteMiddleware.Use(middleware.RequestID())
	siteMiddleware.Use(middleware.Logger(infra.Logger))

	staticModule := module.New("/static", web.StaticServer(os.DirFS(cfg.Web.StaticDir)))
	staticModule.Use(middleware.RequestID())
	staticModule.Use(middleware.Logger(infra.Logger))

	return &Modules{
		Site:   site,
		Static: staticModule,
		site:   siteMiddleware.Apply(site.Router()),
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.Static)
	router.Handle("/", m.site)
}

func buildRouter(readiness lifecycle.ReadinessChecker) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !readiness.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	return router
}
