// Package server exposes the intake pipeline over HTTP and serves the wizard
// front end when it has been built.
package server

import (
	"net/http"

	"ayurveda-intake/internal/common/config"
	"ayurveda-intake/internal/common/errors"
	"ayurveda-intake/internal/common/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Dependencies struct {
	Config    config.ServerConfig
	Submitter Submitter
	Logger    logger.Logger
}

// NewRouter mounts the submit endpoint at /api/submit and under the base path,
// plus health, metrics and the static front end.
func NewRouter(deps Dependencies) *chi.Mux {
	cfg := deps.Config

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(deps.Logger))

	submit := &submitHandler{
		submitter: deps.Submitter,
		errors:    errors.NewErrorHandler(deps.Logger),
		maxBytes:  cfg.MaxBodyBytes,
	}

	r.Get("/health", handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	r.Method(http.MethodPost, "/api/submit", submit)

	base := cfg.BasePath
	if base == "/" {
		base = ""
	}
	if base != "" {
		r.Method(http.MethodPost, base+"/api/submit", submit)
	}

	if !hasBuild(cfg.StaticDir) {
		deps.Logger.Warn("No front end build found", map[string]interface{}{
			"staticDir": cfg.StaticDir,
		})
		r.Get("/", handleNoBuild)
		return r
	}

	spa := spaHandler(cfg.StaticDir)
	if base != "" {
		r.Get(base, http.RedirectHandler(base+"/", http.StatusMovedPermanently).ServeHTTP)
		r.Handle(base+"/*", http.StripPrefix(base, spa))
	}
	r.Handle("/*", spa)

	return r
}
