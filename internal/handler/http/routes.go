package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS())
	router.Use(h.withRateLimit())
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Post("/api/sync", h.sync)
	router.Options("/api/sync", h.syncOptions)
	router.Get("/api/version/", h.getServerVersion)
	router.Get("/metrics", promhttp.Handler().ServeHTTP)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
