package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-reader-sync/internal/app"
	"github.com/MKhiriev/go-reader-sync/internal/utils"
	"github.com/MKhiriev/go-reader-sync/models"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

// withCORS allows every origin with credentials. OPTIONS requests still
// reach the route handler.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:     []string{"*"},
		AllowedMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:     []string{"Content-Type", traceIDHeader},
		ExposedHeaders:     []string{traceIDHeader},
		AllowCredentials:   true,
		OptionsPassthrough: true,
	})
}

// withRateLimit limits requests per client IP per minute. A zero limit
// disables it.
func (h *Handler) withRateLimit() func(http.Handler) http.Handler {
	if h.rateLimit <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.Limit(
		h.rateLimit,
		time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			_, _ = utils.WriteJSON(w, models.ProxyResponse{Error: app.MsgTooManyRequests}, http.StatusTooManyRequests)
		}),
	)
}
