// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-reader-sync/internal/app"
	"github.com/MKhiriev/go-reader-sync/internal/utils"
	"github.com/MKhiriev/go-reader-sync/models"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A known path requested with a method it does not serve answers 404
// instead of chi's 405, the same as an unknown path.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !routeServes(router, r.URL.Path, r.Method) {
			_, _ = utils.WriteJSON(w, models.ProxyResponse{Error: app.MsgNotFound}, http.StatusNotFound)
			return
		}
		router.ServeHTTP(w, r)
	}
}

// routeServes reports whether a route with exactly this pattern is
// registered for method. Parameterised patterns are not expanded.
func routeServes(router chi.Routes, path, method string) bool {
	for _, route := range router.Routes() {
		if route.Pattern != path {
			continue
		}
		_, ok := route.Handlers[method]
		return ok
	}
	return false
}
