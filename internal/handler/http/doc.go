// Package http implements the proxy KV HTTP endpoint.
//
// It exposes route wiring, the /api/sync and /api/version/ handlers and the
// middleware chain in front of them: panic recovery, request tracing, access
// logging, CORS and per-IP rate limiting.
package http
