// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /api/genes", middleware.WithLogging(handler))

Logs request start (method, path, client IP, request id) and completion
(status, duration_ms).

# Request IDs

WithRequestID wraps the whole mux. It keeps a valid incoming X-Request-ID
or generates a UUID, echoes it in the response and makes it available via
RequestID(ctx).

# Metrics

WithMetrics counts requests and observes latency per route pattern:

	mux.HandleFunc(pattern, middleware.WithMetrics(pattern, handler))

The collectors register with the default Prometheus registry and are
exposed by the router at /metrics.

# CORS Middleware

Enable cross-origin reads for the single-page client:

	handler := middleware.CORS(cfg.CORSOrigin)(mux)

An empty origin echoes the request's Origin header. Only GET and OPTIONS
are allowed.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "mutant not found")

# Client IP Extraction

Get the client IP behind proxies (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
