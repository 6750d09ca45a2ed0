// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/zebrafish-catalog/middleware"
	"github.com/danielhkuo/zebrafish-catalog/models"
	"github.com/danielhkuo/zebrafish-catalog/query"
)

type HealthHandler struct {
	svc *query.Service
}

func NewHealthHandler(svc *query.Service) *HealthHandler {
	return &HealthHandler{svc: svc}
}

// Health handles GET /health
// Reports 503 when the store cannot be reached.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Ping(r.Context()); err != nil {
		slog.Error("health check failed", "error", err)
		middleware.JSONResponse(w, http.StatusServiceUnavailable, models.HealthResponse{Status: "unavailable"})
		return
	}

	counts, err := h.svc.Counts(r.Context())
	if err != nil {
		slog.Error("failed to count rows", "error", err)
		middleware.JSONResponse(w, http.StatusServiceUnavailable, models.HealthResponse{Status: "unavailable"})
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{Status: "ok", Counts: counts})
}
