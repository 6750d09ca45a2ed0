// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/zebrafish-catalog/middleware"
	"github.com/danielhkuo/zebrafish-catalog/query"
)

type GeneHandler struct {
	svc *query.Service
}

func NewGeneHandler(svc *query.Service) *GeneHandler {
	return &GeneHandler{svc: svc}
}

// ListGenes handles GET /api/genes
func (h *GeneHandler) ListGenes(w http.ResponseWriter, r *http.Request) {
	genes, err := h.svc.ListGenes(r.Context())
	if err != nil {
		slog.Error("failed to list genes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, genes)
}
