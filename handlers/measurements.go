// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/zebrafish-catalog/middleware"
	"github.com/danielhkuo/zebrafish-catalog/query"
)

type MeasurementHandler struct {
	svc *query.Service
}

func NewMeasurementHandler(svc *query.Service) *MeasurementHandler {
	return &MeasurementHandler{svc: svc}
}

// GetSizeMetrics handles GET /api/size-metrics/{mutantId}
// An unknown mutant yields an empty array.
func (h *MeasurementHandler) GetSizeMetrics(w http.ResponseWriter, r *http.Request) {
	mutantID, ok := pathID(w, r, "mutantId")
	if !ok {
		return
	}

	metrics, err := h.svc.ListSizeMetrics(r.Context(), mutantID)
	if err != nil {
		slog.Error("failed to list size metrics", "mutant_id", mutantID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, metrics)
}

// GetBehaviorData handles GET /api/behavior-data/{mutantId}
// Returns one series per behavior_type. An unknown mutant yields {}.
func (h *MeasurementHandler) GetBehaviorData(w http.ResponseWriter, r *http.Request) {
	mutantID, ok := pathID(w, r, "mutantId")
	if !ok {
		return
	}

	series, _, err := h.svc.GetBehaviorSeries(r.Context(), mutantID)
	if err != nil {
		slog.Error("failed to get behavior data", "mutant_id", mutantID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, series)
}
