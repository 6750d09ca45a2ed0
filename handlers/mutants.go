// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/zebrafish-catalog/middleware"
	"github.com/danielhkuo/zebrafish-catalog/query"
	"github.com/danielhkuo/zebrafish-catalog/store"
)

type MutantHandler struct {
	svc *query.Service
}

func NewMutantHandler(svc *query.Service) *MutantHandler {
	return &MutantHandler{svc: svc}
}

// ListMutants handles GET /api/mutants
func (h *MutantHandler) ListMutants(w http.ResponseWriter, r *http.Request) {
	mutants, err := h.svc.ListMutants(r.Context())
	if err != nil {
		slog.Error("failed to list mutants", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, mutants)
}

// GetMutant handles GET /api/mutant/{id}
func (h *MutantHandler) GetMutant(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	mutant, err := h.svc.GetMutant(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Mutant not found")
		return
	}
	if err != nil {
		slog.Error("failed to get mutant", "mutant_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, mutant)
}

// Search handles GET /api/search?phenotype=&gene=
// Both parameters are optional substring filters; with neither, every
// mutant is returned.
func (h *MutantHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := query.SearchParams{
		Phenotype: q.Get("phenotype"),
		Gene:      q.Get("gene"),
	}

	mutants, err := h.svc.Search(r.Context(), params)
	if err != nil {
		slog.Error("failed to search mutants", "phenotype", params.Phenotype, "gene", params.Gene, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, mutants)
}

// pathID parses an integer path parameter, writing a 400 when it is not one.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, name+" must be an integer")
		return 0, false
	}
	return id, true
}
