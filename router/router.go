// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/zebrafish-catalog/cliparse"
	"github.com/danielhkuo/zebrafish-catalog/handlers"
	"github.com/danielhkuo/zebrafish-catalog/middleware"
	"github.com/danielhkuo/zebrafish-catalog/query"
)

// Banner is the root response when no static client is configured.
const Banner = "zebrafish-catalog API v1"

func NewRouter(svc *query.Service, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	mutantHandler := handlers.NewMutantHandler(svc)
	measurementHandler := handlers.NewMeasurementHandler(svc)
	geneHandler := handlers.NewGeneHandler(svc)
	healthHandler := handlers.NewHealthHandler(svc)

	handle := func(pattern string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, middleware.WithMetrics(pattern, middleware.WithLogging(h)))
	}

	// Health check and metrics
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Catalog reads
	handle("GET /api/mutants", mutantHandler.ListMutants)
	handle("GET /api/mutant/{id}", mutantHandler.GetMutant)
	handle("GET /api/search", mutantHandler.Search)
	handle("GET /api/size-metrics/{mutantId}", measurementHandler.GetSizeMetrics)
	handle("GET /api/behavior-data/{mutantId}", measurementHandler.GetBehaviorData)
	handle("GET /api/genes", geneHandler.ListGenes)

	// Root endpoint: the single-page client, or a banner
	if cfg.StaticDir != "" {
		mux.Handle("GET /", http.FileServer(http.Dir(cfg.StaticDir)))
	} else {
		mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(Banner))
		})
	}

	return mux
}
