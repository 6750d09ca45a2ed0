// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the zebrafish catalog API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	svc := query.NewService(st)
	mux := router.NewRouter(svc, cfg)

# Endpoints

Health and metrics:

	GET /health   - Store ping and row counts
	GET /metrics  - Prometheus exposition

Catalog (read-only):

	GET /api/mutants                  - All mutants with gene names
	GET /api/mutant/{id}              - One mutant
	GET /api/search?phenotype=&gene=  - Substring search
	GET /api/size-metrics/{mutantId}  - Size metric snapshots
	GET /api/behavior-data/{mutantId} - Behavior series by type
	GET /api/genes                    - All genes

Root:

	GET / - Files from cfg.StaticDir, or a plain-text banner

# Middleware

API routes are wrapped with WithMetrics (keyed by route pattern) and
WithLogging. The caller wraps the whole mux with WithRequestID and CORS:

	handler := middleware.WithRequestID(middleware.CORS(cfg.CORSOrigin)(mux))

Any other method on an API path gets 405 from the mux.
*/
package router
