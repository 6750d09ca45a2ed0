// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the zebrafish catalog
API. Every endpoint is a read.

# Handler Types

Each handler is a struct over the query service:

  - MutantHandler: mutant listing, detail and search
  - MeasurementHandler: size metrics and behavior series per mutant
  - GeneHandler: gene listing
  - HealthHandler: store reachability and row counts

Handlers are created via constructor functions that accept *query.Service:

	svc := query.NewService(st)
	mutantHandler := handlers.NewMutantHandler(svc)

# Endpoints

	GET /api/mutants                  -> ListMutants
	GET /api/mutant/{id}              -> GetMutant
	GET /api/search?phenotype=&gene=  -> Search
	GET /api/size-metrics/{mutantId}  -> GetSizeMetrics
	GET /api/behavior-data/{mutantId} -> GetBehaviorData
	GET /api/genes                    -> ListGenes
	GET /health                       -> Health

# Status Codes

Path ids must be integers; anything else is 400. GetMutant answers 404 for
an unknown id. GetSizeMetrics and GetBehaviorData answer 200 with [] and {}
for a mutant that has no rows, whether or not it exists. Store failures are
logged and answered with 500.

# Behavior Data

GetBehaviorData returns one series per behavior_type:

	{
	  "speed":   {"time_points": [0, 2], "values": [10, 12], "unit": "mm/s"},
	  "startle": {"time_points": [0],    "values": [75],     "unit": "%"}
	}

Points keep insertion order. Each series reports the unit of its first row.
*/
package handlers
