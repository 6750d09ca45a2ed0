// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain and response types for the catalog API.

# Domain Types

One type per table, with JSON tags matching the column names:

  - Gene: gene_id, name, description
  - Mutant: mutant_id, gene_id, gene_name, mutant_name, phenotype, image_path, created_at
  - SizeMetric: metric_id, mutant_id, age_dpf, body_length, head_width, tail_length, weight_mg, sample_size
  - BehaviorData: behavior_id, mutant_id, behavior_type, time_point, value, unit

Nullable columns are pointers and encode as JSON null when absent.
Mutant.GeneName is not a column; the query service fills it from the
parent gene.

# Response Types

  - BehaviorSeries: time_points, values, unit for one behavior_type
  - TableCounts: row counts per table (also used by import reports)
  - HealthResponse: status, counts
  - ErrorResponse: error, message
*/
package models
