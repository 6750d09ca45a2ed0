// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package query is the read-only catalog service used by the HTTP handlers.

	svc := query.NewService(st)
	mutants, err := svc.ListMutants(ctx)

Mutants are always returned with gene_name filled in. The join is an
explicit gene lookup: a mutant whose gene_id does not resolve fails with
store.ErrNotFound instead of being returned half-filled.

# Behavior series

GroupBehavior turns rows like

	(speed, t=0, v=10, mm/s) (speed, t=2, v=12, mm/s) (startle, t=0, v=75, %)

into

	{"speed": {[0 2] [10 12] "mm/s"}, "startle": {[0] [75] "%"}}

Each type keeps the unit of its first row. Rows that disagree are reported
as UnitConflict values and logged, never reconciled.

# Search

Search matches substrings case-insensitively. Phenotype and gene filters
combine with AND; an empty filter is ignored, so an empty SearchParams
returns the same mutants as ListMutants.
*/
package query
