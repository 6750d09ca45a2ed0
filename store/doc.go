// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the entity store for genes, mutants, size metrics and
behavior data.

# Construction

A Store wraps an explicitly opened connection; there is no package-level
handle:

	conn, err := db.Open(db.DialectSQLite, "zebrafish.db")
	st := store.New(conn, db.DialectSQLite)
	if err := st.Init(); err != nil {
		log.Fatal(err)
	}

# Reads

Point lookups by id return ErrNotFound when the row does not exist:

	GetGene, GetMutant, GetSizeMetric, GetBehaviorData

Natural-key lookups:

	GetGeneByName, GetMutantByName

Full scans in creation order:

	ListGenes, ListMutants, ListAllSizeMetrics, ListAllBehaviorData

Children of a parent (possibly empty, never nil):

	ListMutantsByGene, ListSizeMetrics, ListBehaviorData

SearchMutants is the one predicate scan: case-insensitive substring
filters on phenotype and gene name, combined with AND.

Mutants are returned without GeneName; the query package performs the
join explicitly.

# Writes

Writes are append-only and happen inside InTx:

	err := st.InTx(ctx, func(tx *store.Tx) error {
		id, err := tx.InsertGene(ctx, models.Gene{Name: "sox10"})
		...
	})

Constraint failures are mapped to ErrDuplicateKey (gene name, mutant name)
and ErrForeignKey (dangling gene_id or mutant_id). There is no update or
upsert; Rebuild drops and recreates every table and is the only way rows
are removed.
*/
package store
