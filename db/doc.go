// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens catalog databases and manages their schema.

# Connections

Open returns a pooled connection for either supported engine:

	conn, err := db.Open(db.DialectSQLite, "zebrafish.db")
	conn, err := db.Open(db.DialectPostgres, "postgres://...")

SQLite connections are opened through the pure Go modernc driver with
foreign_keys, busy_timeout and WAL journaling applied to every pooled
connection. Postgres goes through lib/pq.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, db.DialectSQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
DropSchema removes everything; the importer pairs the two for a full rebuild.

# Tables

  - genes: gene_id, name (unique), description
  - mutants: mutant_id, gene_id, mutant_name (unique), phenotype, image_path, created_at
  - size_metrics: metric_id, mutant_id, age_dpf, body_length, head_width, tail_length, weight_mg, sample_size
  - behavior_data: behavior_id, mutant_id, behavior_type, time_point, value, unit

# Relationships

	genes 1──* mutants
	mutants 1──* size_metrics
	mutants 1──* behavior_data

Foreign keys are plain REFERENCES without cascades; rows are only ever
removed by dropping the tables.

# Constraint Errors

IsUniqueViolation and IsForeignKeyViolation classify driver errors from
either engine so callers can map them to domain errors.
*/
package db
