// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates the four catalog tables.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(conn *sql.DB, dialect Dialect) error {
	stmts, err := statements(dialect, createSQLite, createPostgres)
	if err != nil {
		return err
	}
	for _, stmt := range stmts {
		if _, err := conn.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// DropSchema removes every catalog table, children first.
func DropSchema(conn *sql.DB, dialect Dialect) error {
	stmts, err := statements(dialect, dropSQLite, dropPostgres)
	if err != nil {
		return err
	}
	for _, stmt := range stmts {
		if _, err := conn.Exec(stmt); err != nil {
			return fmt.Errorf("failed to drop schema: %w", err)
		}
	}
	return nil
}

// Tables lists the catalog tables in dependency order.
var Tables = []string{"genes", "mutants", "size_metrics", "behavior_data"}

func statements(dialect Dialect, sqlite, postgres []string) ([]string, error) {
	switch dialect {
	case DialectSQLite:
		return sqlite, nil
	case DialectPostgres:
		return postgres, nil
	}
	return nil, fmt.Errorf("unsupported dialect %q", dialect)
}

var createSQLite = []string{
	`CREATE TABLE IF NOT EXISTS genes (
		gene_id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS mutants (
		mutant_id INTEGER PRIMARY KEY AUTOINCREMENT,
		gene_id INTEGER NOT NULL REFERENCES genes(gene_id),
		mutant_name TEXT NOT NULL UNIQUE,
		phenotype TEXT,
		image_path TEXT,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_mutants_gene_id ON mutants(gene_id)`,
	`CREATE TABLE IF NOT EXISTS size_metrics (
		metric_id INTEGER PRIMARY KEY AUTOINCREMENT,
		mutant_id INTEGER NOT NULL REFERENCES mutants(mutant_id),
		age_dpf REAL,
		body_length REAL,
		head_width REAL,
		tail_length REAL,
		weight_mg REAL,
		sample_size INTEGER
	)`,
	`CREATE INDEX IF NOT EXISTS idx_size_metrics_mutant_id ON size_metrics(mutant_id)`,
	`CREATE TABLE IF NOT EXISTS behavior_data (
		behavior_id INTEGER PRIMARY KEY AUTOINCREMENT,
		mutant_id INTEGER NOT NULL REFERENCES mutants(mutant_id),
		behavior_type TEXT NOT NULL,
		time_point REAL NOT NULL,
		value REAL NOT NULL,
		unit TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_behavior_data_mutant_id ON behavior_data(mutant_id)`,
}

var createPostgres = []string{
	`CREATE TABLE IF NOT EXISTS genes (
		gene_id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		description TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS mutants (
		mutant_id BIGSERIAL PRIMARY KEY,
		gene_id BIGINT NOT NULL REFERENCES genes(gene_id),
		mutant_name TEXT NOT NULL UNIQUE,
		phenotype TEXT,
		image_path TEXT,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_mutants_gene_id ON mutants(gene_id)`,
	`CREATE TABLE IF NOT EXISTS size_metrics (
		metric_id BIGSERIAL PRIMARY KEY,
		mutant_id BIGINT NOT NULL REFERENCES mutants(mutant_id),
		age_dpf DOUBLE PRECISION,
		body_length DOUBLE PRECISION,
		head_width DOUBLE PRECISION,
		tail_length DOUBLE PRECISION,
		weight_mg DOUBLE PRECISION,
		sample_size INTEGER
	)`,
	`CREATE INDEX IF NOT EXISTS idx_size_metrics_mutant_id ON size_metrics(mutant_id)`,
	`CREATE TABLE IF NOT EXISTS behavior_data (
		behavior_id BIGSERIAL PRIMARY KEY,
		mutant_id BIGINT NOT NULL REFERENCES mutants(mutant_id),
		behavior_type TEXT NOT NULL,
		time_point DOUBLE PRECISION NOT NULL,
		value DOUBLE PRECISION NOT NULL,
		unit TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_behavior_data_mutant_id ON behavior_data(mutant_id)`,
}

var dropSQLite = []string{
	`DROP TABLE IF EXISTS behavior_data`,
	`DROP TABLE IF EXISTS size_metrics`,
	`DROP TABLE IF EXISTS mutants`,
	`DROP TABLE IF EXISTS genes`,
}

var dropPostgres = []string{
	`DROP TABLE IF EXISTS behavior_data CASCADE`,
	`DROP TABLE IF EXISTS size_metrics CASCADE`,
	`DROP TABLE IF EXISTS mutants CASCADE`,
	`DROP TABLE IF EXISTS genes CASCADE`,
}
