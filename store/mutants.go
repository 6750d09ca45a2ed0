// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/danielhkuo/zebrafish-catalog/models"
)

const mutantColumns = `m.mutant_id, m.gene_id, m.mutant_name, m.phenotype, m.image_path, m.created_at`

// Mutants come back with GeneName empty; joining in the gene is the
// caller's job.
func scanMutant(row interface{ Scan(...any) error }) (models.Mutant, error) {
	var m models.Mutant
	err := row.Scan(&m.MutantID, &m.GeneID, &m.MutantName, &m.Phenotype, &m.ImagePath, &m.CreatedAt)
	return m, err
}

// GetMutant returns the mutant with the given id or ErrNotFound.
func (s *Store) GetMutant(ctx context.Context, id int64) (models.Mutant, error) {
	m, err := scanMutant(s.db.QueryRowContext(ctx, `
		SELECT `+mutantColumns+`
		FROM mutants m
		WHERE m.mutant_id = $1
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Mutant{}, notFound("mutant", id)
	}
	if err != nil {
		return models.Mutant{}, fmt.Errorf("failed to query mutant: %w", err)
	}
	return m, nil
}

// GetMutantByName looks a mutant up by its natural key.
func (s *Store) GetMutantByName(ctx context.Context, name string) (models.Mutant, error) {
	m, err := scanMutant(s.db.QueryRowContext(ctx, `
		SELECT `+mutantColumns+`
		FROM mutants m
		WHERE m.mutant_name = $1
	`, name))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Mutant{}, fmt.Errorf("mutant %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return models.Mutant{}, fmt.Errorf("failed to query mutant: %w", err)
	}
	return m, nil
}

// ListMutants returns every mutant in creation order.
func (s *Store) ListMutants(ctx context.Context) ([]models.Mutant, error) {
	return s.queryMutants(ctx, `
		SELECT `+mutantColumns+`
		FROM mutants m
		ORDER BY m.mutant_id
	`)
}

// ListMutantsByGene returns the mutants derived from one gene.
func (s *Store) ListMutantsByGene(ctx context.Context, geneID int64) ([]models.Mutant, error) {
	return s.queryMutants(ctx, `
		SELECT `+mutantColumns+`
		FROM mutants m
		WHERE m.gene_id = $1
		ORDER BY m.mutant_id
	`, geneID)
}

// SearchMutants returns mutants whose phenotype contains phenotype and whose
// gene name contains gene. Empty filters are not applied. Matching ignores
// case on both engines.
func (s *Store) SearchMutants(ctx context.Context, phenotype, gene string) ([]models.Mutant, error) {
	var (
		where []string
		args  []any
	)
	if phenotype != "" {
		args = append(args, likePattern(phenotype))
		where = append(where, fmt.Sprintf(`LOWER(m.phenotype) LIKE LOWER($%d) ESCAPE '\'`, len(args)))
	}
	if gene != "" {
		args = append(args, likePattern(gene))
		where = append(where, fmt.Sprintf(`LOWER(g.name) LIKE LOWER($%d) ESCAPE '\'`, len(args)))
	}

	query := `
		SELECT ` + mutantColumns + `
		FROM mutants m
		JOIN genes g ON g.gene_id = m.gene_id`
	if len(where) > 0 {
		query += "\n\t\tWHERE " + strings.Join(where, " AND ")
	}
	query += "\n\t\tORDER BY m.mutant_id"

	return s.queryMutants(ctx, query, args...)
}

// MutantIDsByName maps every committed mutant name to its id.
func (s *Store) MutantIDsByName(ctx context.Context) (map[string]int64, error) {
	return s.nameIndex(ctx, `SELECT mutant_name, mutant_id FROM mutants`)
}

func (s *Store) queryMutants(ctx context.Context, query string, args ...any) ([]models.Mutant, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query mutants: %w", err)
	}
	defer rows.Close()

	mutants := []models.Mutant{}
	for rows.Next() {
		m, err := scanMutant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mutant: %w", err)
		}
		mutants = append(mutants, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate mutants: %w", err)
	}
	return mutants, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(substr string) string {
	return "%" + likeEscaper.Replace(substr) + "%"
}
