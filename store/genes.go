// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/zebrafish-catalog/models"
)

// GetGene returns the gene with the given id or ErrNotFound.
func (s *Store) GetGene(ctx context.Context, id int64) (models.Gene, error) {
	var g models.Gene
	err := s.db.QueryRowContext(ctx, `
		SELECT gene_id, name, description
		FROM genes
		WHERE gene_id = $1
	`, id).Scan(&g.GeneID, &g.Name, &g.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Gene{}, notFound("gene", id)
	}
	if err != nil {
		return models.Gene{}, fmt.Errorf("failed to query gene: %w", err)
	}
	return g, nil
}

// GetGeneByName looks a gene up by its natural key.
func (s *Store) GetGeneByName(ctx context.Context, name string) (models.Gene, error) {
	var g models.Gene
	err := s.db.QueryRowContext(ctx, `
		SELECT gene_id, name, description
		FROM genes
		WHERE name = $1
	`, name).Scan(&g.GeneID, &g.Name, &g.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Gene{}, fmt.Errorf("gene %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return models.Gene{}, fmt.Errorf("failed to query gene: %w", err)
	}
	return g, nil
}

// ListGenes returns every gene in creation order.
func (s *Store) ListGenes(ctx context.Context) ([]models.Gene, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT gene_id, name, description
		FROM genes
		ORDER BY gene_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query genes: %w", err)
	}
	defer rows.Close()

	genes := []models.Gene{}
	for rows.Next() {
		var g models.Gene
		if err := rows.Scan(&g.GeneID, &g.Name, &g.Description); err != nil {
			return nil, fmt.Errorf("failed to scan gene: %w", err)
		}
		genes = append(genes, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate genes: %w", err)
	}
	return genes, nil
}

// GeneIDsByName maps every committed gene name to its id.
func (s *Store) GeneIDsByName(ctx context.Context) (map[string]int64, error) {
	return s.nameIndex(ctx, `SELECT name, gene_id FROM genes`)
}

func (s *Store) nameIndex(ctx context.Context, query string) (map[string]int64, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to build name index: %w", err)
	}
	defer rows.Close()

	index := make(map[string]int64)
	for rows.Next() {
		var (
			name string
			id   int64
		)
		if err := rows.Scan(&name, &id); err != nil {
			return nil, fmt.Errorf("failed to scan name index: %w", err)
		}
		index[name] = id
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate name index: %w", err)
	}
	return index, nil
}
