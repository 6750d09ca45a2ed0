// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package query

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/zebrafish-catalog/models"
	"github.com/danielhkuo/zebrafish-catalog/store"
)

// Reader is the read side of the entity store. *store.Store satisfies it.
type Reader interface {
	Ping(ctx context.Context) error
	Counts(ctx context.Context) (models.TableCounts, error)
	GetGene(ctx context.Context, id int64) (models.Gene, error)
	ListGenes(ctx context.Context) ([]models.Gene, error)
	GetMutant(ctx context.Context, id int64) (models.Mutant, error)
	ListMutants(ctx context.Context) ([]models.Mutant, error)
	SearchMutants(ctx context.Context, phenotype, gene string) ([]models.Mutant, error)
	ListSizeMetrics(ctx context.Context, mutantID int64) ([]models.SizeMetric, error)
	ListBehaviorData(ctx context.Context, mutantID int64) ([]models.BehaviorData, error)
}

var _ Reader = (*store.Store)(nil)

// SearchParams filters Search. Empty fields are not applied.
type SearchParams struct {
	Phenotype string
	Gene      string
}

// Service answers catalog read queries.
type Service struct {
	store Reader
}

func NewService(r Reader) *Service {
	return &Service{store: r}
}

func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *Service) Counts(ctx context.Context) (models.TableCounts, error) {
	return s.store.Counts(ctx)
}

func (s *Service) ListGenes(ctx context.Context) ([]models.Gene, error) {
	return s.store.ListGenes(ctx)
}

// ListMutants returns every mutant with its gene name filled in.
func (s *Service) ListMutants(ctx context.Context) ([]models.Mutant, error) {
	mutants, err := s.store.ListMutants(ctx)
	if err != nil {
		return nil, err
	}
	return s.withGeneNames(ctx, mutants)
}

// GetMutant returns one mutant with its gene name filled in, or
// store.ErrNotFound.
func (s *Service) GetMutant(ctx context.Context, id int64) (models.Mutant, error) {
	m, err := s.store.GetMutant(ctx, id)
	if err != nil {
		return models.Mutant{}, err
	}

	gene, err := s.store.GetGene(ctx, m.GeneID)
	if err != nil {
		return models.Mutant{}, fmt.Errorf("mutant %d references gene %d: %w", m.MutantID, m.GeneID, err)
	}
	m.GeneName = gene.Name
	return m, nil
}

func (s *Service) ListSizeMetrics(ctx context.Context, mutantID int64) ([]models.SizeMetric, error) {
	return s.store.ListSizeMetrics(ctx, mutantID)
}

// GetBehaviorSeries groups a mutant's behavior rows by behavior_type. Unit
// disagreements inside a type are logged and returned separately; the series
// keep the first unit seen.
func (s *Service) GetBehaviorSeries(ctx context.Context, mutantID int64) (map[string]models.BehaviorSeries, []UnitConflict, error) {
	rows, err := s.store.ListBehaviorData(ctx, mutantID)
	if err != nil {
		return nil, nil, err
	}

	series, conflicts := GroupBehavior(rows)
	for _, c := range conflicts {
		slog.Warn("behavior unit mismatch",
			"mutant_id", mutantID,
			"behavior_type", c.BehaviorType,
			"behavior_id", c.BehaviorID,
			"kept", c.Kept,
			"found", c.Found,
		)
	}
	return series, conflicts, nil
}

// Search returns mutants whose phenotype contains p.Phenotype and whose gene
// name contains p.Gene, ignoring case. With no filters it returns every mutant.
func (s *Service) Search(ctx context.Context, p SearchParams) ([]models.Mutant, error) {
	mutants, err := s.store.SearchMutants(ctx, p.Phenotype, p.Gene)
	if err != nil {
		return nil, err
	}
	return s.withGeneNames(ctx, mutants)
}

// withGeneNames joins gene names onto mutants using one gene scan.
func (s *Service) withGeneNames(ctx context.Context, mutants []models.Mutant) ([]models.Mutant, error) {
	if len(mutants) == 0 {
		return mutants, nil
	}

	genes, err := s.store.ListGenes(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(genes))
	for _, g := range genes {
		names[g.GeneID] = g.Name
	}

	for i := range mutants {
		name, ok := names[mutants[i].GeneID]
		if !ok {
			return nil, fmt.Errorf("mutant %d references gene %d: %w",
				mutants[i].MutantID, mutants[i].GeneID, store.ErrNotFound)
		}
		mutants[i].GeneName = name
	}
	return mutants, nil
}
