// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package importer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/zebrafish-catalog/models"
	"github.com/danielhkuo/zebrafish-catalog/store"
)

// Store is what the pipeline needs from the entity store. *store.Store
// satisfies it.
type Store interface {
	Rebuild(ctx context.Context) error
	Counts(ctx context.Context) (models.TableCounts, error)
	GeneIDsByName(ctx context.Context) (map[string]int64, error)
	MutantIDsByName(ctx context.Context) (map[string]int64, error)
	InTx(ctx context.Context, fn func(tx *store.Tx) error) error
}

var _ Store = (*store.Store)(nil)

// Options controls a pipeline run.
type Options struct {
	// Clear drops and recreates every table before loading.
	Clear bool
}

// Report summarises a run. Counts are rows inserted by this run.
type Report struct {
	RunID     string             `json:"run_id"`
	StartedAt time.Time          `json:"started_at"`
	Duration  time.Duration      `json:"duration"`
	Counts    models.TableCounts `json:"counts"`
	Warnings  []Warning          `json:"warnings"`
}

// StageError is a fatal failure inside one stage. That stage was rolled
// back; earlier stages stay committed.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("import stage %s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Pipeline loads a Workbook into the store in dependency order.
type Pipeline struct {
	store Store
}

func NewPipeline(s Store) *Pipeline {
	return &Pipeline{store: s}
}

// Run validates wb and loads it: genes, then mutants, then size metrics,
// then behavior data. Each stage resolves names against the rows committed
// before it and inserts in a single transaction.
//
// The returned Report is never nil. On error it carries the counts of the
// stages that committed.
func (p *Pipeline) Run(ctx context.Context, wb *Workbook, opts Options) (*Report, error) {
	report := &Report{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
		Warnings:  []Warning{},
	}
	logger := slog.With("run_id", report.RunID)
	defer func() { report.Duration = time.Since(report.StartedAt) }()

	if err := Validate(wb); err != nil {
		logger.Error("import source rejected", "error", err)
		return report, err
	}

	if opts.Clear {
		logger.Info("clearing existing data")
		if err := p.store.Rebuild(ctx); err != nil {
			return report, fmt.Errorf("failed to clear store: %w", err)
		}
	}

	stages := []struct {
		name string
		run  func(context.Context, *Table) (int, []Warning, error)
	}{
		{SheetGenes, p.loadGenes},
		{SheetMutants, p.loadMutants},
		{SheetSizeMetrics, p.loadSizeMetrics},
		{SheetBehaviorData, p.loadBehaviorData},
	}
	counts := []*int{&report.Counts.Genes, &report.Counts.Mutants, &report.Counts.SizeMetrics, &report.Counts.BehaviorData}

	for i, stage := range stages {
		t, _ := wb.Table(stage.name)
		n, warnings, err := stage.run(ctx, t)
		if err != nil {
			logger.Error("import stage failed", "stage", stage.name, "error", err)
			return report, &StageError{Stage: stage.name, Err: err}
		}
		for _, w := range warnings {
			logger.Warn("row skipped or flagged", "sheet", w.Sheet, "row", w.Row, "reason", w.Reason)
		}
		*counts[i] = n
		report.Warnings = append(report.Warnings, warnings...)
		logger.Info("import stage committed", "stage", stage.name, "rows", n, "warnings", len(warnings))
	}

	logger.Info("import completed",
		"genes", report.Counts.Genes,
		"mutants", report.Counts.Mutants,
		"size_metrics", report.Counts.SizeMetrics,
		"behavior_data", report.Counts.BehaviorData,
	)
	return report, nil
}

func (p *Pipeline) loadGenes(ctx context.Context, t *Table) (int, []Warning, error) {
	genes, err := resolveGenes(t)
	if err != nil {
		return 0, nil, err
	}
	err = p.store.InTx(ctx, func(tx *store.Tx) error {
		for _, g := range genes {
			if _, err := tx.InsertGene(ctx, g); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, nil, err
	}
	return len(genes), nil, nil
}

func (p *Pipeline) loadMutants(ctx context.Context, t *Table) (int, []Warning, error) {
	genes, err := p.store.GeneIDsByName(ctx)
	if err != nil {
		return 0, nil, err
	}
	mutants, warnings, err := resolveMutants(t, genes)
	if err != nil {
		return 0, nil, err
	}
	err = p.store.InTx(ctx, func(tx *store.Tx) error {
		for _, m := range mutants {
			if _, err := tx.InsertMutant(ctx, m); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, nil, err
	}
	return len(mutants), warnings, nil
}

func (p *Pipeline) loadSizeMetrics(ctx context.Context, t *Table) (int, []Warning, error) {
	mutants, err := p.store.MutantIDsByName(ctx)
	if err != nil {
		return 0, nil, err
	}
	metrics, warnings, err := resolveSizeMetrics(t, mutants)
	if err != nil {
		return 0, nil, err
	}
	err = p.store.InTx(ctx, func(tx *store.Tx) error {
		for _, sm := range metrics {
			if _, err := tx.InsertSizeMetric(ctx, sm); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, nil, err
	}
	return len(metrics), warnings, nil
}

func (p *Pipeline) loadBehaviorData(ctx context.Context, t *Table) (int, []Warning, error) {
	mutants, err := p.store.MutantIDsByName(ctx)
	if err != nil {
		return 0, nil, err
	}
	data, warnings, err := resolveBehaviorData(t, mutants)
	if err != nil {
		return 0, nil, err
	}
	err = p.store.InTx(ctx, func(tx *store.Tx) error {
		for _, b := range data {
			if _, err := tx.InsertBehaviorData(ctx, b); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, nil, err
	}
	return len(data), warnings, nil
}
