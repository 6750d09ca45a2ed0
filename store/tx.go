// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/danielhkuo/zebrafish-catalog/models"
)

// Tx is the append-only write path. There are no update or upsert methods.
type Tx struct {
	tx *sql.Tx
}

// InsertGene adds a gene and returns its new gene_id.
// A name that already exists fails with ErrDuplicateKey.
func (t *Tx) InsertGene(ctx context.Context, g models.Gene) (int64, error) {
	var id int64
	err := t.tx.QueryRowContext(ctx, `
		INSERT INTO genes (name, description)
		VALUES ($1, $2)
		RETURNING gene_id
	`, g.Name, g.Description).Scan(&id)
	if err != nil {
		return 0, classifyWrite(err, fmt.Sprintf("gene %q", g.Name))
	}
	return id, nil
}

// InsertMutant adds a mutant under an existing gene. created_at is stamped
// here and never changes afterwards.
func (t *Tx) InsertMutant(ctx context.Context, m models.Mutant) (int64, error) {
	var id int64
	err := t.tx.QueryRowContext(ctx, `
		INSERT INTO mutants (gene_id, mutant_name, phenotype, image_path, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING mutant_id
	`, m.GeneID, m.MutantName, m.Phenotype, m.ImagePath, time.Now().UTC()).Scan(&id)
	if err != nil {
		return 0, classifyWrite(err, fmt.Sprintf("mutant %q", m.MutantName))
	}
	return id, nil
}

func (t *Tx) InsertSizeMetric(ctx context.Context, sm models.SizeMetric) (int64, error) {
	var id int64
	err := t.tx.QueryRowContext(ctx, `
		INSERT INTO size_metrics (mutant_id, age_dpf, body_length, head_width, tail_length, weight_mg, sample_size)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING metric_id
	`, sm.MutantID, sm.AgeDPF, sm.BodyLength, sm.HeadWidth, sm.TailLength, sm.WeightMg, sm.SampleSize).Scan(&id)
	if err != nil {
		return 0, classifyWrite(err, fmt.Sprintf("size metric for mutant %d", sm.MutantID))
	}
	return id, nil
}

func (t *Tx) InsertBehaviorData(ctx context.Context, b models.BehaviorData) (int64, error) {
	var id int64
	err := t.tx.QueryRowContext(ctx, `
		INSERT INTO behavior_data (mutant_id, behavior_type, time_point, value, unit)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING behavior_id
	`, b.MutantID, b.BehaviorType, b.TimePoint, b.Value, b.Unit).Scan(&id)
	if err != nil {
		return 0, classifyWrite(err, fmt.Sprintf("behavior data for mutant %d", b.MutantID))
	}
	return id, nil
}
