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

const (
	sizeMetricColumns   = `metric_id, mutant_id, age_dpf, body_length, head_width, tail_length, weight_mg, sample_size`
	behaviorDataColumns = `behavior_id, mutant_id, behavior_type, time_point, value, unit`
)

func scanSizeMetric(row interface{ Scan(...any) error }) (models.SizeMetric, error) {
	var sm models.SizeMetric
	err := row.Scan(&sm.MetricID, &sm.MutantID, &sm.AgeDPF, &sm.BodyLength,
		&sm.HeadWidth, &sm.TailLength, &sm.WeightMg, &sm.SampleSize)
	return sm, err
}

func scanBehaviorData(row interface{ Scan(...any) error }) (models.BehaviorData, error) {
	var b models.BehaviorData
	err := row.Scan(&b.BehaviorID, &b.MutantID, &b.BehaviorType, &b.TimePoint, &b.Value, &b.Unit)
	return b, err
}

func (s *Store) GetSizeMetric(ctx context.Context, id int64) (models.SizeMetric, error) {
	sm, err := scanSizeMetric(s.db.QueryRowContext(ctx,
		`SELECT `+sizeMetricColumns+` FROM size_metrics WHERE metric_id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.SizeMetric{}, notFound("size metric", id)
	}
	if err != nil {
		return models.SizeMetric{}, fmt.Errorf("failed to query size metric: %w", err)
	}
	return sm, nil
}

// ListSizeMetrics returns a mutant's size metrics in storage order. An
// unknown mutant yields an empty slice.
func (s *Store) ListSizeMetrics(ctx context.Context, mutantID int64) ([]models.SizeMetric, error) {
	return s.querySizeMetrics(ctx,
		`SELECT `+sizeMetricColumns+` FROM size_metrics WHERE mutant_id = $1 ORDER BY metric_id`, mutantID)
}

func (s *Store) ListAllSizeMetrics(ctx context.Context) ([]models.SizeMetric, error) {
	return s.querySizeMetrics(ctx, `SELECT `+sizeMetricColumns+` FROM size_metrics ORDER BY metric_id`)
}

func (s *Store) querySizeMetrics(ctx context.Context, query string, args ...any) ([]models.SizeMetric, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query size metrics: %w", err)
	}
	defer rows.Close()

	metrics := []models.SizeMetric{}
	for rows.Next() {
		sm, err := scanSizeMetric(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan size metric: %w", err)
		}
		metrics = append(metrics, sm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate size metrics: %w", err)
	}
	return metrics, nil
}

func (s *Store) GetBehaviorData(ctx context.Context, id int64) (models.BehaviorData, error) {
	b, err := scanBehaviorData(s.db.QueryRowContext(ctx,
		`SELECT `+behaviorDataColumns+` FROM behavior_data WHERE behavior_id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.BehaviorData{}, notFound("behavior data", id)
	}
	if err != nil {
		return models.BehaviorData{}, fmt.Errorf("failed to query behavior data: %w", err)
	}
	return b, nil
}

// ListBehaviorData returns a mutant's behavior samples in insertion order.
func (s *Store) ListBehaviorData(ctx context.Context, mutantID int64) ([]models.BehaviorData, error) {
	return s.queryBehaviorData(ctx,
		`SELECT `+behaviorDataColumns+` FROM behavior_data WHERE mutant_id = $1 ORDER BY behavior_id`, mutantID)
}

func (s *Store) ListAllBehaviorData(ctx context.Context) ([]models.BehaviorData, error) {
	return s.queryBehaviorData(ctx, `SELECT `+behaviorDataColumns+` FROM behavior_data ORDER BY behavior_id`)
}

func (s *Store) queryBehaviorData(ctx context.Context, query string, args ...any) ([]models.BehaviorData, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query behavior data: %w", err)
	}
	defer rows.Close()

	data := []models.BehaviorData{}
	for rows.Next() {
		b, err := scanBehaviorData(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan behavior data: %w", err)
		}
		data = append(data, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate behavior data: %w", err)
	}
	return data, nil
}
