package models

import "time"

// Domain types

type Gene struct {
	GeneID      int64   `json:"gene_id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// Mutant is returned expanded with its parent gene's name.
type Mutant struct {
	MutantID   int64     `json:"mutant_id"`
	GeneID     int64     `json:"gene_id"`
	GeneName   string    `json:"gene_name"`
	MutantName string    `json:"mutant_name"`
	Phenotype  *string   `json:"phenotype"`
	ImagePath  *string   `json:"image_path"`
	CreatedAt  time.Time `json:"created_at"`
}

// SizeMetric is one morphological snapshot; every measurement may be absent.
type SizeMetric struct {
	MetricID   int64    `json:"metric_id"`
	MutantID   int64    `json:"mutant_id"`
	AgeDPF     *float64 `json:"age_dpf"` // days post fertilization
	BodyLength *float64 `json:"body_length"`
	HeadWidth  *float64 `json:"head_width"`
	TailLength *float64 `json:"tail_length"`
	WeightMg   *float64 `json:"weight_mg"`
	SampleSize *int64   `json:"sample_size"`
}

type BehaviorData struct {
	BehaviorID   int64   `json:"behavior_id"`
	MutantID     int64   `json:"mutant_id"`
	BehaviorType string  `json:"behavior_type"`
	TimePoint    float64 `json:"time_point"`
	Value        float64 `json:"value"`
	Unit         string  `json:"unit"`
}

// Response types

// BehaviorSeries is one behavior_type's samples, index-aligned.
type BehaviorSeries struct {
	TimePoints []float64 `json:"time_points"`
	Values     []float64 `json:"values"`
	Unit       string    `json:"unit"`
}

// TableCounts holds a row count per catalog table.
type TableCounts struct {
	Genes        int `json:"genes"`
	Mutants      int `json:"mutants"`
	SizeMetrics  int `json:"size_metrics"`
	BehaviorData int `json:"behavior_data"`
}

// Total sums all tables.
func (c TableCounts) Total() int {
	return c.Genes + c.Mutants + c.SizeMetrics + c.BehaviorData
}

type HealthResponse struct {
	Status string      `json:"status"`
	Counts TableCounts `json:"counts"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
