// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package importer

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/danielhkuo/zebrafish-catalog/models"
)

var (
	ErrMissingRequiredValue = errors.New("missing required value")
	ErrInvalidValue         = errors.New("invalid value")
)

// Warning is a skipped or suspicious row. The import continues past it.
type Warning struct {
	Sheet  string `json:"sheet"`
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s row %d: %s", w.Sheet, w.Row, w.Reason)
}

// nameIndex maps committed natural keys to surrogate ids. It is built once
// per stage and only read afterwards.
type nameIndex map[string]int64

func cellError(t *Table, r Row, col string, err error) error {
	return fmt.Errorf("%s row %d, column %s: %w", t.Name, r.Line, col, err)
}

func required(t *Table, r Row, col string) (string, error) {
	v := t.Value(r, col)
	if v == "" {
		return "", cellError(t, r, col, ErrMissingRequiredValue)
	}
	return v, nil
}

func optional(t *Table, r Row, col string) *string {
	if v := t.Value(r, col); v != "" {
		return &v
	}
	return nil
}

func optionalFloat(t *Table, r Row, col string) (*float64, error) {
	v := t.Value(r, col)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, cellError(t, r, col, fmt.Errorf("%w: %q is not a number", ErrInvalidValue, v))
	}
	return &f, nil
}

func requiredFloat(t *Table, r Row, col string) (float64, error) {
	if t.Value(r, col) == "" {
		return 0, cellError(t, r, col, ErrMissingRequiredValue)
	}
	f, err := optionalFloat(t, r, col)
	if err != nil {
		return 0, err
	}
	return *f, nil
}

// optionalInt accepts whole numbers written either as "15" or "15.0".
func optionalInt(t *Table, r Row, col string) (*int64, error) {
	v := t.Value(r, col)
	if v == "" {
		return nil, nil
	}
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return &n, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return nil, cellError(t, r, col, fmt.Errorf("%w: %q is not a whole number", ErrInvalidValue, v))
	}
	n := int64(f)
	return &n, nil
}

// resolveGenes converts the genes sheet. Every row needs a name.
func resolveGenes(t *Table) ([]models.Gene, error) {
	genes := make([]models.Gene, 0, len(t.Rows))
	for _, r := range t.Rows {
		name, err := required(t, r, "name")
		if err != nil {
			return nil, err
		}
		genes = append(genes, models.Gene{
			Name:        name,
			Description: optional(t, r, "description"),
		})
	}
	return genes, nil
}

// resolveMutants converts the mutants sheet against committed genes. Rows
// naming an unknown gene are skipped with a warning.
func resolveMutants(t *Table, genes nameIndex) ([]models.Mutant, []Warning, error) {
	var (
		mutants  = make([]models.Mutant, 0, len(t.Rows))
		warnings []Warning
	)
	for _, r := range t.Rows {
		geneName, err := required(t, r, "gene_name")
		if err != nil {
			return nil, nil, err
		}
		mutantName, err := required(t, r, "mutant_name")
		if err != nil {
			return nil, nil, err
		}

		geneID, ok := genes[geneName]
		if !ok {
			warnings = append(warnings, Warning{
				Sheet:  t.Name,
				Row:    r.Line,
				Reason: fmt.Sprintf("gene %q not found for mutant %q", geneName, mutantName),
			})
			continue
		}
		mutants = append(mutants, models.Mutant{
			GeneID:     geneID,
			MutantName: mutantName,
			Phenotype:  optional(t, r, "phenotype"),
			ImagePath:  optional(t, r, "image_path"),
		})
	}
	return mutants, warnings, nil
}

// lookupMutant resolves a child row's mutant_name. A blank or unknown name
// yields a Warning instead of an error.
func lookupMutant(t *Table, r Row, mutants nameIndex, kind string) (int64, Warning, bool) {
	name := t.Value(r, "mutant_name")
	reason := fmt.Sprintf("mutant %q not found for %s", name, kind)
	if name == "" {
		reason = "mutant name missing for " + kind
	}
	if id, ok := mutants[name]; ok && name != "" {
		return id, Warning{}, true
	}
	return 0, Warning{Sheet: t.Name, Row: r.Line, Reason: reason}, false
}

// resolveSizeMetrics converts the size_metrics sheet. A row with a blank or
// unknown mutant_name is skipped. Every measurement is optional; blank cells
// stay nil.
func resolveSizeMetrics(t *Table, mutants nameIndex) ([]models.SizeMetric, []Warning, error) {
	var (
		metrics  = make([]models.SizeMetric, 0, len(t.Rows))
		warnings []Warning
		err      error
	)
	for _, r := range t.Rows {
		mutantID, w, ok := lookupMutant(t, r, mutants, "size metric")
		if !ok {
			warnings = append(warnings, w)
			continue
		}

		sm := models.SizeMetric{MutantID: mutantID}
		for _, f := range []struct {
			col string
			dst **float64
		}{
			{"age_dpf", &sm.AgeDPF},
			{"body_length", &sm.BodyLength},
			{"head_width", &sm.HeadWidth},
			{"tail_length", &sm.TailLength},
			{"weight_mg", &sm.WeightMg},
		} {
			if *f.dst, err = optionalFloat(t, r, f.col); err != nil {
				return nil, nil, err
			}
		}
		if sm.SampleSize, err = optionalInt(t, r, "sample_size"); err != nil {
			return nil, nil, err
		}
		metrics = append(metrics, sm)
	}
	return metrics, warnings, nil
}

type seriesKey struct {
	mutantID     int64
	behaviorType string
}

// resolveBehaviorData converts the behavior_data sheet. A row with a blank
// or unknown mutant_name is skipped; every other column is required. A unit that differs from the first unit seen for the same mutant
// and behavior_type is imported as-is and reported as a warning.
func resolveBehaviorData(t *Table, mutants nameIndex) ([]models.BehaviorData, []Warning, error) {
	var (
		data     = make([]models.BehaviorData, 0, len(t.Rows))
		warnings []Warning
		units    = make(map[seriesKey]string)
		err      error
	)
	for _, r := range t.Rows {
		mutantID, w, ok := lookupMutant(t, r, mutants, "behavior data")
		if !ok {
			warnings = append(warnings, w)
			continue
		}

		b := models.BehaviorData{MutantID: mutantID}
		if b.BehaviorType, err = required(t, r, "behavior_type"); err != nil {
			return nil, nil, err
		}
		if b.TimePoint, err = requiredFloat(t, r, "time_point"); err != nil {
			return nil, nil, err
		}
		if b.Value, err = requiredFloat(t, r, "value"); err != nil {
			return nil, nil, err
		}
		if b.Unit, err = required(t, r, "unit"); err != nil {
			return nil, nil, err
		}

		key := seriesKey{mutantID, b.BehaviorType}
		if first, seen := units[key]; !seen {
			units[key] = b.Unit
		} else if first != b.Unit {
			warnings = append(warnings, Warning{
				Sheet: t.Name,
				Row:   r.Line,
				Reason: fmt.Sprintf("unit %q for %s of mutant %q differs from first unit %q",
					b.Unit, b.BehaviorType, t.Value(r, "mutant_name"), first),
			})
		}
		data = append(data, b)
	}
	return data, warnings, nil
}
