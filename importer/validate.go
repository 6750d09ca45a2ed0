// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package importer

import (
	"errors"
	"fmt"
	"strings"
)

// ErrShapeInvalid matches every ShapeError.
var ErrShapeInvalid = errors.New("import source has an invalid shape")

// RequiredColumns lists the columns each sheet must carry. Other columns
// (image_path, head_width, tail_length, weight_mg, sample_size) are read when
// present.
//
// Column presence is stricter than cell content: size_metrics must have the
// age_dpf and body_length columns, but a row may leave either cell blank.
var RequiredColumns = map[string][]string{
	SheetGenes:        {"name", "description"},
	SheetMutants:      {"gene_name", "mutant_name", "phenotype"},
	SheetSizeMetrics:  {"mutant_name", "age_dpf", "body_length"},
	SheetBehaviorData: {"mutant_name", "behavior_type", "time_point", "value", "unit"},
}

// ShapeError lists every missing sheet and, for sheets that are present,
// every missing required column.
type ShapeError struct {
	MissingSheets  []string
	MissingColumns map[string][]string
}

func (e *ShapeError) Error() string {
	var parts []string
	if len(e.MissingSheets) > 0 {
		parts = append(parts, "missing sheets: "+strings.Join(e.MissingSheets, ", "))
	}
	for _, sheet := range Sheets {
		if cols := e.MissingColumns[sheet]; len(cols) > 0 {
			parts = append(parts, fmt.Sprintf("sheet %q missing columns: %s", sheet, strings.Join(cols, ", ")))
		}
	}
	return strings.Join(parts, "; ")
}

func (e *ShapeError) Is(target error) bool {
	return target == ErrShapeInvalid
}

// Validate checks that wb has all four sheets with their required columns.
// It returns a *ShapeError or nil and never touches the store.
func Validate(wb *Workbook) error {
	shape := &ShapeError{MissingColumns: make(map[string][]string)}
	for _, sheet := range Sheets {
		t, ok := wb.Table(sheet)
		if !ok {
			shape.MissingSheets = append(shape.MissingSheets, sheet)
			continue
		}
		for _, col := range RequiredColumns[sheet] {
			if !t.HasColumn(col) {
				shape.MissingColumns[sheet] = append(shape.MissingColumns[sheet], col)
			}
		}
	}

	if len(shape.MissingSheets) == 0 && len(shape.MissingColumns) == 0 {
		return nil
	}
	return shape
}
