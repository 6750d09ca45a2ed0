// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package importer

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// TemplateWorkbook returns the four-sheet skeleton with example rows.
func TemplateWorkbook() *Workbook {
	wb := NewWorkbook()

	genes := NewTable(SheetGenes, []string{"name", "description"})
	genes.AddRow(2, []string{"sox10", "SRY-box transcription factor 10"})
	genes.AddRow(3, []string{"mitfa", "Melanogenesis associated transcription factor"})
	genes.AddRow(4, []string{"fgf8", "Fibroblast growth factor 8"})
	wb.Add(genes)

	mutants := NewTable(SheetMutants, []string{"gene_name", "mutant_name", "phenotype", "image_path"})
	mutants.AddRow(2, []string{"sox10", "sox10-/-", "Pigmentation defects, no melanocytes", "/static/images/sox10.jpg"})
	mutants.AddRow(3, []string{"mitfa", "mitfa-/-", "Nacre, lack of melanophores", "/static/images/mitfa.jpg"})
	mutants.AddRow(4, []string{"fgf8", "fgf8-/-", "Brain and jaw defects", "/static/images/fgf8.jpg"})
	wb.Add(mutants)

	sizes := NewTable(SheetSizeMetrics, []string{
		"mutant_name", "age_dpf", "body_length", "head_width", "tail_length", "weight_mg", "sample_size",
	})
	sizes.AddRow(2, []string{"sox10-/-", "1", "3.2", "0.35", "2", "2.5", "15"})
	sizes.AddRow(3, []string{"sox10-/-", "2", "3.8", "0.4", "2.5", "4.2", "20"})
	sizes.AddRow(4, []string{"sox10-/-", "3", "4.5", "0.45", "3", "6.8", "18"})
	sizes.AddRow(5, []string{"mitfa-/-", "1", "3.5", "0.38", "2.2", "2.8", "12"})
	sizes.AddRow(6, []string{"mitfa-/-", "2", "4.1", "0.43", "2.7", "4.5", "16"})
	wb.Add(sizes)

	behavior := NewTable(SheetBehaviorData, []string{"mutant_name", "behavior_type", "time_point", "value", "unit"})
	behavior.AddRow(2, []string{"sox10-/-", "swimming_speed", "0", "10.5", "mm/s"})
	behavior.AddRow(3, []string{"sox10-/-", "swimming_speed", "2", "12.3", "mm/s"})
	behavior.AddRow(4, []string{"sox10-/-", "swimming_speed", "4", "11.8", "mm/s"})
	behavior.AddRow(5, []string{"mitfa-/-", "startle_response", "0", "75.2", "%"})
	behavior.AddRow(6, []string{"mitfa-/-", "startle_response", "2", "68.5", "%"})
	wb.Add(behavior)

	return wb
}

// WriteTemplate writes TemplateWorkbook as .xlsx to w.
func WriteTemplate(w io.Writer) error {
	return WriteXLSX(TemplateWorkbook(), w)
}

// WriteXLSX writes wb as an .xlsx workbook, one sheet per table. Cells that
// parse as numbers are stored as numbers.
func WriteXLSX(wb *Workbook, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	for i, name := range wb.Names() {
		t, _ := wb.Table(name)
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, name); err != nil {
				return fmt.Errorf("failed to name sheet %q: %w", name, err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to add sheet %q: %w", name, err)
		}

		header := make([]interface{}, len(t.Header))
		for j, h := range t.Header {
			header[j] = h
		}
		if err := f.SetSheetRow(name, "A1", &header); err != nil {
			return fmt.Errorf("failed to write %s header: %w", name, err)
		}

		for j, row := range t.Rows {
			cell, err := excelize.CoordinatesToCellName(1, j+2)
			if err != nil {
				return err
			}
			values := make([]interface{}, len(row.Cells))
			for k, c := range row.Cells {
				values[k] = cellValue(c)
			}
			if err := f.SetSheetRow(name, cell, &values); err != nil {
				return fmt.Errorf("failed to write %s row %d: %w", name, j+2, err)
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func cellValue(s string) interface{} {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
