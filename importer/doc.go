// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package importer bulk-loads the catalog from a spreadsheet.

# Sources

A source is a Workbook with four sheets: genes, mutants, size_metrics and
behavior_data. The first row of every sheet is its header.

	wb, err := importer.Open("catalog.xlsx") // or a directory of <sheet>.csv files

TemplateWorkbook and WriteTemplate produce a valid skeleton with example
rows.

# Validation

Validate checks that every sheet exists and carries its RequiredColumns. A
failure is a *ShapeError naming each missing sheet and column; it matches
ErrShapeInvalid. Nothing is written when validation fails.

# Pipeline

	report, err := importer.NewPipeline(st).Run(ctx, wb, importer.Options{Clear: true})

Stages run in order: genes, mutants, size_metrics, behavior_data. Each stage
reads a name to id index of the rows already committed, resolves its sheet
against that index without touching the store, then inserts everything in
one transaction.

Row handling:

  - a child row naming an unknown gene or mutant is skipped with a Warning,
    as is a size_metrics or behavior_data row with a blank mutant_name
  - an empty required cell fails the stage with ErrMissingRequiredValue
  - text in a numeric cell fails the stage with ErrInvalidValue
  - a duplicate gene or mutant name fails the stage with store.ErrDuplicateKey
  - an empty optional numeric cell is stored as NULL
  - a behavior unit that differs from the first unit of its series is
    imported and flagged with a Warning

A failed stage is rolled back and returned as a *StageError. Stages that
already committed stay committed; the Report carries their counts.
*/
package importer
