// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedSource is returned by Open for paths that are neither an
// .xlsx workbook nor a directory of CSV files.
var ErrUnsupportedSource = errors.New("unsupported import source")

// Open loads an import source from path. A directory is read with
// ReadCSVDir, an .xlsx or .xlsm file with ReadXLSX.
func Open(path string) (*Workbook, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open source: %w", err)
	}
	if info.IsDir() {
		return ReadCSVDir(path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open source: %w", err)
	}
	defer f.Close()
	return ReadXLSX(f)
}

// ReadXLSX reads every sheet of a workbook. The first row of each sheet is
// its header. Cell values are read raw, without number formatting, so
// numeric cells come back in their stored form.
func ReadXLSX(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read workbook: %w", err)
	}
	defer f.Close()

	wb := NewWorkbook()
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
		}
		wb.Add(tableFromRecords(name, rows))
	}
	return wb, nil
}

// ReadCSVDir reads <sheet>.csv for each of the four sheets from dir. Missing
// files are left out of the workbook and reported later by Validate.
func ReadCSVDir(dir string) (*Workbook, error) {
	wb := NewWorkbook()
	for _, name := range Sheets {
		path := filepath.Join(dir, name+".csv")
		records, err := readCSVFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		wb.Add(tableFromRecords(name, records))
	}
	return wb, nil
}

func readCSVFile(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	if len(records) > 0 && len(records[0]) > 0 {
		records[0][0] = strings.TrimPrefix(records[0][0], "\ufeff")
	}
	return records, nil
}

func tableFromRecords(name string, records [][]string) *Table {
	if len(records) == 0 {
		return NewTable(name, nil)
	}
	t := NewTable(name, records[0])
	for i, rec := range records[1:] {
		t.AddRow(i+2, rec)
	}
	return t
}
