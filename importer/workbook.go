// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package importer

import "strings"

// Sheet names, in import order.
const (
	SheetGenes        = "genes"
	SheetMutants      = "mutants"
	SheetSizeMetrics  = "size_metrics"
	SheetBehaviorData = "behavior_data"
)

// Sheets lists the four sections of an import source in dependency order.
var Sheets = []string{SheetGenes, SheetMutants, SheetSizeMetrics, SheetBehaviorData}

// Row is one data row. Line is the 1-based row number in the source, so the
// first row after the header is line 2.
type Row struct {
	Line  int
	Cells []string
}

// Table is one named section: a header and its data rows.
type Table struct {
	Name   string
	Header []string
	Rows   []Row

	columns map[string]int
}

func NewTable(name string, header []string) *Table {
	t := &Table{Name: name, columns: make(map[string]int)}
	for i, h := range header {
		h = strings.TrimSpace(h)
		t.Header = append(t.Header, h)
		if _, dup := t.columns[h]; !dup && h != "" {
			t.columns[h] = i
		}
	}
	return t
}

// AddRow appends a data row. Rows whose cells are all blank are dropped.
func (t *Table) AddRow(line int, cells []string) {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			t.Rows = append(t.Rows, Row{Line: line, Cells: cells})
			return
		}
	}
}

func (t *Table) HasColumn(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// Value returns the trimmed cell of row r under column col, or "" when the
// column is absent or the row is short.
func (t *Table) Value(r Row, col string) string {
	i, ok := t.columns[col]
	if !ok || i >= len(r.Cells) {
		return ""
	}
	return strings.TrimSpace(r.Cells[i])
}

// Workbook is an import source: named tables in the order they were read.
type Workbook struct {
	tables map[string]*Table
	order  []string
}

func NewWorkbook() *Workbook {
	return &Workbook{tables: make(map[string]*Table)}
}

// Add stores t, replacing any table with the same name.
func (wb *Workbook) Add(t *Table) {
	if _, ok := wb.tables[t.Name]; !ok {
		wb.order = append(wb.order, t.Name)
	}
	wb.tables[t.Name] = t
}

func (wb *Workbook) Table(name string) (*Table, bool) {
	t, ok := wb.tables[name]
	return t, ok
}

// Names returns table names in read order.
func (wb *Workbook) Names() []string {
	return append([]string(nil), wb.order...)
}
