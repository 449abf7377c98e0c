// Package tabular describes named tables with a fixed column schema that are
// always read and replaced whole. Backends live in pkg/sheet (xlsx
// workbooks) and pkg/db (gorm/sqlite); Memory is kept here for tests.
package tabular

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"liyu1981.xyz/battery-tracking-service/pkg/errs"
)

// Row maps column name to cell text. Absent values are empty strings.
type Row map[string]string

func (r Row) Clone() Row {
	out := make(Row, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

type Table struct {
	Name    string
	Columns []string
	Rows    []Row
}

type Store interface {
	// EnsureTable creates the table with exactly columns when it does not
	// exist yet. An existing table is left as is, even if its columns differ.
	EnsureTable(name string, columns []string) error
	// ReadTable loads the whole table in storage order.
	ReadTable(name string) (*Table, error)
	// WriteTable replaces every row of the table. Keys outside the table
	// columns are ignored, missing keys are written empty.
	WriteTable(name string, rows []Row) error
}

// AppendRow reads the table, appends row and writes it back. Two callers
// racing here can lose one of the rows.
func AppendRow(s Store, name string, row Row) (*Table, error) {
	table, err := s.ReadTable(name)
	if err != nil {
		return nil, err
	}
	table.Rows = append(table.Rows, row)
	if err := s.WriteTable(name, table.Rows); err != nil {
		return nil, err
	}
	return table, nil
}

// ParseInt accepts "3" as well as "3.0", which spreadsheet tools like to
// write back for integer columns.
func ParseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) ||
		f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("invalid integer %q", s)
	}
	return int(f), nil
}

// NextID returns 1 for an empty table and max(id)+1 otherwise. Cells are
// read with ParseInt, the same way rows are decoded; the rest are skipped.
func NextID(rows []Row, idField string) int {
	maxID := 0
	for _, row := range rows {
		id, err := ParseInt(row[idField])
		if err != nil {
			continue
		}
		if id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

// Project orders row values by columns.
func Project(columns []string, row Row) []string {
	cells := make([]string, len(columns))
	for i, c := range columns {
		cells[i] = row[c]
	}
	return cells
}

// Bind is the inverse of Project. Short records leave trailing columns empty.
func Bind(columns []string, cells []string) Row {
	row := make(Row, len(columns))
	for i, c := range columns {
		if i < len(cells) {
			row[c] = cells[i]
		} else {
			row[c] = ""
		}
	}
	return row
}

func ValidateColumns(name string, columns []string) error {
	if strings.TrimSpace(name) == "" {
		return errs.Validation("table", "name must not be blank")
	}
	if len(columns) == 0 {
		return errs.Validation("columns", "must not be empty")
	}
	seen := make(map[string]bool, len(columns))
	for _, c := range columns {
		if c == "" || seen[c] {
			return errs.Validation("columns", "must be unique and non-empty")
		}
		seen[c] = true
	}
	return nil
}

func IsBlank(cells []string) bool {
	return !slices.ContainsFunc(cells, func(c string) bool { return strings.TrimSpace(c) != "" })
}
