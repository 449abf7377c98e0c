// Package sheet stores each table as an xlsx workbook in a data directory.
// Row 1 of the first worksheet holds the column names, every later row is a
// record. Every write rebuilds the workbook and renames it into place.
package sheet

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"liyu1981.xyz/battery-tracking-service/pkg/common"
	"liyu1981.xyz/battery-tracking-service/pkg/errs"
	"liyu1981.xyz/battery-tracking-service/pkg/tabular"
)

const (
	fileExt = ".xlsx"
	// excel rejects longer worksheet names
	maxSheetName = 31
)

var _ tabular.Store = (*Store)(nil)

type Store struct {
	Dir string
}

func New(dir string) *Store {
	return &Store{Dir: dir}
}

func (s *Store) Path(name string) string {
	return filepath.Join(s.Dir, name+fileExt)
}

func (s *Store) EnsureTable(name string, columns []string) error {
	if err := tabular.ValidateColumns(name, columns); err != nil {
		return err
	}

	path := s.Path(name)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return errs.Storage(name, "ensure", err)
	}

	if err := os.MkdirAll(s.Dir, os.ModePerm); err != nil {
		return errs.Storage(name, "ensure", err)
	}

	if err := s.save(name, columns, nil); err != nil {
		return errs.Storage(name, "ensure", err)
	}

	common.GetLoggerWith(common.LoggerNameTabularStore, zap.String(common.LoggerFieldTable, name)).
		Info("Created workbook", zap.String("path", path), zap.Strings("columns", columns))
	return nil
}

func (s *Store) ReadTable(name string) (*tabular.Table, error) {
	path := s.Path(name)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, errs.Storage(name, "read", fmt.Errorf("%w: %s", errs.ErrTableNotInitialized, path))
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errs.Storage(name, "read", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errs.Storage(name, "read", fmt.Errorf("workbook %s has no worksheet", path))
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errs.Storage(name, "read", err)
	}
	if len(records) == 0 || tabular.IsBlank(records[0]) {
		return nil, errs.Storage(name, "read", fmt.Errorf("workbook %s has no header row", path))
	}

	table := &tabular.Table{Name: name, Columns: records[0]}
	for _, cells := range records[1:] {
		if tabular.IsBlank(cells) {
			continue
		}
		table.Rows = append(table.Rows, tabular.Bind(table.Columns, cells))
	}
	return table, nil
}

func (s *Store) WriteTable(name string, rows []tabular.Row) error {
	current, err := s.ReadTable(name)
	if err != nil {
		return errs.Storage(name, "write", err)
	}

	if err := s.save(name, current.Columns, rows); err != nil {
		return errs.Storage(name, "write", err)
	}

	common.GetLoggerWith(common.LoggerNameTabularStore, zap.String(common.LoggerFieldTable, name)).
		Debug("Workbook written", zap.Int("rows", len(rows)))
	return nil
}

// checkCell rejects text that excelize would truncate or rewrite, so a
// workbook always reads back exactly what was written.
func checkCell(v string) error {
	if !utf8.ValidString(v) {
		return errors.New("cell is not valid UTF-8")
	}
	if n := utf8.RuneCountInString(v); n > excelize.TotalCellChars {
		return fmt.Errorf("cell has %d characters, a workbook cell holds at most %d", n, excelize.TotalCellChars)
	}
	for _, r := range v {
		if !isXMLChar(r) {
			return fmt.Errorf("cell contains control character %U", r)
		}
	}
	return nil
}

func isXMLChar(r rune) bool {
	return r == '\t' || r == '\n' || r == '\r' ||
		(r >= 0x20 && r <= 0xD7FF) ||
		(r >= 0xE000 && r <= 0xFFFD) ||
		(r >= 0x10000 && r <= 0x10FFFF)
}

func (s *Store) save(name string, columns []string, rows []tabular.Row) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := name
	if len(sheetName) > maxSheetName {
		sheetName = sheetName[:maxSheetName]
	}
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return err
	}

	header := append([]string(nil), columns...)
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := tabular.Project(columns, row)
		for j, v := range values {
			if err := checkCell(v); err != nil {
				return fmt.Errorf("row %d column %s: %w", i+1, columns[j], err)
			}
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return err
		}
	}

	tmp, err := os.CreateTemp(s.Dir, "."+name+"-*"+fileExt)
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := f.Write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpPath, s.Path(name))
}
