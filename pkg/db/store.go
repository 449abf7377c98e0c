package db

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"liyu1981.xyz/battery-tracking-service/pkg/common"
	"liyu1981.xyz/battery-tracking-service/pkg/errs"
	"liyu1981.xyz/battery-tracking-service/pkg/tabular"
)

const insertBatchSize = 200

var _ tabular.Store = (*DB)(nil)

func (d *DB) EnsureTable(name string, columns []string) error {
	if err := tabular.ValidateColumns(name, columns); err != nil {
		return err
	}

	schema := TableSchema{Name: name, Columns: datatypes.JSONSlice[string](columns)}
	err := d.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&schema).Error

	return errs.Storage(name, "ensure", err)
}

func (d *DB) schema(name, op string) (*TableSchema, error) {
	var schema TableSchema
	if err := d.Conn.First(&schema, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.Storage(name, op, errs.ErrTableNotInitialized)
		}
		return nil, errs.Storage(name, op, err)
	}
	return &schema, nil
}

func (d *DB) ReadTable(name string) (*tabular.Table, error) {
	schema, err := d.schema(name, "read")
	if err != nil {
		return nil, err
	}

	var records []TableRow
	if err := d.Conn.
		Where("table_name = ?", name).
		Order("position asc").
		Find(&records).Error; err != nil {
		return nil, errs.Storage(name, "read", err)
	}

	columns := []string(schema.Columns)
	table := &tabular.Table{Name: name, Columns: columns, Rows: make([]tabular.Row, len(records))}
	for i, r := range records {
		table.Rows[i] = tabular.Bind(columns, tabular.Project(columns, r.Cells.Data()))
	}
	return table, nil
}

func (d *DB) WriteTable(name string, rows []tabular.Row) error {
	schema, err := d.schema(name, "write")
	if err != nil {
		return err
	}
	columns := []string(schema.Columns)

	records := make([]TableRow, len(rows))
	for i, r := range rows {
		records[i] = TableRow{
			Table:    name,
			Position: i,
			Cells:    datatypes.NewJSONType(tabular.Bind(columns, tabular.Project(columns, r))),
		}
	}

	err = d.Conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("table_name = ?", name).Delete(&TableRow{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.CreateInBatches(records, insertBatchSize).Error
	})
	if err != nil {
		return errs.Storage(name, "write", err)
	}

	common.GetLoggerWith(common.LoggerNameTabularStore, zap.String(common.LoggerFieldTable, name)).
		Debug("Table rows replaced", zap.Int("rows", len(rows)))
	return nil
}
