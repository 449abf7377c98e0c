package db

import (
	"gorm.io/datatypes"

	"liyu1981.xyz/battery-tracking-service/pkg/tabular"
)

type TableSchema struct {
	Name    string                      `gorm:"primaryKey"`
	Columns datatypes.JSONSlice[string] `gorm:"not null"`
}

type TableRow struct {
	ID       uint                            `gorm:"primaryKey"`
	Table    string                          `gorm:"column:table_name;not null;index:idx_table_position,priority:1"`
	Position int                             `gorm:"not null;index:idx_table_position,priority:2"`
	Cells    datatypes.JSONType[tabular.Row] `gorm:"not null"`
}
