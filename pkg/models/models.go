package models

import "time"

type BatteryStatus string

const (
	BatteryStatusActive     BatteryStatus = "active"
	BatteryStatusSPD        BatteryStatus = "SPD"
	BatteryStatusProduction BatteryStatus = "production"
)

type Battery struct {
	ID              int           `json:"id"`
	ProductNumber   string        `json:"product_number"`
	CurrentVoltage  *float64      `json:"current_voltage"`
	LastCheckedDate *time.Time    `json:"last_checked_date"`
	PackingMonth    *string       `json:"packing_month"`
	Status          BatteryStatus `json:"status"`
	TotalChecks     int           `json:"total_checks"`
}

// Check is one voltage reading event. Rows are only ever appended.
type Check struct {
	ID                 int       `json:"id"`
	BatteryID          int       `json:"battery_id"`
	VoltageReading     float64   `json:"voltage_reading"`
	VoltageDuringCheck *float64  `json:"voltage_during_check"`
	CheckedBy          string    `json:"checked_by"`
	Notes              *string   `json:"notes"`
	CheckedAt          time.Time `json:"checked_at"`
}

type Stakeholder struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// VoltageUpdate carries the inputs of one check.
type VoltageUpdate struct {
	Reading            float64
	CheckedBy          string
	Notes              *string
	VoltageDuringCheck *float64
}

// BatteryFilter predicates are ANDed; nil or empty fields impose nothing.
type BatteryFilter struct {
	ProductQuery string
	Status       string
	VoltageMin   *float64
	VoltageMax   *float64
}

type Dashboard struct {
	Total      int `json:"total"`
	Active     int `json:"active"`
	LowVoltage int `json:"low_voltage"`
	Critical   int `json:"critical"`
}

type ColorCounts struct {
	Red    int `json:"red"`
	Yellow int `json:"yellow"`
	Green  int `json:"green"`
	Gray   int `json:"gray"`
}

var (
	BatteryColumns = []string{
		"id", "product_number", "current_voltage", "last_checked_date", "packing_month", "status", "total_checks",
	}
	CheckColumns = []string{
		"id", "battery_id", "voltage_reading", "voltage_during_check", "checked_by", "notes", "checked_at",
	}
	StakeholderColumns = []string{"id", "name", "email"}
)
