package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"liyu1981.xyz/battery-tracking-service/pkg/tabular"
)

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatOptionalFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339Nano)
}

func formatOptionalString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// parseOptionalFloat treats blank and non-numeric cells as absent. NaN and
// infinities count as non-numeric.
func parseOptionalFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func parseOptionalTime(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

func parseOptionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (b *Battery) Row() tabular.Row {
	return tabular.Row{
		"id":                strconv.Itoa(b.ID),
		"product_number":    b.ProductNumber,
		"current_voltage":   formatOptionalFloat(b.CurrentVoltage),
		"last_checked_date": formatOptionalTime(b.LastCheckedDate),
		"packing_month":     formatOptionalString(b.PackingMonth),
		"status":            string(b.Status),
		"total_checks":      strconv.Itoa(b.TotalChecks),
	}
}

func BatteryFromRow(row tabular.Row) (Battery, error) {
	id, err := tabular.ParseInt(row["id"])
	if err != nil {
		return Battery{}, fmt.Errorf("battery id: %w", err)
	}

	totalChecks := 0
	if strings.TrimSpace(row["total_checks"]) != "" {
		if totalChecks, err = tabular.ParseInt(row["total_checks"]); err != nil {
			return Battery{}, fmt.Errorf("battery %d total_checks: %w", id, err)
		}
	}

	return Battery{
		ID:              id,
		ProductNumber:   row["product_number"],
		CurrentVoltage:  parseOptionalFloat(row["current_voltage"]),
		LastCheckedDate: parseOptionalTime(row["last_checked_date"]),
		PackingMonth:    parseOptionalString(row["packing_month"]),
		Status:          BatteryStatus(row["status"]),
		TotalChecks:     totalChecks,
	}, nil
}

func (c *Check) Row() tabular.Row {
	return tabular.Row{
		"id":                   strconv.Itoa(c.ID),
		"battery_id":           strconv.Itoa(c.BatteryID),
		"voltage_reading":      formatFloat(c.VoltageReading),
		"voltage_during_check": formatOptionalFloat(c.VoltageDuringCheck),
		"checked_by":           c.CheckedBy,
		"notes":                formatOptionalString(c.Notes),
		"checked_at":           c.CheckedAt.Format(time.RFC3339Nano),
	}
}

func CheckFromRow(row tabular.Row) (Check, error) {
	id, err := tabular.ParseInt(row["id"])
	if err != nil {
		return Check{}, fmt.Errorf("check id: %w", err)
	}
	batteryID, err := tabular.ParseInt(row["battery_id"])
	if err != nil {
		return Check{}, fmt.Errorf("check %d battery_id: %w", id, err)
	}

	check := Check{
		ID:                 id,
		BatteryID:          batteryID,
		VoltageDuringCheck: parseOptionalFloat(row["voltage_during_check"]),
		CheckedBy:          row["checked_by"],
		Notes:              parseOptionalString(row["notes"]),
	}
	if v := parseOptionalFloat(row["voltage_reading"]); v != nil {
		check.VoltageReading = *v
	}
	if t := parseOptionalTime(row["checked_at"]); t != nil {
		check.CheckedAt = *t
	}
	return check, nil
}

func (s *Stakeholder) Row() tabular.Row {
	return tabular.Row{
		"id":    strconv.Itoa(s.ID),
		"name":  s.Name,
		"email": s.Email,
	}
}

func StakeholderFromRow(row tabular.Row) (Stakeholder, error) {
	id, err := tabular.ParseInt(row["id"])
	if err != nil {
		return Stakeholder{}, fmt.Errorf("stakeholder id: %w", err)
	}
	return Stakeholder{ID: id, Name: row["name"], Email: row["email"]}, nil
}

// RowID reads the id column without decoding the rest of the row.
func RowID(row tabular.Row) (int, bool) {
	id, err := tabular.ParseInt(row["id"])
	return id, err == nil
}
