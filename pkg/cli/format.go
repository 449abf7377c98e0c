package cli

import (
	"fmt"
	"strconv"
	"time"

	"liyu1981.xyz/battery-tracking-service/pkg/errs"
	"liyu1981.xyz/battery-tracking-service/pkg/models"
	"liyu1981.xyz/battery-tracking-service/pkg/ui"
)

var batteryHeaders = []string{"ID", "PRODUCT", "VOLTAGE", "HEALTH", "STATUS", "LAST CHECK", "DAYS", "CHECKS", "PACKED"}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errs.Validation("id", fmt.Sprintf("must be an integer, got %q", arg))
	}
	return id, nil
}

func parseVoltage(field, arg string) (float64, error) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, errs.Validation(field, fmt.Sprintf("must be a number, got %q", arg))
	}
	return v, nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func formatVoltage(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2fV", *v)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

func formatDays(days *int) string {
	if days == nil {
		return "-"
	}
	return strconv.Itoa(*days)
}

func batteryRow(u ui.UI, b *models.Battery, now time.Time) []string {
	packed := "-"
	if b.PackingMonth != nil {
		packed = *b.PackingMonth
	}
	return []string{
		strconv.Itoa(b.ID),
		b.ProductNumber,
		formatVoltage(b.CurrentVoltage),
		u.Status(b.Color()),
		orDash(string(b.Status)),
		formatDate(b.LastCheckedDate),
		formatDays(b.DaysSinceCheck(now)),
		strconv.Itoa(b.TotalChecks),
		packed,
	}
}

func batteryTable(u ui.UI, batteries []models.Battery, now time.Time) string {
	rows := make([][]string, 0, len(batteries))
	for i := range batteries {
		rows = append(rows, batteryRow(u, &batteries[i], now))
	}
	return u.Table(batteryHeaders, rows)
}

func batteryDetail(u ui.UI, b *models.Battery, now time.Time) string {
	row := batteryRow(u, b, now)
	pairs := make([][]string, len(batteryHeaders))
	for i, h := range batteryHeaders {
		pairs[i] = []string{u.Bold(h), row[i]}
	}
	return u.Table([]string{"FIELD", "VALUE"}, pairs)
}
