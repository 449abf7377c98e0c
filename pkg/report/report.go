package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strings"

	"liyu1981.xyz/battery-tracking-service/pkg/models"
)

// Critical returns the batteries whose status color is red, in input order.
func Critical(batteries []models.Battery) []models.Battery {
	out := make([]models.Battery, 0)
	for i := range batteries {
		if batteries[i].Color() == models.StatusColorRed {
			out = append(out, batteries[i])
		}
	}
	return out
}

// WriteCSV writes the inventory with the storage column order as header,
// using the same cell encoding as the tables.
func WriteCSV(w io.Writer, batteries []models.Battery) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(models.BatteryColumns); err != nil {
		return err
	}
	for i := range batteries {
		row := batteries[i].Row()
		record := make([]string, len(models.BatteryColumns))
		for j, col := range models.BatteryColumns {
			record[j] = row[col]
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatVoltage(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2fV", *v)
}

// Summary renders the plain-text body sent to stakeholders.
func Summary(d *models.Dashboard, critical []models.Battery) string {
	var sb strings.Builder

	sb.WriteString("Battery status report\n\n")
	fmt.Fprintf(&sb, "Total batteries: %d\n", d.Total)
	fmt.Fprintf(&sb, "Active: %d\n", d.Active)
	fmt.Fprintf(&sb, "Low voltage: %d\n", d.LowVoltage)
	fmt.Fprintf(&sb, "Critical: %d\n", d.Critical)

	if len(critical) == 0 {
		sb.WriteString("\nNo batteries need charging.\n")
		return sb.String()
	}

	sorted := slices.Clone(critical)
	slices.SortStableFunc(sorted, func(a, b models.Battery) int { return a.ID - b.ID })

	sb.WriteString("\nBatteries needing charge:\n")
	for _, b := range sorted {
		fmt.Fprintf(&sb, "- #%d %s %s (%s)\n", b.ID, b.ProductNumber, formatVoltage(b.CurrentVoltage), b.Status)
	}
	return sb.String()
}
