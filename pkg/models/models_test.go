package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liyu1981.xyz/battery-tracking-service/pkg/tabular"
)

func f(v float64) *float64 { return &v }

func TestStatusColorFor(t *testing.T) {
	assert.Equal(t, StatusColorRed, StatusColorFor(f(10.4)))
	assert.Equal(t, StatusColorYellow, StatusColorFor(f(10.5)))
	assert.Equal(t, StatusColorYellow, StatusColorFor(f(10.9)))
	assert.Equal(t, StatusColorGreen, StatusColorFor(f(11.0)))
	assert.Equal(t, StatusColorGreen, StatusColorFor(f(12.7)))
	assert.Equal(t, StatusColorRed, StatusColorFor(f(0)))
	assert.Equal(t, StatusColorGray, StatusColorFor(nil))

	assert.Equal(t, "Critical", StatusColorRed.Label())
	assert.Equal(t, "Unknown", StatusColorGray.Label())
}

func TestDaysSinceCheck(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	b := Battery{}
	assert.Nil(t, b.DaysSinceCheck(now))

	checked := now.Add(-(3*24 + 5) * time.Hour)
	b.LastCheckedDate = &checked
	require.NotNil(t, b.DaysSinceCheck(now))
	assert.Equal(t, 3, *b.DaysSinceCheck(now))

	// clock skew: a check slightly in the future is day -1, not 0
	ahead := now.Add(2 * time.Hour)
	b.LastCheckedDate = &ahead
	assert.Equal(t, -1, *b.DaysSinceCheck(now))
}

func TestSummarizeAndCountColors(t *testing.T) {
	batteries := []Battery{
		{ID: 1, Status: BatteryStatusActive, CurrentVoltage: f(12)},
		{ID: 2, Status: "Active", CurrentVoltage: f(10.7)},
		{ID: 3, Status: BatteryStatusSPD, CurrentVoltage: f(9.9)},
		{ID: 4, Status: BatteryStatusProduction},
		{ID: 5, Status: BatteryStatusActive, CurrentVoltage: f(10.49)},
	}

	assert.Equal(t, Dashboard{Total: 5, Active: 3, LowVoltage: 1, Critical: 2}, Summarize(batteries))
	assert.Equal(t, ColorCounts{Red: 2, Yellow: 1, Green: 1, Gray: 1}, CountColors(batteries))
	assert.Equal(t, Dashboard{}, Summarize(nil))
}

func TestBatteryRowCodec(t *testing.T) {
	checked := time.Date(2024, 1, 2, 3, 4, 5, 6, time.UTC)
	month := "2024-01"
	b := Battery{
		ID: 12, ProductNumber: "BX-100", CurrentVoltage: f(10.25), LastCheckedDate: &checked,
		PackingMonth: &month, Status: BatteryStatusSPD, TotalChecks: 4,
	}

	row := b.Row()
	assert.Equal(t, "10.25", row["current_voltage"])
	assert.Equal(t, "2024-01-02T03:04:05.000000006Z", row["last_checked_date"])

	decoded, err := BatteryFromRow(row)
	require.NoError(t, err)
	assert.Equal(t, b.ID, decoded.ID)
	assert.Equal(t, *b.CurrentVoltage, *decoded.CurrentVoltage)
	assert.True(t, checked.Equal(*decoded.LastCheckedDate))
	assert.Equal(t, month, *decoded.PackingMonth)
	assert.Equal(t, b.Status, decoded.Status)
	assert.Equal(t, 4, decoded.TotalChecks)

	empty := Battery{ID: 1, ProductNumber: "P", Status: BatteryStatusActive}
	decoded, err = BatteryFromRow(empty.Row())
	require.NoError(t, err)
	assert.Nil(t, decoded.CurrentVoltage)
	assert.Nil(t, decoded.LastCheckedDate)
	assert.Nil(t, decoded.PackingMonth)
}

func TestBatteryFromLenientRow(t *testing.T) {
	decoded, err := BatteryFromRow(tabular.Row{
		"id": "3.0", "product_number": " 77 ", "current_voltage": "n/a",
		"last_checked_date": "2024-02-01 08:30:00", "total_checks": "",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, decoded.ID)
	assert.Equal(t, " 77 ", decoded.ProductNumber)
	assert.Nil(t, decoded.CurrentVoltage)
	require.NotNil(t, decoded.LastCheckedDate)
	assert.Equal(t, 8, decoded.LastCheckedDate.Hour())
	assert.Equal(t, 0, decoded.TotalChecks)

	_, err = BatteryFromRow(tabular.Row{"id": "x"})
	assert.Error(t, err)
	_, err = BatteryFromRow(tabular.Row{"id": "2.5"})
	assert.Error(t, err)
}

func TestCheckAndStakeholderCodec(t *testing.T) {
	notes := "swapped terminal"
	c := Check{
		ID: 1, BatteryID: 9, VoltageReading: 10.2, VoltageDuringCheck: f(9.8), CheckedBy: "Alice",
		Notes: &notes, CheckedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	decoded, err := CheckFromRow(c.Row())
	require.NoError(t, err)
	assert.Equal(t, c.BatteryID, decoded.BatteryID)
	assert.Equal(t, c.VoltageReading, decoded.VoltageReading)
	assert.Equal(t, 9.8, *decoded.VoltageDuringCheck)
	assert.Equal(t, notes, *decoded.Notes)
	assert.True(t, c.CheckedAt.Equal(decoded.CheckedAt))

	s := Stakeholder{ID: 2, Name: "Ops", Email: "ops@example.com"}
	ds, err := StakeholderFromRow(s.Row())
	require.NoError(t, err)
	assert.Equal(t, s, ds)

	id, ok := RowID(tabular.Row{"id": "5"})
	assert.True(t, ok)
	assert.Equal(t, 5, id)
	_, ok = RowID(tabular.Row{"id": ""})
	assert.False(t, ok)
}
