package report

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liyu1981.xyz/battery-tracking-service/pkg/common"
	"liyu1981.xyz/battery-tracking-service/pkg/models"
)

func sample() []models.Battery {
	return []models.Battery{
		{ID: 3, ProductNumber: "BX-3", CurrentVoltage: common.Ptr(9.8), Status: models.BatteryStatusActive},
		{ID: 1, ProductNumber: "BX-1", CurrentVoltage: common.Ptr(12.6), Status: models.BatteryStatusActive, TotalChecks: 2},
		{ID: 2, ProductNumber: "BX-2", CurrentVoltage: common.Ptr(10.49), Status: models.BatteryStatusSPD, PackingMonth: common.Ptr("2024-02")},
		{ID: 4, ProductNumber: "BX-4", Status: models.BatteryStatusProduction},
	}
}

func TestCritical(t *testing.T) {
	got := Critical(sample())
	require.Len(t, got, 2)
	assert.Equal(t, 3, got[0].ID)
	assert.Equal(t, 2, got[1].ID)

	assert.Empty(t, Critical(nil))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sample()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5)
	assert.Equal(t, models.BatteryColumns, records[0])
	assert.Equal(t, []string{"1", "BX-1", "12.6", "", "", "active", "2"}, records[2])
	assert.Equal(t, []string{"2", "BX-2", "10.49", "", "2024-02", "SPD", "0"}, records[3])
	assert.Equal(t, "", records[4][2])
}

func TestSummary(t *testing.T) {
	batteries := sample()
	d := models.Summarize(batteries)

	text := Summary(&d, Critical(batteries))
	assert.Contains(t, text, "Total batteries: 4\n")
	assert.Contains(t, text, "Critical: 2\n")
	assert.Contains(t, text, "- #2 BX-2 10.49V (SPD)\n- #3 BX-3 9.80V (active)\n")

	text = Summary(&models.Dashboard{}, nil)
	assert.Contains(t, text, "No batteries need charging.")
}
