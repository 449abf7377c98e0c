package inventory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liyu1981.xyz/battery-tracking-service/pkg/common"
	"liyu1981.xyz/battery-tracking-service/pkg/db"
	"liyu1981.xyz/battery-tracking-service/pkg/models"
	"liyu1981.xyz/battery-tracking-service/pkg/sheet"
	"liyu1981.xyz/battery-tracking-service/pkg/tabular"
	_ "liyu1981.xyz/battery-tracking-service/pkg/testing"
)

func stores(t *testing.T) map[string]tabular.Store {
	t.Helper()

	sqlite, err := db.Open(db.UseMemorySqliteDialector())
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close() })

	return map[string]tabular.Store{
		"memory": tabular.NewMemory(),
		"sqlite": sqlite,
		"xlsx":   sheet.New(t.TempDir()),
	}
}

// one battery from intake to deletion, on every backend
func TestBatteryLifecycle(t *testing.T) {
	common.SetTestLoggerNop()

	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			inv, err := New(store)
			require.NoError(t, err)
			inv.Now = func() time.Time { return fixedNow }

			b, err := inv.Battery.Add("BX-100", ptr("2024-01"), ptr(12.0))
			require.NoError(t, err)
			assert.Equal(t, 1, b.ID)
			assert.Equal(t, models.BatteryStatusActive, b.Status)
			assert.Equal(t, 0, b.TotalChecks)

			b, err = inv.Battery.UpdateVoltage(1, &models.VoltageUpdate{Reading: 10.2, CheckedBy: "Alice"})
			require.NoError(t, err)
			assert.Equal(t, 10.2, *b.CurrentVoltage)
			assert.Equal(t, 1, b.TotalChecks)
			assert.Equal(t, models.StatusColorRed, b.Color())

			checks, err := inv.Battery.Checks(1)
			require.NoError(t, err)
			require.Len(t, checks, 1)
			assert.Equal(t, 1, checks[0].BatteryID)
			assert.Equal(t, 10.2, checks[0].VoltageReading)
			assert.Equal(t, "Alice", checks[0].CheckedBy)
			assert.True(t, fixedNow.Equal(checks[0].CheckedAt))

			b, err = inv.Battery.Handover(1, models.BatteryStatusSPD)
			require.NoError(t, err)
			assert.Equal(t, models.BatteryStatusSPD, b.Status)

			stored, err := inv.Battery.Scan("BX-100")
			require.NoError(t, err)
			require.NotNil(t, stored)
			assert.Equal(t, models.BatteryStatusSPD, stored.Status)
			assert.Equal(t, "2024-01", *stored.PackingMonth)

			removed, err := inv.Battery.Delete(1)
			require.NoError(t, err)
			assert.True(t, removed)

			gone, err := inv.Battery.Scan("1")
			require.NoError(t, err)
			assert.Nil(t, gone)

			checks, err = inv.Battery.Checks(1)
			require.NoError(t, err)
			assert.Len(t, checks, 1)
		})
	}
}
