package inventory

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"liyu1981.xyz/battery-tracking-service/pkg/inventory/mocks"
	"liyu1981.xyz/battery-tracking-service/pkg/tabular"
)

var fixedNow = time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

func GetMockInventoryWithMemoryStore(t *testing.T, useMockIBattery, useMockIStakeholder bool) (
	*gomock.Controller,
	*Inventory,
	*tabular.Memory,
	*mocks.MockIBattery,
	*mocks.MockIStakeholder,
) {
	ctrl := gomock.NewController(t)

	mockIBattery := mocks.NewMockIBattery(ctrl)
	mockIStakeholder := mocks.NewMockIStakeholder(ctrl)

	store := tabular.NewMemory()
	inventoryInstance, err := New(store)
	require.NoError(t, err)
	inventoryInstance.Now = func() time.Time { return fixedNow }

	batteryService := inventoryInstance.GetIBattery()
	if useMockIBattery {
		batteryService = mockIBattery
	}

	stakeholderService := inventoryInstance.GetIStakeholder()
	if useMockIStakeholder {
		stakeholderService = mockIStakeholder
	}

	inventoryInstance.WithServices(ServiceOpts{
		Battery:     batteryService,
		Stakeholder: stakeholderService,
	})

	return ctrl, inventoryInstance, store, mockIBattery, mockIStakeholder
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}

func ptr[T any](v T) *T { return &v }
