package grpc

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"liyu1981.xyz/battery-tracking-service/pkg/common"
	"liyu1981.xyz/battery-tracking-service/pkg/errs"
	"liyu1981.xyz/battery-tracking-service/pkg/inventory"
	"liyu1981.xyz/battery-tracking-service/pkg/inventory/mocks"
	"liyu1981.xyz/battery-tracking-service/pkg/tabular"
	_ "liyu1981.xyz/battery-tracking-service/pkg/testing"
)

const bufSize = 1024 * 1024

var testNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

func startTestServerWithMocks(t *testing.T, limiterStore *inventory.RateLimiterStore, useMockIBattery, useMockIStakeholder bool) (
	*gomock.Controller,
	*InventoryServiceClient,
	*mocks.MockIBattery,
	*mocks.MockIStakeholder,
) {
	ctrl := gomock.NewController(t)

	listener := bufconn.Listen(bufSize)

	mockIBattery := mocks.NewMockIBattery(ctrl)
	mockIStakeholder := mocks.NewMockIStakeholder(ctrl)

	inventoryCore, err := inventory.New(tabular.NewMemory())
	require.NoError(t, err)
	inventoryCore.Now = func() time.Time { return testNow }

	iBattery := inventoryCore.GetIBattery()
	if useMockIBattery {
		iBattery = mockIBattery
	}
	iStakeholder := inventoryCore.GetIStakeholder()
	if useMockIStakeholder {
		iStakeholder = mockIStakeholder
	}
	inventoryCore.WithServices(inventory.ServiceOpts{
		Battery:     iBattery,
		Stakeholder: iStakeholder,
	})

	inventoryServer := InventoryServer{Inventory: inventoryCore, RateLimiterStore: limiterStore}
	interceptor := grpc.UnaryInterceptor(inventoryServer.CreateRateLimitInterceptor(MutatingMethods))
	server := grpc.NewServer(interceptor)
	RegisterInventoryServiceServer(server, &inventoryServer)

	go func() {
		_ = server.Serve(listener)
	}()
	t.Cleanup(server.Stop)

	conn, err := grpc.DialContext(context.Background(), "bufnet",
		grpc.WithContextDialer(func(ctx context.Context, s string) (net.Conn, error) {
			return listener.Dial()
		}),
		grpc.WithInsecure(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return ctrl, NewInventoryServiceClient(conn), mockIBattery, mockIStakeholder
}

func startTestServer(t *testing.T) *InventoryServiceClient {
	_, client, _, _ := startTestServerWithMocks(t, nil, false, false)
	return client
}

func mustStruct(t *testing.T, m map[string]any) *structpb.Struct {
	s, err := structpb.NewStruct(m)
	require.NoError(t, err)
	return s
}

func requireCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok, "expected gRPC status error")
	require.Equal(t, code, st.Code(), st.Message())
}

func TestBatteryLifecycle(t *testing.T) {
	common.SetTestLoggerNop()
	client := startTestServer(t)
	ctx := context.Background()

	added, err := client.AddBattery(ctx, mustStruct(t, map[string]any{
		"product_number":  "BX-100",
		"packing_month":   "2024-01",
		"initial_voltage": 12.0,
	}))
	require.NoError(t, err)
	assert.Equal(t, 1.0, added.Fields["id"].GetNumberValue())
	assert.Equal(t, "active", added.Fields["status"].GetStringValue())
	assert.Equal(t, "green", added.Fields["status_color"].GetStringValue())

	updated, err := client.UpdateVoltage(ctx, mustStruct(t, map[string]any{
		"id": 1, "reading": 10.2, "checked_by": "Alice",
	}))
	require.NoError(t, err)
	assert.Equal(t, 10.2, updated.Fields["current_voltage"].GetNumberValue())
	assert.Equal(t, 1.0, updated.Fields["total_checks"].GetNumberValue())
	assert.Equal(t, "red", updated.Fields["status_color"].GetStringValue())
	assert.Equal(t, 0.0, updated.Fields["days_since_check"].GetNumberValue())

	handed, err := client.Handover(ctx, mustStruct(t, map[string]any{"id": 1, "status": "SPD"}))
	require.NoError(t, err)
	assert.Equal(t, "SPD", handed.Fields["status"].GetStringValue())

	scanned, err := client.ScanBattery(ctx, wrapperspb.String("BX-100"))
	require.NoError(t, err)
	assert.Equal(t, "SPD", scanned.Fields["status"].GetStringValue())

	dashboard, err := client.Dashboard(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"total": 1.0, "active": 0.0, "low_voltage": 0.0, "critical": 1.0}, dashboard.AsMap())

	removed, err := client.DeleteBattery(ctx, wrapperspb.Int64(1))
	require.NoError(t, err)
	assert.True(t, removed.GetValue())

	_, err = client.ScanBattery(ctx, wrapperspb.String("1"))
	requireCode(t, err, codes.NotFound)

	removed, err = client.DeleteBattery(ctx, wrapperspb.Int64(1))
	require.NoError(t, err)
	assert.False(t, removed.GetValue())
}

func TestListBatteries(t *testing.T) {
	common.SetTestLoggerNop()
	client := startTestServer(t)
	ctx := context.Background()

	for _, b := range []map[string]any{
		{"product_number": "BX-1", "initial_voltage": 12.5},
		{"product_number": "BX-2", "initial_voltage": 10.8},
		{"product_number": "ZZ-3"},
	} {
		_, err := client.AddBattery(ctx, mustStruct(t, b))
		require.NoError(t, err)
	}

	all, err := client.ListBatteries(ctx, &structpb.Struct{})
	require.NoError(t, err)
	assert.Len(t, all.Values, 3)

	filtered, err := client.ListBatteries(ctx, mustStruct(t, map[string]any{"product": "bx", "voltage_max": 11}))
	require.NoError(t, err)
	require.Len(t, filtered.Values, 1)
	assert.Equal(t, "BX-2", filtered.Values[0].GetStructValue().Fields["product_number"].GetStringValue())

	_, err = client.ListBatteries(ctx, mustStruct(t, map[string]any{"voltage_min": "high"}))
	requireCode(t, err, codes.InvalidArgument)
}

func TestBattery_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()
	client := startTestServer(t)
	ctx := context.Background()

	_, err := client.AddBattery(ctx, &structpb.Struct{})
	requireCode(t, err, codes.InvalidArgument)

	_, err = client.AddBattery(ctx, mustStruct(t, map[string]any{"product_number": "  "}))
	requireCode(t, err, codes.InvalidArgument)

	_, err = client.UpdateVoltage(ctx, mustStruct(t, map[string]any{"id": 7, "reading": 11.0, "checked_by": "Bob"}))
	requireCode(t, err, codes.NotFound)

	_, err = client.UpdateVoltage(ctx, mustStruct(t, map[string]any{"id": 1.5, "reading": 11.0, "checked_by": "Bob"}))
	requireCode(t, err, codes.InvalidArgument)

	_, err = client.UpdateVoltage(ctx, mustStruct(t, map[string]any{"id": 1, "checked_by": "Bob"}))
	requireCode(t, err, codes.InvalidArgument)

	_, err = client.Handover(ctx, mustStruct(t, map[string]any{"id": 1}))
	requireCode(t, err, codes.InvalidArgument)

	_, err = client.Handover(ctx, mustStruct(t, map[string]any{"id": 1, "status": "production"}))
	requireCode(t, err, codes.NotFound)
}

func TestStakeholders(t *testing.T) {
	common.SetTestLoggerNop()
	client := startTestServer(t)
	ctx := context.Background()

	added, err := client.AddStakeholder(ctx, mustStruct(t, map[string]any{"name": "Alice", "email": "alice@example.com"}))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": 1.0, "name": "Alice", "email": "alice@example.com"}, added.AsMap())

	_, err = client.AddStakeholder(ctx, mustStruct(t, map[string]any{"name": "Bob"}))
	requireCode(t, err, codes.InvalidArgument)

	updated, err := client.UpdateStakeholder(ctx, mustStruct(t, map[string]any{"id": 1, "name": "Alicia"}))
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.Fields["name"].GetStringValue())
	assert.Equal(t, "alice@example.com", updated.Fields["email"].GetStringValue())

	_, err = client.UpdateStakeholder(ctx, mustStruct(t, map[string]any{"id": 2, "name": "X"}))
	requireCode(t, err, codes.NotFound)

	list, err := client.ListStakeholders(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	assert.Len(t, list.Values, 1)

	removed, err := client.DeleteStakeholder(ctx, wrapperspb.Int64(1))
	require.NoError(t, err)
	assert.True(t, removed.GetValue())
}

func TestInternalErrors(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, client, mockIBattery, mockIStakeholder := startTestServerWithMocks(t, nil, true, true)
	defer ctrl.Finish()
	ctx := context.Background()

	mockIBattery.EXPECT().
		Scan(gomock.Eq("BX-1")).
		Return(nil, errs.Storage(common.TableBatteries, "read", fmt.Errorf("test error"))).
		Times(1)
	_, err := client.ScanBattery(ctx, wrapperspb.String("BX-1"))
	requireCode(t, err, codes.Internal)

	mockIStakeholder.EXPECT().
		List().
		Return(nil, fmt.Errorf("test error")).
		Times(1)
	_, err = client.ListStakeholders(ctx, &emptypb.Empty{})
	requireCode(t, err, codes.Internal)
}

func TestRateLimitInterceptor(t *testing.T) {
	common.SetTestLoggerNop()

	limiterStore := inventory.NewRateLimiterStore(2, 2) // Allow 2 req/sec per peer
	_, client, _, _ := startTestServerWithMocks(t, limiterStore, false, false)
	ctx := context.Background()

	req := mustStruct(t, map[string]any{"product_number": "BX-1"})

	// First 2 requests should pass
	for i := range 2 {
		_, err := client.AddBattery(ctx, req)
		require.NoError(t, err, "expected request %d to pass", i+1)
	}

	// 3rd request should fail immediately
	_, err := client.AddBattery(ctx, req)
	requireCode(t, err, codes.ResourceExhausted)

	// reads are not limited
	for range 5 {
		_, err := client.ListBatteries(ctx, &structpb.Struct{})
		require.NoError(t, err)
	}

	// Wait for the token bucket to refill
	time.Sleep(1 * time.Second)

	_, err = client.AddBattery(ctx, req)
	require.NoError(t, err, "expected request after sleep to pass")
}

func TestPeerKey(t *testing.T) {
	assert.Equal(t, "10.1.2.3", peerKey(&net.TCPAddr{IP: net.ParseIP("10.1.2.3"), Port: 5000}))
	assert.Equal(t, "", peerKey(nil))
}
