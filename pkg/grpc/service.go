package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// The inventory service is described directly against the protobuf
// well-known types, so there is no .proto file to compile. Battery and
// stakeholder records travel as structpb.Struct with the same field names
// as the HTTP API.
const ServiceName = "battery.v1.Inventory"

const (
	MethodScanBattery       = "/" + ServiceName + "/ScanBattery"
	MethodAddBattery        = "/" + ServiceName + "/AddBattery"
	MethodUpdateVoltage     = "/" + ServiceName + "/UpdateVoltage"
	MethodHandover          = "/" + ServiceName + "/Handover"
	MethodDeleteBattery     = "/" + ServiceName + "/DeleteBattery"
	MethodListBatteries     = "/" + ServiceName + "/ListBatteries"
	MethodDashboard         = "/" + ServiceName + "/Dashboard"
	MethodAddStakeholder    = "/" + ServiceName + "/AddStakeholder"
	MethodUpdateStakeholder = "/" + ServiceName + "/UpdateStakeholder"
	MethodDeleteStakeholder = "/" + ServiceName + "/DeleteStakeholder"
	MethodListStakeholders  = "/" + ServiceName + "/ListStakeholders"
)

// MutatingMethods are the methods the rate limit interceptor applies to.
var MutatingMethods = []string{
	MethodAddBattery,
	MethodUpdateVoltage,
	MethodHandover,
	MethodDeleteBattery,
	MethodAddStakeholder,
	MethodUpdateStakeholder,
	MethodDeleteStakeholder,
}

type InventoryServiceServer interface {
	ScanBattery(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	AddBattery(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateVoltage(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Handover(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteBattery(context.Context, *wrapperspb.Int64Value) (*wrapperspb.BoolValue, error)
	ListBatteries(context.Context, *structpb.Struct) (*structpb.ListValue, error)
	Dashboard(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	AddStakeholder(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateStakeholder(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteStakeholder(context.Context, *wrapperspb.Int64Value) (*wrapperspb.BoolValue, error)
	ListStakeholders(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
}

func unaryMethod[Req any, PReq interface {
	*Req
	proto.Message
}, Resp proto.Message](fullMethod string, call func(InventoryServiceServer, context.Context, PReq) (Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: fullMethod[len(ServiceName)+2:],
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := PReq(new(Req))
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(InventoryServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(InventoryServiceServer), ctx, req.(PReq))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

var InventoryServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*InventoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(MethodScanBattery, InventoryServiceServer.ScanBattery),
		unaryMethod(MethodAddBattery, InventoryServiceServer.AddBattery),
		unaryMethod(MethodUpdateVoltage, InventoryServiceServer.UpdateVoltage),
		unaryMethod(MethodHandover, InventoryServiceServer.Handover),
		unaryMethod(MethodDeleteBattery, InventoryServiceServer.DeleteBattery),
		unaryMethod(MethodListBatteries, InventoryServiceServer.ListBatteries),
		unaryMethod(MethodDashboard, InventoryServiceServer.Dashboard),
		unaryMethod(MethodAddStakeholder, InventoryServiceServer.AddStakeholder),
		unaryMethod(MethodUpdateStakeholder, InventoryServiceServer.UpdateStakeholder),
		unaryMethod(MethodDeleteStakeholder, InventoryServiceServer.DeleteStakeholder),
		unaryMethod(MethodListStakeholders, InventoryServiceServer.ListStakeholders),
	},
	Streams: []grpc.StreamDesc{},
}

func RegisterInventoryServiceServer(s grpc.ServiceRegistrar, srv InventoryServiceServer) {
	s.RegisterService(&InventoryServiceDesc, srv)
}

type InventoryServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewInventoryServiceClient(cc grpc.ClientConnInterface) *InventoryServiceClient {
	return &InventoryServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in proto.Message, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *InventoryServiceClient) ScanBattery(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke[structpb.Struct](ctx, c.cc, MethodScanBattery, in, opts)
}

func (c *InventoryServiceClient) AddBattery(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke[structpb.Struct](ctx, c.cc, MethodAddBattery, in, opts)
}

func (c *InventoryServiceClient) UpdateVoltage(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke[structpb.Struct](ctx, c.cc, MethodUpdateVoltage, in, opts)
}

func (c *InventoryServiceClient) Handover(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke[structpb.Struct](ctx, c.cc, MethodHandover, in, opts)
}

func (c *InventoryServiceClient) DeleteBattery(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	return invoke[wrapperspb.BoolValue](ctx, c.cc, MethodDeleteBattery, in, opts)
}

func (c *InventoryServiceClient) ListBatteries(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	return invoke[structpb.ListValue](ctx, c.cc, MethodListBatteries, in, opts)
}

func (c *InventoryServiceClient) Dashboard(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke[structpb.Struct](ctx, c.cc, MethodDashboard, in, opts)
}

func (c *InventoryServiceClient) AddStakeholder(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke[structpb.Struct](ctx, c.cc, MethodAddStakeholder, in, opts)
}

func (c *InventoryServiceClient) UpdateStakeholder(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return invoke[structpb.Struct](ctx, c.cc, MethodUpdateStakeholder, in, opts)
}

func (c *InventoryServiceClient) DeleteStakeholder(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	return invoke[wrapperspb.BoolValue](ctx, c.cc, MethodDeleteStakeholder, in, opts)
}

func (c *InventoryServiceClient) ListStakeholders(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	return invoke[structpb.ListValue](ctx, c.cc, MethodListStakeholders, in, opts)
}
