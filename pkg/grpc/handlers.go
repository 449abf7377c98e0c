package grpc

import (
	"context"
	"regexp"
	"time"

	z "github.com/Oudwins/zog"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"liyu1981.xyz/battery-tracking-service/pkg/common"
	"liyu1981.xyz/battery-tracking-service/pkg/errs"
	"liyu1981.xyz/battery-tracking-service/pkg/models"
)

var requiredText = z.String().Required().Match(regexp.MustCompile(`\S`))

func validateText(field string, value *string) error {
	if issues := requiredText.Validate(value); len(issues) > 0 {
		return errs.Validation(field, "must not be blank")
	}
	return nil
}

func toStatus(err error) error {
	switch {
	case errs.IsValidation(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case errs.IsNotFound(err):
		return status.Error(codes.NotFound, err.Error())
	default:
		common.GetLoggerWith(common.LoggerNameGrpcServer).Error("Request failed", zap.Error(err))
		return status.Error(codes.Internal, err.Error())
	}
}

func (s *InventoryServer) now() time.Time {
	if s.Inventory.Now != nil {
		return s.Inventory.Now()
	}
	return time.Now()
}

// batteryRecord adds the derived status fields, matching the HTTP view.
func (s *InventoryServer) batteryRecord(b *models.Battery) (*structpb.Struct, error) {
	record, err := toStruct(b)
	if err != nil {
		return nil, toStatus(err)
	}
	color := b.Color()
	record.Fields["status_color"] = structpb.NewStringValue(string(color))
	record.Fields["status_label"] = structpb.NewStringValue(color.Label())
	if days := b.DaysSinceCheck(s.now()); days != nil {
		record.Fields["days_since_check"] = structpb.NewNumberValue(float64(*days))
	} else {
		record.Fields["days_since_check"] = structpb.NewNullValue()
	}
	return record, nil
}

func (s *InventoryServer) ScanBattery(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	battery, err := s.Inventory.Battery.Scan(req.GetValue())
	if err != nil {
		return nil, toStatus(err)
	}
	if battery == nil {
		return nil, status.Errorf(codes.NotFound, "no battery matches %q", req.GetValue())
	}
	return s.batteryRecord(battery)
}

func (s *InventoryServer) AddBattery(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	productNumber, err := stringField(req, "product_number")
	if err != nil {
		return nil, toStatus(err)
	}
	if err := validateText("product_number", &productNumber); err != nil {
		return nil, toStatus(err)
	}
	packingMonth, err := optionalStringField(req, "packing_month")
	if err != nil {
		return nil, toStatus(err)
	}
	initialVoltage, err := optionalNumberField(req, "initial_voltage")
	if err != nil {
		return nil, toStatus(err)
	}

	battery, err := s.Inventory.Battery.Add(productNumber, packingMonth, initialVoltage)
	if err != nil {
		return nil, toStatus(err)
	}
	return s.batteryRecord(battery)
}

func (s *InventoryServer) UpdateVoltage(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := idField(req, "id")
	if err != nil {
		return nil, toStatus(err)
	}
	reading, err := optionalNumberField(req, "reading")
	if err != nil {
		return nil, toStatus(err)
	}
	if reading == nil {
		return nil, toStatus(errs.Validation("reading", "is required"))
	}
	checkedBy, err := stringField(req, "checked_by")
	if err != nil {
		return nil, toStatus(err)
	}
	if err := validateText("checked_by", &checkedBy); err != nil {
		return nil, toStatus(err)
	}
	notes, err := optionalStringField(req, "notes")
	if err != nil {
		return nil, toStatus(err)
	}
	duringCheck, err := optionalNumberField(req, "voltage_during_check")
	if err != nil {
		return nil, toStatus(err)
	}

	battery, err := s.Inventory.Battery.UpdateVoltage(id, &models.VoltageUpdate{
		Reading:            *reading,
		CheckedBy:          checkedBy,
		Notes:              notes,
		VoltageDuringCheck: duringCheck,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return s.batteryRecord(battery)
}

func (s *InventoryServer) Handover(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := idField(req, "id")
	if err != nil {
		return nil, toStatus(err)
	}
	newStatus, err := stringField(req, "status")
	if err != nil {
		return nil, toStatus(err)
	}
	if err := validateText("status", &newStatus); err != nil {
		return nil, toStatus(err)
	}

	battery, err := s.Inventory.Battery.Handover(id, models.BatteryStatus(newStatus))
	if err != nil {
		return nil, toStatus(err)
	}
	return s.batteryRecord(battery)
}

func (s *InventoryServer) DeleteBattery(ctx context.Context, req *wrapperspb.Int64Value) (*wrapperspb.BoolValue, error) {
	removed, err := s.Inventory.Battery.Delete(int(req.GetValue()))
	if err != nil {
		return nil, toStatus(err)
	}
	return wrapperspb.Bool(removed), nil
}

func (s *InventoryServer) ListBatteries(ctx context.Context, req *structpb.Struct) (*structpb.ListValue, error) {
	filter := &models.BatteryFilter{}
	var err error
	if filter.ProductQuery, err = stringField(req, "product"); err != nil {
		return nil, toStatus(err)
	}
	if filter.Status, err = stringField(req, "status"); err != nil {
		return nil, toStatus(err)
	}
	if filter.VoltageMin, err = optionalNumberField(req, "voltage_min"); err != nil {
		return nil, toStatus(err)
	}
	if filter.VoltageMax, err = optionalNumberField(req, "voltage_max"); err != nil {
		return nil, toStatus(err)
	}

	batteries, err := s.Inventory.Battery.Filter(filter)
	if err != nil {
		return nil, toStatus(err)
	}

	values := make([]*structpb.Value, 0, len(batteries))
	for i := range batteries {
		record, err := s.batteryRecord(&batteries[i])
		if err != nil {
			return nil, err
		}
		values = append(values, structpb.NewStructValue(record))
	}
	return &structpb.ListValue{Values: values}, nil
}

func (s *InventoryServer) Dashboard(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	dashboard, err := s.Inventory.Dashboard()
	if err != nil {
		return nil, toStatus(err)
	}
	record, err := toStruct(dashboard)
	if err != nil {
		return nil, toStatus(err)
	}
	return record, nil
}

func (s *InventoryServer) AddStakeholder(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	name, err := stringField(req, "name")
	if err != nil {
		return nil, toStatus(err)
	}
	email, err := stringField(req, "email")
	if err != nil {
		return nil, toStatus(err)
	}

	stakeholder, err := s.Inventory.Stakeholder.Add(name, email)
	if err != nil {
		return nil, toStatus(err)
	}
	record, err := toStruct(stakeholder)
	if err != nil {
		return nil, toStatus(err)
	}
	return record, nil
}

func (s *InventoryServer) UpdateStakeholder(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := idField(req, "id")
	if err != nil {
		return nil, toStatus(err)
	}
	name, err := optionalStringField(req, "name")
	if err != nil {
		return nil, toStatus(err)
	}
	email, err := optionalStringField(req, "email")
	if err != nil {
		return nil, toStatus(err)
	}

	stakeholder, err := s.Inventory.Stakeholder.Update(id, name, email)
	if err != nil {
		return nil, toStatus(err)
	}
	record, err := toStruct(stakeholder)
	if err != nil {
		return nil, toStatus(err)
	}
	return record, nil
}

func (s *InventoryServer) DeleteStakeholder(ctx context.Context, req *wrapperspb.Int64Value) (*wrapperspb.BoolValue, error) {
	removed, err := s.Inventory.Stakeholder.Delete(int(req.GetValue()))
	if err != nil {
		return nil, toStatus(err)
	}
	return wrapperspb.Bool(removed), nil
}

func (s *InventoryServer) ListStakeholders(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	stakeholders, err := s.Inventory.Stakeholder.List()
	if err != nil {
		return nil, toStatus(err)
	}
	list, err := toList(stakeholders)
	if err != nil {
		return nil, toStatus(err)
	}
	return list, nil
}
