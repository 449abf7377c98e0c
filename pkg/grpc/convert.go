package grpc

import (
	"encoding/json"
	"fmt"
	"math"

	"google.golang.org/protobuf/types/known/structpb"

	"liyu1981.xyz/battery-tracking-service/pkg/errs"
)

// toStruct goes through the JSON encoding so records keep their json tags
// as field names.
func toStruct(v any) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return structpb.NewStruct(m)
}

func toList[T any](items []T) (*structpb.ListValue, error) {
	values := make([]any, 0, len(items))
	for _, item := range items {
		s, err := toStruct(item)
		if err != nil {
			return nil, err
		}
		values = append(values, s.AsMap())
	}
	return structpb.NewList(values)
}

func field(s *structpb.Struct, key string) (*structpb.Value, bool) {
	if s == nil {
		return nil, false
	}
	v, ok := s.GetFields()[key]
	if !ok {
		return nil, false
	}
	if _, isNull := v.GetKind().(*structpb.Value_NullValue); isNull {
		return nil, false
	}
	return v, true
}

func stringField(s *structpb.Struct, key string) (string, error) {
	v, ok := field(s, key)
	if !ok {
		return "", nil
	}
	if _, isString := v.GetKind().(*structpb.Value_StringValue); !isString {
		return "", errs.Validation(key, "must be a string")
	}
	return v.GetStringValue(), nil
}

func optionalStringField(s *structpb.Struct, key string) (*string, error) {
	if _, ok := field(s, key); !ok {
		return nil, nil
	}
	str, err := stringField(s, key)
	if err != nil {
		return nil, err
	}
	return &str, nil
}

func optionalNumberField(s *structpb.Struct, key string) (*float64, error) {
	v, ok := field(s, key)
	if !ok {
		return nil, nil
	}
	if _, isNumber := v.GetKind().(*structpb.Value_NumberValue); !isNumber {
		return nil, errs.Validation(key, "must be a number")
	}
	n := v.GetNumberValue()
	return &n, nil
}

func idField(s *structpb.Struct, key string) (int, error) {
	n, err := optionalNumberField(s, key)
	if err != nil {
		return 0, err
	}
	if n == nil {
		return 0, errs.Validation(key, "is required")
	}
	if *n != math.Trunc(*n) || math.Abs(*n) > math.MaxInt32 {
		return 0, errs.Validation(key, fmt.Sprintf("must be an integer, got %v", *n))
	}
	return int(*n), nil
}
