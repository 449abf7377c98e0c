package inventory

import (
	"math"
	"regexp"

	z "github.com/Oudwins/zog"

	"liyu1981.xyz/battery-tracking-service/pkg/errs"
)

var nonBlank = regexp.MustCompile(`\S`)

var requiredTextSchema = z.String().Required().Match(nonBlank)

func requireText(field, value string) error {
	if issues := requiredTextSchema.Validate(&value); len(issues) > 0 {
		return errs.Validation(field, "must not be blank")
	}
	return nil
}

func requireFinite(field string, v *float64) error {
	if v != nil && (math.IsNaN(*v) || math.IsInf(*v, 0)) {
		return errs.Validation(field, "must be a finite number")
	}
	return nil
}

func blankToNil(s *string) *string {
	if s == nil || !nonBlank.MatchString(*s) {
		return nil
	}
	return s
}
