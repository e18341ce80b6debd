package form

import (
	"strings"

	"vehicle/finder/internal/domain"
)

type requiredRule struct {
	field   string
	message string
}

// requiredFields is fixed; every other field is optional.
var requiredFields = []requiredRule{
	{field: domain.FieldBudget, message: "Budget range is required"},
	{field: domain.FieldVehicleSubtype, message: "Vehicle type is required"},
}

// Validate checks every required field and reports the full error set.
func Validate(state domain.FormState) (domain.ValidationErrors, bool) {
	errs := domain.ValidationErrors{}

	for _, rule := range requiredFields {
		value, _ := state.Get(rule.field)
		if strings.TrimSpace(value) == "" {
			errs[rule.field] = rule.message
		}
	}

	return errs, len(errs) == 0
}
