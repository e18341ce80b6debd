package form

import "vehicle/finder/internal/domain"

var budgetLabels = labelsOf(domain.BudgetTiers)

var subtypeLabels = func() map[string]string {
	var all []domain.Option
	for _, category := range domain.VehicleCategories {
		all = append(all, domain.Subtypes(category)...)
	}
	return labelsOf(all)
}()

func labelsOf(options []domain.Option) map[string]string {
	labels := make(map[string]string, len(options))
	for _, o := range options {
		labels[o.Value] = o.Label
	}
	return labels
}

// BudgetLabel translates a budget code; unknown codes are returned as is.
func BudgetLabel(code string) string {
	if label, ok := budgetLabels[code]; ok {
		return label
	}
	return code
}

// SubtypeLabel translates a subtype code; unknown codes are returned as is.
func SubtypeLabel(code string) string {
	if label, ok := subtypeLabels[code]; ok {
		return label
	}
	return code
}

// BuildRequest maps a validated form to the wire payload. Optional
// preference fields are not part of the payload.
func BuildRequest(category domain.VehicleCategory, state domain.FormState) domain.RequestPayload {
	return domain.RequestPayload{
		VehicleType:    category,
		Budget:         BudgetLabel(state.Budget),
		VehicleSubtype: SubtypeLabel(state.VehicleSubtype),
	}
}
