package domain

import (
	"fmt"
	"sort"
)

const (
	FieldBudget          = "budget"
	FieldCondition       = "condition"
	FieldVehicleSubtype  = "vehicleSubtype"
	FieldTechnologyLevel = "technologyLevel"
	FieldSoundQuality    = "soundQuality"
	FieldFuelConsumption = "fuelConsumption"
	FieldMileage         = "mileage"
	FieldYear            = "year"
)

const (
	ConditionNew  = "new"
	ConditionUsed = "used"
)

var FormFields = []string{
	FieldBudget,
	FieldCondition,
	FieldVehicleSubtype,
	FieldTechnologyLevel,
	FieldSoundQuality,
	FieldFuelConsumption,
	FieldMileage,
	FieldYear,
}

// FormState holds the raw values entered by the user. Only budget and
// vehicleSubtype ever leave the client.
type FormState struct {
	Budget          string `json:"budget"`
	Condition       string `json:"condition"`
	VehicleSubtype  string `json:"vehicleSubtype"`
	TechnologyLevel string `json:"technologyLevel"`
	SoundQuality    string `json:"soundQuality"`
	FuelConsumption string `json:"fuelConsumption"`
	Mileage         string `json:"mileage"`
	Year            string `json:"year"`
}

func (f *FormState) field(name string) (*string, error) {
	switch name {
	case FieldBudget:
		return &f.Budget, nil
	case FieldCondition:
		return &f.Condition, nil
	case FieldVehicleSubtype:
		return &f.VehicleSubtype, nil
	case FieldTechnologyLevel:
		return &f.TechnologyLevel, nil
	case FieldSoundQuality:
		return &f.SoundQuality, nil
	case FieldFuelConsumption:
		return &f.FuelConsumption, nil
	case FieldMileage:
		return &f.Mileage, nil
	case FieldYear:
		return &f.Year, nil
	default:
		return nil, fmt.Errorf("unknown form field %q", name)
	}
}

func (f *FormState) Set(name, value string) error {
	p, err := f.field(name)
	if err != nil {
		return err
	}
	*p = value
	return nil
}

func (f FormState) Get(name string) (string, error) {
	p, err := f.field(name)
	if err != nil {
		return "", err
	}
	return *p, nil
}

// Effective returns the form as the user sees it: mileage and year are
// locked out for new vehicles.
func (f FormState) Effective() FormState {
	if f.Condition == ConditionNew {
		f.Mileage = ""
		f.Year = ""
	}
	return f
}

// ValidationErrors maps a field name to its human readable message.
type ValidationErrors map[string]string

func (e ValidationErrors) Clear(field string) {
	delete(e, field)
}

func (e ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msg := "validation failed:"
	for _, f := range e.Fields() {
		msg += fmt.Sprintf(" %s: %s;", f, e[f])
	}
	return msg
}
