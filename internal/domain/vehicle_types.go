package domain

import "fmt"

type VehicleCategory string

func (c VehicleCategory) String() string {
	return string(c)
}

const (
	VehicleCategoryMotorcycle VehicleCategory = "motorcycle"
	VehicleCategoryCar        VehicleCategory = "car"
)

var VehicleCategories = []VehicleCategory{
	VehicleCategoryMotorcycle,
	VehicleCategoryCar,
}

// Label returns the short name shown next to the category toggle.
func (c VehicleCategory) Label() string {
	switch c {
	case VehicleCategoryMotorcycle:
		return "Bike"
	case VehicleCategoryCar:
		return "Car"
	default:
		return "Unknown"
	}
}

func (c VehicleCategory) Valid() bool {
	return c == VehicleCategoryMotorcycle || c == VehicleCategoryCar
}

func ParseVehicleCategory(s string) (VehicleCategory, error) {
	c := VehicleCategory(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown vehicle category %q", s)
	}
	return c, nil
}
