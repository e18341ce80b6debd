package domain

// Option is a single selectable value of a form field.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Catalog struct {
	VehicleType     VehicleCategory `json:"vehicleType"`
	VehicleLabel    string          `json:"vehicleLabel"`
	Subtypes        []Option        `json:"subtypes"`
	Budgets         []Option        `json:"budgets"`
	Conditions      []Option        `json:"conditions"`
	TechnologyLevel []Option        `json:"technologyLevel"`
	SoundQuality    []Option        `json:"soundQuality"`
	FuelConsumption []Option        `json:"fuelConsumption"`
}

var subtypes = map[VehicleCategory][]Option{
	VehicleCategoryMotorcycle: {
		{Value: "naked", Label: "Naked"},
		{Value: "cruiser", Label: "Cruiser"},
		{Value: "sport", Label: "Sport"},
		{Value: "touring", Label: "Touring"},
		{Value: "adventure", Label: "Adventure"},
		{Value: "retro", Label: "Retro"},
		{Value: "scrambler", Label: "Scrambler"},
		{Value: "scooter", Label: "Scooter"},
		{Value: "electric", Label: "Electric"},
	},
	VehicleCategoryCar: {
		{Value: "sedan", Label: "Sedan"},
		{Value: "suv", Label: "SUV"},
		{Value: "hatchback", Label: "Hatchback"},
		{Value: "coupe", Label: "Coupe"},
		{Value: "convertible", Label: "Convertible"},
	},
}

// BudgetTiers are ordered from cheapest to the unbounded top tier.
var BudgetTiers = []Option{
	{Value: "under-100k", Label: "Under 100,000 TL"},
	{Value: "100k-250k", Label: "100,000 - 250,000 TL"},
	{Value: "250k-500k", Label: "250,000 - 500,000 TL"},
	{Value: "500k-750k", Label: "500,000 - 750,000 TL"},
	{Value: "750k-900k", Label: "750,000 - 900,000 TL"},
	{Value: "over-900k", Label: "Over 900,000 TL"},
}

var (
	ConditionOptions = []Option{
		{Value: ConditionNew, Label: "New"},
		{Value: ConditionUsed, Label: "Used"},
	}
	TechnologyLevelOptions = []Option{
		{Value: "dont-care", Label: "Don't Care"},
		{Value: "high", Label: "With High Technology"},
		{Value: "medium", Label: "With Basic Technology (ABS etc.)"},
		{Value: "low", Label: "No Technology"},
	}
	SoundQualityOptions = []Option{
		{Value: "dont-care", Label: "Don't Care"},
		{Value: "low", Label: "Low"},
		{Value: "medium", Label: "Medium"},
		{Value: "high", Label: "High"},
	}
	FuelConsumptionOptions = []Option{
		{Value: "dont-care", Label: "Don't Care"},
		{Value: "3-5lt", Label: "3-5 lt"},
		{Value: "5-8lt", Label: "5-8 lt"},
		{Value: "9+lt", Label: "9+ lt"},
	}
)

// Subtypes returns a copy of the subtypes offered for the category, in display order.
func Subtypes(c VehicleCategory) []Option {
	src := subtypes[c]
	out := make([]Option, len(src))
	copy(out, src)
	return out
}

func IsSubtypeOf(c VehicleCategory, subtype string) bool {
	for _, o := range subtypes[c] {
		if o.Value == subtype {
			return true
		}
	}
	return false
}

func CatalogFor(c VehicleCategory) *Catalog {
	return &Catalog{
		VehicleType:     c,
		VehicleLabel:    c.Label(),
		Subtypes:        Subtypes(c),
		Budgets:         append([]Option(nil), BudgetTiers...),
		Conditions:      append([]Option(nil), ConditionOptions...),
		TechnologyLevel: append([]Option(nil), TechnologyLevelOptions...),
		SoundQuality:    append([]Option(nil), SoundQualityOptions...),
		FuelConsumption: append([]Option(nil), FuelConsumptionOptions...),
	}
}
