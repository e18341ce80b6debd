package form

import (
	"encoding/json"
	"testing"

	"vehicle/finder/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRequest_CarSUV(t *testing.T) {
	payload := BuildRequest(domain.VehicleCategoryCar, domain.FormState{
		Budget:         "500k-750k",
		VehicleSubtype: "suv",
	})

	assert.Equal(t, domain.RequestPayload{
		VehicleType:    domain.VehicleCategoryCar,
		Budget:         "500,000 - 750,000 TL",
		VehicleSubtype: "SUV",
	}, payload)
}

func TestBuildRequest_OmitsOptionalFields(t *testing.T) {
	state := domain.FormState{
		Budget:          "under-100k",
		VehicleSubtype:  "adventure",
		Condition:       "used",
		TechnologyLevel: "high",
		SoundQuality:    "low",
		FuelConsumption: "3-5lt",
		Mileage:         "12000",
		Year:            "2021",
	}

	body, err := json.Marshal(BuildRequest(domain.VehicleCategoryMotorcycle, state))
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(body, &fields))
	assert.Equal(t, map[string]any{
		"vehicleType":    "motorcycle",
		"budget":         "Under 100,000 TL",
		"vehicleSubtype": "Adventure",
	}, fields)
}

func TestBuildRequest_IsPure(t *testing.T) {
	state := domain.FormState{Budget: "250k-500k", VehicleSubtype: "retro", Condition: "new"}

	first := BuildRequest(domain.VehicleCategoryMotorcycle, state)
	second := BuildRequest(domain.VehicleCategoryMotorcycle, state)

	assert.Equal(t, first, second)
	assert.Equal(t, domain.FormState{Budget: "250k-500k", VehicleSubtype: "retro", Condition: "new"}, state)
}

func TestLabels_UnknownCodesPassThrough(t *testing.T) {
	assert.Equal(t, "1m-plus", BudgetLabel("1m-plus"))
	assert.Equal(t, "", BudgetLabel(""))
	assert.Equal(t, "pickup", SubtypeLabel("pickup"))
	assert.Equal(t, "SUV ", SubtypeLabel("SUV "))

	payload := BuildRequest(domain.VehicleCategoryCar, domain.FormState{Budget: "custom", VehicleSubtype: "van"})
	assert.Equal(t, "custom", payload.Budget)
	assert.Equal(t, "van", payload.VehicleSubtype)
}

func TestLabels_WireStrings(t *testing.T) {
	budgets := map[string]string{
		"under-100k": "Under 100,000 TL",
		"100k-250k":  "100,000 - 250,000 TL",
		"250k-500k":  "250,000 - 500,000 TL",
		"500k-750k":  "500,000 - 750,000 TL",
		"750k-900k":  "750,000 - 900,000 TL",
		"over-900k":  "Over 900,000 TL",
	}
	for code, want := range budgets {
		assert.Equal(t, want, BudgetLabel(code), code)
	}
	assert.Len(t, budgetLabels, len(budgets))

	subtypes := map[string]string{
		"naked": "Naked", "cruiser": "Cruiser", "sport": "Sport", "touring": "Touring",
		"adventure": "Adventure", "retro": "Retro", "scrambler": "Scrambler",
		"scooter": "Scooter", "electric": "Electric",
		"sedan": "Sedan", "suv": "SUV", "hatchback": "Hatchback", "coupe": "Coupe",
		"convertible": "Convertible",
	}
	for code, want := range subtypes {
		assert.Equal(t, want, SubtypeLabel(code), code)
	}
	assert.Len(t, subtypeLabels, len(subtypes))
}
