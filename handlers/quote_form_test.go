package handlers

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trainingquote/services"
	"trainingquote/testhelpers"
)

func TestParseSelection_EmptyFormUsesDefaults(t *testing.T) {
	sel := ParseSelection(url.Values{}, services.TravelItemized)

	assert.Equal(t, services.TrainingInPerson, sel.TrainingType)
	assert.Equal(t, services.Duration60, sel.Duration)
	assert.Equal(t, services.TravelItemized, sel.TravelMode)
	require.Len(t, sel.Trainers, 1)
	assert.Equal(t, services.RoleLead, sel.Trainers[0].Role)
	assert.Equal(t, 1, sel.Trainers[0].Count)
}

func TestParseSelection_DefaultModeFromConfig(t *testing.T) {
	sel := ParseSelection(url.Values{}, services.TravelFlat)
	assert.Equal(t, services.TravelFlat, sel.TravelMode)
}

func TestParseSelection_RoundTripsEncodedForm(t *testing.T) {
	want := services.Selection{
		TrainingType: services.TrainingInPerson,
		Duration:     services.Duration240,
		TravelMode:   services.TravelItemized,
		TravelTime:   services.TravelTimeLocal,
		PMHours:      2.5,
		Trainers: services.Roster{
			{ID: "a", Role: services.RoleLead, Count: 1, Location: services.LocationLocal, Travel: services.DefaultTravelDetails()},
			{ID: "b", Role: services.RoleApprentice, Count: 3, Location: services.LocationTraveling, Travel: services.TravelDetails{
				NeedsFlight:         true,
				FlightCost:          350,
				LodgingNights:       2,
				LodgingCostPerNight: 120,
				MileageCost:         40,
				MealAllowance:       75,
				OtherExpenses:       12.5,
			}},
		},
	}

	got := ParseSelection(testhelpers.SelectionForm(want), services.TravelItemized)
	assert.Equal(t, want, got)
}

func TestParseSelection_ClampsInvalidNumbers(t *testing.T) {
	form := url.Values{
		"trainer_id":               {"x"},
		"trainer_x_count":          {"0"},
		"trainer_x_location":       {"traveling"},
		"trainer_x_flight_cost":    {"-10"},
		"trainer_x_lodging_nights": {"abc"},
		"trainer_x_lodging_cost":   {"NaN"},
		"trainer_x_mileage_cost":   {""},
		"trainer_x_meal_allowance": {"Inf"},
		"trainer_x_other_expenses": {"7"},
		"pm_hours":                 {"-3"},
	}

	sel := ParseSelection(form, services.TravelItemized)
	require.Len(t, sel.Trainers, 1)
	tr := sel.Trainers[0]
	assert.Equal(t, 1, tr.Count)
	assert.Equal(t, 0.0, tr.Travel.FlightCost)
	assert.Equal(t, 0, tr.Travel.LodgingNights)
	assert.Equal(t, 0.0, tr.Travel.LodgingCostPerNight)
	assert.Equal(t, 0.0, tr.Travel.MileageCost)
	assert.Equal(t, 0.0, tr.Travel.MealAllowance)
	assert.Equal(t, 7.0, tr.Travel.OtherExpenses)
	assert.Equal(t, 0.0, sel.PMHours)
}

func TestParseSelection_FractionalCountTruncates(t *testing.T) {
	form := url.Values{
		"trainer_id":      {"x"},
		"trainer_x_count": {"2.7"},
	}
	sel := ParseSelection(form, services.TravelItemized)
	assert.Equal(t, 2, sel.Trainers[0].Count)
}

func TestParseSelection_MissingRatesKeepDefaults(t *testing.T) {
	form := url.Values{"trainer_id": {"x"}}
	sel := ParseSelection(form, services.TravelItemized)

	tr := sel.Trainers[0]
	assert.Equal(t, services.DefaultFlightCost, tr.Travel.FlightCost)
	assert.Equal(t, services.DefaultLodgingCostPerNight, tr.Travel.LodgingCostPerNight)
	assert.False(t, tr.Travel.NeedsFlight)
	assert.Equal(t, services.RoleTrainer, tr.Role)
	assert.Equal(t, services.LocationLocal, tr.Location)
}

func TestParseSelection_UnknownChoicesFallBack(t *testing.T) {
	form := url.Values{
		"training_type":  {"hybrid"},
		"duration":       {"45"},
		"travel_mode":    {"teleport"},
		"travel_time":    {"week"},
		"trainer_id":     {"x"},
		"trainer_x_role": {"boss"},
	}
	sel := ParseSelection(form, services.TravelItemized)

	assert.Equal(t, services.TrainingInPerson, sel.TrainingType)
	assert.Equal(t, services.Duration60, sel.Duration)
	assert.Equal(t, services.TravelItemized, sel.TravelMode)
	assert.Equal(t, services.TravelTimeLocal, sel.TravelTime)
	assert.Equal(t, services.RoleTrainer, sel.Trainers[0].Role)
}

func TestParseSelection_DuplicateIDsKeepFirst(t *testing.T) {
	form := url.Values{
		"trainer_id":     {"x", "x", " ", "y"},
		"trainer_x_role": {"lead"},
		"trainer_y_role": {"apprentice"},
	}
	sel := ParseSelection(form, services.TravelItemized)

	require.Len(t, sel.Trainers, 2)
	assert.Equal(t, "x", sel.Trainers[0].ID)
	assert.Equal(t, "y", sel.Trainers[1].ID)
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"on", true},
		{"true", true},
		{"1", true},
		{"YES", true},
		{"", false},
		{"off", false},
		{"0", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseBool(tt.in))
		})
	}
}
