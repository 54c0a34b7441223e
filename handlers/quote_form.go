package handlers

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"trainingquote/services"
)

// Form field names. Per-trainer fields are "trainer_<id>_<field>".
const (
	fieldTrainingType = "training_type"
	fieldDuration     = "duration"
	fieldTravelMode   = "travel_mode"
	fieldTravelTime   = "travel_time"
	fieldPMHours      = "pm_hours"
	fieldTrainerID    = "trainer_id"
)

// ParseSelection builds a Selection from posted form values. Numbers are
// clamped to safe defaults instead of rejected: a count that is not a number
// or below 1 becomes 1, money and hours that are not numbers or negative
// become 0. A flight or lodging rate whose field is absent altogether keeps
// the new-trainer default. Unknown choices fall back to the defaults of
// services.Selection.Normalize.
func ParseSelection(form url.Values, defaultMode services.TravelMode) services.Selection {
	def := services.DefaultSelection(defaultMode)

	sel := services.Selection{
		TrainingType: services.TrainingType(valueOr(form, fieldTrainingType, string(def.TrainingType))),
		Duration:     services.Duration(valueOr(form, fieldDuration, string(def.Duration))),
		TravelMode:   services.TravelMode(valueOr(form, fieldTravelMode, string(def.TravelMode))),
		TravelTime:   services.TravelTime(valueOr(form, fieldTravelTime, string(def.TravelTime))),
		PMHours:      parseMoney(form.Get(fieldPMHours)),
	}

	seen := make(map[string]bool)
	for _, id := range form[fieldTrainerID] {
		id = strings.TrimSpace(id)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		sel.Trainers = append(sel.Trainers, parseTrainer(form, id))
	}
	if len(sel.Trainers) == 0 {
		sel.Trainers = def.Trainers
	}

	return sel.Normalize()
}

func parseTrainer(form url.Values, id string) services.Trainer {
	field := func(name string) string {
		return form.Get("trainer_" + id + "_" + name)
	}
	has := func(name string) bool {
		_, ok := form["trainer_"+id+"_"+name]
		return ok
	}

	t := services.NewTrainer(id)
	if v := field("role"); v != "" {
		t.Role = services.Role(v)
	}
	if v := field("location"); v != "" {
		t.Location = services.Location(v)
	}
	t.Count = parseCount(field("count"))

	t.Travel.NeedsFlight = parseBool(field("needs_flight"))
	if has("flight_cost") {
		t.Travel.FlightCost = parseMoney(field("flight_cost"))
	}
	t.Travel.LodgingNights = parseNights(field("lodging_nights"))
	if has("lodging_cost") {
		t.Travel.LodgingCostPerNight = parseMoney(field("lodging_cost"))
	}
	t.Travel.MileageCost = parseMoney(field("mileage_cost"))
	t.Travel.MealAllowance = parseMoney(field("meal_allowance"))
	t.Travel.OtherExpenses = parseMoney(field("other_expenses"))
	return t
}

func valueOr(form url.Values, key, fallback string) string {
	if v := strings.TrimSpace(form.Get(key)); v != "" {
		return v
	}
	return fallback
}

// parseWhole reads a whole number, truncating any fraction ("2.7" -> 2).
func parseWhole(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

func parseCount(s string) int {
	n, ok := parseWhole(s)
	if !ok || n < 1 {
		return 1
	}
	return n
}

func parseNights(s string) int {
	n, ok := parseWhole(s)
	if !ok || n < 0 {
		return 0
	}
	return n
}

func parseMoney(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}
