package services

import (
	"math"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// TravelDetails is the per-person travel estimate for a traveling trainer.
type TravelDetails struct {
	NeedsFlight         bool    `yaml:"needs_flight"`
	FlightCost          float64 `yaml:"flight_cost"`
	LodgingNights       int     `yaml:"lodging_nights"`
	LodgingCostPerNight float64 `yaml:"lodging_cost_per_night"`
	MileageCost         float64 `yaml:"mileage_cost"`
	MealAllowance       float64 `yaml:"meal_allowance"`
	OtherExpenses       float64 `yaml:"other_expenses"`
}

// DefaultTravelDetails returns the travel details a new trainer row starts with.
func DefaultTravelDetails() TravelDetails {
	return TravelDetails{
		FlightCost:          DefaultFlightCost,
		LodgingCostPerNight: DefaultLodgingCostPerNight,
	}
}

// Trainer is one line of the roster: Count trainers sharing a role and location.
type Trainer struct {
	ID       string        `yaml:"id"`
	Role     Role          `yaml:"role"`
	Count    int           `yaml:"count"`
	Location Location      `yaml:"location"`
	Travel   TravelDetails `yaml:"travel"`
}

// NewTrainer returns a trainer row with the defaults used when a row is added.
// An empty id is replaced with a fresh UUID.
func NewTrainer(id string) Trainer {
	if id == "" {
		id = uuid.NewString()
	}
	return Trainer{
		ID:       id,
		Role:     RoleTrainer,
		Count:    1,
		Location: LocationLocal,
		Travel:   DefaultTravelDetails(),
	}
}

// UnmarshalYAML starts the row from NewTrainer's defaults, so a selection
// file only lists the fields it changes.
func (t *Trainer) UnmarshalYAML(value *yaml.Node) error {
	type plain Trainer
	row := plain(NewTrainer(""))
	if err := value.Decode(&row); err != nil {
		return err
	}
	*t = Trainer(row)
	return nil
}

// Roster is the ordered list of trainer rows. It always holds at least one row.
type Roster []Trainer

// Add appends t and returns the new roster.
func (r Roster) Add(t Trainer) Roster {
	out := make(Roster, 0, len(r)+1)
	out = append(out, r...)
	return append(out, t)
}

// Remove drops the row with the given id. Removing the only remaining row, or
// an id that is not present, returns the roster unchanged.
func (r Roster) Remove(id string) Roster {
	if len(r) <= 1 {
		return r
	}
	out := make(Roster, 0, len(r))
	for _, t := range r {
		if t.ID != id {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return r
	}
	return out
}

// Update applies fn to the row with the given id.
func (r Roster) Update(id string, fn func(*Trainer)) Roster {
	out := make(Roster, len(r))
	copy(out, r)
	for i := range out {
		if out[i].ID == id {
			fn(&out[i])
		}
	}
	return out
}

// Find returns the row with the given id.
func (r Roster) Find(id string) (Trainer, bool) {
	for _, t := range r {
		if t.ID == id {
			return t, true
		}
	}
	return Trainer{}, false
}

// TotalHeadcount sums Count over all rows.
func (r Roster) TotalHeadcount() int {
	var n int
	for _, t := range r {
		n += t.Count
	}
	return n
}

// Selection is the complete form state a quote is computed from.
type Selection struct {
	TrainingType TrainingType `yaml:"training_type"`
	Duration     Duration     `yaml:"duration"`
	TravelMode   TravelMode   `yaml:"travel_mode"`
	TravelTime   TravelTime   `yaml:"travel_time"`
	Trainers     Roster       `yaml:"trainers"`
	PMHours      float64      `yaml:"pm_hours"`
}

// DefaultSelection is the form state shown on first load.
func DefaultSelection(mode TravelMode) Selection {
	if !mode.Valid() {
		mode = TravelItemized
	}
	lead := NewTrainer("1")
	lead.Role = RoleLead
	return Selection{
		TrainingType: TrainingInPerson,
		Duration:     Duration60,
		TravelMode:   mode,
		TravelTime:   TravelTimeLocal,
		Trainers:     Roster{lead},
	}
}

// Normalize clamps a selection to values the pricing engine accepts: unknown
// enum values fall back to defaults, counts below 1 become 1, negative numbers
// become 0 and an empty roster gets the default lead trainer. Empty or
// repeated trainer ids are replaced with fresh UUIDs; the first use of an id
// keeps it.
func (s Selection) Normalize() Selection {
	def := DefaultSelection(TravelItemized)
	if !s.TrainingType.Valid() {
		s.TrainingType = def.TrainingType
	}
	if !s.Duration.Valid() {
		s.Duration = def.Duration
	}
	if !s.TravelMode.Valid() {
		s.TravelMode = def.TravelMode
	}
	if !s.TravelTime.Valid() {
		s.TravelTime = def.TravelTime
	}
	s.PMHours = nonNegative(s.PMHours)
	if len(s.Trainers) == 0 {
		s.Trainers = def.Trainers
		return s
	}

	trainers := make(Roster, len(s.Trainers))
	seen := make(map[string]bool, len(s.Trainers))
	for i, t := range s.Trainers {
		// Costs are looked up by id, so ids must be unique.
		if t.ID == "" || seen[t.ID] {
			t.ID = uuid.NewString()
		}
		seen[t.ID] = true
		if !t.Role.Valid() {
			t.Role = RoleTrainer
		}
		if t.Count < 1 {
			t.Count = 1
		}
		if !t.Location.Valid() {
			t.Location = LocationLocal
		}
		t.Travel.FlightCost = nonNegative(t.Travel.FlightCost)
		if t.Travel.LodgingNights < 0 {
			t.Travel.LodgingNights = 0
		}
		t.Travel.LodgingCostPerNight = nonNegative(t.Travel.LodgingCostPerNight)
		t.Travel.MileageCost = nonNegative(t.Travel.MileageCost)
		t.Travel.MealAllowance = nonNegative(t.Travel.MealAllowance)
		t.Travel.OtherExpenses = nonNegative(t.Travel.OtherExpenses)
		trainers[i] = t
	}
	s.Trainers = trainers
	return s
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
