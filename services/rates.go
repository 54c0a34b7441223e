package services

// TrainingType is how the training is delivered.
type TrainingType string

const (
	TrainingInPerson TrainingType = "in-person"
	TrainingVirtual  TrainingType = "virtual"
)

// Duration is a session-length bucket in minutes.
type Duration string

const (
	Duration60  Duration = "60"
	Duration90  Duration = "90"
	Duration240 Duration = "240"
	Duration480 Duration = "480"
)

// Role is the trainer's seniority on the engagement.
type Role string

const (
	RoleLead       Role = "lead"
	RoleTrainer    Role = "trainer"
	RoleApprentice Role = "apprentice"
)

// Location tells whether a trainer has to travel to an in-person session.
type Location string

const (
	LocationLocal     Location = "local"
	LocationTraveling Location = "traveling"
)

// TravelMode selects how travel is costed for in-person training.
type TravelMode string

const (
	// TravelItemized prices each traveling trainer from their own travel details.
	TravelItemized TravelMode = "itemized"
	// TravelFlat charges a flat per-person fee for every trainer, keyed by TravelTime.
	TravelFlat TravelMode = "flat"
)

// TravelTime is the travel-time bucket used by TravelFlat.
type TravelTime string

const (
	TravelTimeLocal    TravelTime = "local"
	TravelTimeHalfDay  TravelTime = "half-day"
	TravelTimeFullDay  TravelTime = "full-day"
	TravelTimeExtended TravelTime = "extended"
	TravelTimeNA       TravelTime = "na"
)

const (
	PMHourlyRate        = 125.0
	AdminPercent        = 0.30
	MileageRate         = 0.67 // IRS standard mileage rate, shown as a hint only
	MealAllowancePerDay = 75.0 // suggested daily meal allowance, shown as a hint only

	DefaultFlightCost          = 400.0
	DefaultLodgingCostPerNight = 150.0
)

// trainerRates maps training type and duration to the per-trainer fee by role.
var trainerRates = map[TrainingType]map[Duration]map[Role]float64{
	TrainingInPerson: {
		Duration60:  {RoleLead: 500, RoleTrainer: 350, RoleApprentice: 150},
		Duration90:  {RoleLead: 750, RoleTrainer: 500, RoleApprentice: 200},
		Duration240: {RoleLead: 1000, RoleTrainer: 750, RoleApprentice: 300},
		Duration480: {RoleLead: 1500, RoleTrainer: 1000, RoleApprentice: 400},
	},
	TrainingVirtual: {
		Duration60:  {RoleLead: 300, RoleTrainer: 210, RoleApprentice: 90},
		Duration90:  {RoleLead: 450, RoleTrainer: 300, RoleApprentice: 120},
		Duration240: {RoleLead: 600, RoleTrainer: 450, RoleApprentice: 180},
		Duration480: {RoleLead: 900, RoleTrainer: 600, RoleApprentice: 240},
	},
}

var flatTravelFees = map[TravelTime]float64{
	TravelTimeLocal:    0,
	TravelTimeHalfDay:  250,
	TravelTimeFullDay:  500,
	TravelTimeExtended: 750,
	TravelTimeNA:       0,
}

// TrainerRate returns the fee for one trainer of the given role. Unknown keys
// return 0, false.
func TrainerRate(tt TrainingType, d Duration, r Role) (float64, bool) {
	byDuration, ok := trainerRates[tt]
	if !ok {
		return 0, false
	}
	byRole, ok := byDuration[d]
	if !ok {
		return 0, false
	}
	rate, ok := byRole[r]
	return rate, ok
}

// FlatTravelFee returns the per-person travel fee for a travel-time bucket.
func FlatTravelFee(t TravelTime) (float64, bool) {
	fee, ok := flatTravelFees[t]
	return fee, ok
}

// Option is a value/label pair for select inputs.
type Option struct {
	Value string
	Label string
}

var TrainingTypeOptions = []Option{
	{string(TrainingInPerson), "In Person"},
	{string(TrainingVirtual), "Virtual"},
}

var DurationOptions = []Option{
	{string(Duration60), "60 minutes"},
	{string(Duration90), "90 minutes"},
	{string(Duration240), "2-4 hours"},
	{string(Duration480), "5-8 hours"},
}

var RoleOptions = []Option{
	{string(RoleLead), "Lead Trainer"},
	{string(RoleTrainer), "Trainer"},
	{string(RoleApprentice), "Apprentice"},
}

var LocationOptions = []Option{
	{string(LocationLocal), "Local"},
	{string(LocationTraveling), "Traveling"},
}

var TravelModeOptions = []Option{
	{string(TravelItemized), "Itemized"},
	{string(TravelFlat), "Flat fee"},
}

var TravelTimeOptions = []Option{
	{string(TravelTimeLocal), "Local"},
	{string(TravelTimeHalfDay), "Half day"},
	{string(TravelTimeFullDay), "Full day"},
	{string(TravelTimeExtended), "Extended"},
	{string(TravelTimeNA), "N/A"},
}

func labelFor(opts []Option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

func (t TrainingType) Label() string { return labelFor(TrainingTypeOptions, string(t)) }
func (r Role) Label() string         { return labelFor(RoleOptions, string(r)) }
func (l Location) Label() string     { return labelFor(LocationOptions, string(l)) }
func (m TravelMode) Label() string   { return labelFor(TravelModeOptions, string(m)) }
func (t TravelTime) Label() string   { return labelFor(TravelTimeOptions, string(t)) }

// Label returns the human-readable bucket name. Unknown values read as
// "<n> minutes".
func (d Duration) Label() string {
	for _, o := range DurationOptions {
		if o.Value == string(d) {
			return o.Label
		}
	}
	return string(d) + " minutes"
}

func validOption(opts []Option, value string) bool {
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}
	return false
}

func (t TrainingType) Valid() bool { return validOption(TrainingTypeOptions, string(t)) }
func (d Duration) Valid() bool     { return validOption(DurationOptions, string(d)) }
func (r Role) Valid() bool         { return validOption(RoleOptions, string(r)) }
func (l Location) Valid() bool     { return validOption(LocationOptions, string(l)) }
func (m TravelMode) Valid() bool   { return validOption(TravelModeOptions, string(m)) }
func (t TravelTime) Valid() bool   { return validOption(TravelTimeOptions, string(t)) }
