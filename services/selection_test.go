package services

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func threeRows() Roster {
	return Roster{
		{ID: "a", Role: RoleLead, Count: 1},
		{ID: "b", Role: RoleTrainer, Count: 2},
		{ID: "c", Role: RoleApprentice, Count: 3},
	}
}

func TestRoster_RemoveLastRowIsNoop(t *testing.T) {
	r := Roster{{ID: "only", Role: RoleLead, Count: 1}}
	got := r.Remove("only")
	if len(got) != 1 || got[0].ID != "only" {
		t.Errorf("Remove on single row = %+v, want unchanged", got)
	}
}

func TestRoster_Remove(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		expect []string
	}{
		{"first", "a", []string{"b", "c"}},
		{"middle", "b", []string{"a", "c"}},
		{"last", "c", []string{"a", "b"}},
		{"unknown id", "zzz", []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := threeRows().Remove(tt.id)
			if len(got) != len(tt.expect) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.expect))
			}
			for i, id := range tt.expect {
				if got[i].ID != id {
					t.Errorf("row %d = %q, want %q", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestRoster_RemoveDownToOne(t *testing.T) {
	r := threeRows().Remove("a").Remove("b").Remove("c")
	if len(r) != 1 || r[0].ID != "c" {
		t.Errorf("roster = %+v, want only c", r)
	}
}

func TestRoster_AddDoesNotAlias(t *testing.T) {
	base := make(Roster, 1, 4)
	base[0] = Trainer{ID: "a", Role: RoleLead, Count: 1}
	first := base.Add(NewTrainer("x"))
	second := base.Add(NewTrainer("y"))
	if first[1].ID != "x" || second[1].ID != "y" {
		t.Errorf("Add aliased backing array: %q %q", first[1].ID, second[1].ID)
	}
}

func TestRoster_UpdateAndHeadcount(t *testing.T) {
	r := threeRows().Update("b", func(t *Trainer) { t.Count = 10 })
	if got := r.TotalHeadcount(); got != 14 {
		t.Errorf("TotalHeadcount = %d, want 14", got)
	}
	if orig := threeRows(); orig[1].Count != 2 {
		t.Errorf("Update mutated the source roster")
	}
	if tr, ok := r.Find("b"); !ok || tr.Count != 10 {
		t.Errorf("Find(b) = %+v, %v", tr, ok)
	}
}

func TestNewTrainer_Defaults(t *testing.T) {
	tr := NewTrainer("")
	if tr.ID == "" {
		t.Error("expected generated id")
	}
	if tr.Role != RoleTrainer || tr.Count != 1 || tr.Location != LocationLocal {
		t.Errorf("unexpected defaults: %+v", tr)
	}
	if tr.Travel.FlightCost != 400 || tr.Travel.LodgingCostPerNight != 150 || tr.Travel.NeedsFlight {
		t.Errorf("unexpected travel defaults: %+v", tr.Travel)
	}
}

func TestDefaultSelection(t *testing.T) {
	sel := DefaultSelection("bogus")
	if sel.TrainingType != TrainingInPerson || sel.Duration != Duration60 {
		t.Errorf("unexpected defaults: %+v", sel)
	}
	if sel.TravelMode != TravelItemized {
		t.Errorf("invalid mode should fall back to itemized, got %q", sel.TravelMode)
	}
	if len(sel.Trainers) != 1 || sel.Trainers[0].Role != RoleLead || sel.Trainers[0].ID != "1" {
		t.Errorf("unexpected default roster: %+v", sel.Trainers)
	}
	if DefaultSelection(TravelFlat).TravelMode != TravelFlat {
		t.Error("expected flat mode to be kept")
	}
}

func TestSelection_Normalize(t *testing.T) {
	sel := Selection{
		TrainingType: "hybrid",
		Duration:     "15",
		TravelMode:   "",
		TravelTime:   "forever",
		PMHours:      -3,
		Trainers: Roster{
			{
				ID: "", Role: "intern", Count: 0, Location: "moon",
				Travel: TravelDetails{FlightCost: -1, LodgingNights: -2, LodgingCostPerNight: -3, MileageCost: -4, MealAllowance: -5, OtherExpenses: -6},
			},
		},
	}

	got := sel.Normalize()
	if got.TrainingType != TrainingInPerson || got.Duration != Duration60 ||
		got.TravelMode != TravelItemized || got.TravelTime != TravelTimeLocal {
		t.Errorf("enums not defaulted: %+v", got)
	}
	if got.PMHours != 0 {
		t.Errorf("PMHours = %v, want 0", got.PMHours)
	}
	tr := got.Trainers[0]
	if tr.ID == "" || tr.Role != RoleTrainer || tr.Count != 1 || tr.Location != LocationLocal {
		t.Errorf("trainer not normalized: %+v", tr)
	}
	if tr.Travel != (TravelDetails{}) {
		t.Errorf("travel not clamped: %+v", tr.Travel)
	}
	if sel.Trainers[0].Count != 0 {
		t.Error("Normalize mutated its receiver's roster")
	}
}

func TestSelection_NormalizeEmptyRoster(t *testing.T) {
	got := Selection{}.Normalize()
	if len(got.Trainers) != 1 {
		t.Fatalf("expected default roster, got %+v", got.Trainers)
	}
}

func TestDurationLabel(t *testing.T) {
	tests := map[Duration]string{
		Duration60:  "60 minutes",
		Duration90:  "90 minutes",
		Duration240: "2-4 hours",
		Duration480: "5-8 hours",
		"45":        "45 minutes",
	}
	for d, want := range tests {
		if got := d.Label(); got != want {
			t.Errorf("Duration(%q).Label() = %q, want %q", d, got, want)
		}
	}
}

func TestTrainer_UnmarshalYAMLKeepsDefaults(t *testing.T) {
	var rows []Trainer
	src := "- id: x\n  role: lead\n  travel:\n    lodging_nights: 2\n"
	if err := yaml.Unmarshal([]byte(src), &rows); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	got := rows[0]
	if got.ID != "x" || got.Role != RoleLead || got.Count != 1 || got.Location != LocationLocal {
		t.Errorf("unexpected row %+v", got)
	}
	if got.Travel.LodgingNights != 2 {
		t.Errorf("LodgingNights = %d, want 2", got.Travel.LodgingNights)
	}
	if got.Travel.FlightCost != DefaultFlightCost || got.Travel.LodgingCostPerNight != DefaultLodgingCostPerNight {
		t.Errorf("expected default travel rates, got %+v", got.Travel)
	}
}

func TestSelection_NormalizeRenamesDuplicateIDs(t *testing.T) {
	sel := Selection{
		TrainingType: TrainingInPerson,
		Duration:     Duration60,
		Trainers: Roster{
			{ID: "x", Role: RoleLead, Count: 1},
			{ID: "x", Role: RoleApprentice, Count: 1},
			{ID: "", Role: RoleTrainer, Count: 1},
		},
	}

	got := sel.Normalize()
	if got.Trainers[0].ID != "x" {
		t.Errorf("first row ID = %q, want x", got.Trainers[0].ID)
	}
	ids := map[string]bool{}
	for _, tr := range got.Trainers {
		if tr.ID == "" || ids[tr.ID] {
			t.Fatalf("ids not unique: %+v", got.Trainers)
		}
		ids[tr.ID] = true
	}

	b := ComputeBreakdown(got)
	line, ok := b.Line(got.Trainers[1].ID)
	if !ok || line.TrainingFee != 150 {
		t.Errorf("apprentice line = %+v (ok=%v), want fee 150", line, ok)
	}
}
