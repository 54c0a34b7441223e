package services

import (
	"math"
	"testing"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.001
}

func leadOnly(tt TrainingType, d Duration) Selection {
	sel := DefaultSelection(TravelItemized)
	sel.TrainingType = tt
	sel.Duration = d
	return sel
}

func TestTrainerRate_Table(t *testing.T) {
	tests := []struct {
		tt     TrainingType
		d      Duration
		role   Role
		expect float64
	}{
		{TrainingInPerson, Duration60, RoleLead, 500},
		{TrainingInPerson, Duration60, RoleTrainer, 350},
		{TrainingInPerson, Duration60, RoleApprentice, 150},
		{TrainingInPerson, Duration90, RoleLead, 750},
		{TrainingInPerson, Duration90, RoleTrainer, 500},
		{TrainingInPerson, Duration90, RoleApprentice, 200},
		{TrainingInPerson, Duration240, RoleLead, 1000},
		{TrainingInPerson, Duration240, RoleTrainer, 750},
		{TrainingInPerson, Duration240, RoleApprentice, 300},
		{TrainingInPerson, Duration480, RoleLead, 1500},
		{TrainingInPerson, Duration480, RoleTrainer, 1000},
		{TrainingInPerson, Duration480, RoleApprentice, 400},
		{TrainingVirtual, Duration60, RoleLead, 300},
		{TrainingVirtual, Duration60, RoleTrainer, 210},
		{TrainingVirtual, Duration60, RoleApprentice, 90},
		{TrainingVirtual, Duration90, RoleLead, 450},
		{TrainingVirtual, Duration90, RoleTrainer, 300},
		{TrainingVirtual, Duration90, RoleApprentice, 120},
		{TrainingVirtual, Duration240, RoleLead, 600},
		{TrainingVirtual, Duration240, RoleTrainer, 450},
		{TrainingVirtual, Duration240, RoleApprentice, 180},
		{TrainingVirtual, Duration480, RoleLead, 900},
		{TrainingVirtual, Duration480, RoleTrainer, 600},
		{TrainingVirtual, Duration480, RoleApprentice, 240},
	}

	for _, tt := range tests {
		name := string(tt.tt) + "/" + string(tt.d) + "/" + string(tt.role)
		t.Run(name, func(t *testing.T) {
			got, ok := TrainerRate(tt.tt, tt.d, tt.role)
			if !ok {
				t.Fatalf("TrainerRate(%s) not found", name)
			}
			if got != tt.expect {
				t.Errorf("TrainerRate(%s) = %v, want %v", name, got, tt.expect)
			}
		})
	}
}

func TestTrainerRate_Unknown(t *testing.T) {
	if _, ok := TrainerRate("hybrid", Duration60, RoleLead); ok {
		t.Error("expected unknown training type to miss")
	}
	if _, ok := TrainerRate(TrainingVirtual, "120", RoleLead); ok {
		t.Error("expected unknown duration to miss")
	}
	if rate, ok := TrainerRate(TrainingVirtual, Duration60, "intern"); ok || rate != 0 {
		t.Errorf("expected unknown role to return 0,false, got %v,%v", rate, ok)
	}
}

func TestComputeBreakdown_TrainerFeesSumRateTimesCount(t *testing.T) {
	for _, tt := range []TrainingType{TrainingInPerson, TrainingVirtual} {
		for _, d := range []Duration{Duration60, Duration90, Duration240, Duration480} {
			sel := leadOnly(tt, d)
			sel.Trainers = Roster{
				{ID: "a", Role: RoleLead, Count: 1, Location: LocationLocal},
				{ID: "b", Role: RoleTrainer, Count: 3, Location: LocationLocal},
				{ID: "c", Role: RoleApprentice, Count: 2, Location: LocationLocal},
			}
			lead, _ := TrainerRate(tt, d, RoleLead)
			trainer, _ := TrainerRate(tt, d, RoleTrainer)
			apprentice, _ := TrainerRate(tt, d, RoleApprentice)
			want := lead + 3*trainer + 2*apprentice

			got := ComputeBreakdown(sel)
			if !approxEqual(got.TrainerFees, want) {
				t.Errorf("%s/%s TrainerFees = %v, want %v", tt, d, got.TrainerFees, want)
			}
		}
	}
}

func TestComputeBreakdown_Examples(t *testing.T) {
	tests := []struct {
		name         string
		sel          Selection
		expectFees   float64
		expectTravel float64
		expectSub    float64
		expectAdmin  float64
		expectTotal  float64
	}{
		{
			name:         "in-person 60 one local lead",
			sel:          leadOnly(TrainingInPerson, Duration60),
			expectFees:   500,
			expectTravel: 0,
			expectSub:    500,
			expectAdmin:  150,
			expectTotal:  650,
		},
		{
			name: "virtual 90 two trainers",
			sel: Selection{
				TrainingType: TrainingVirtual,
				Duration:     Duration90,
				TravelMode:   TravelItemized,
				TravelTime:   TravelTimeLocal,
				Trainers:     Roster{{ID: "1", Role: RoleTrainer, Count: 2, Location: LocationLocal}},
			},
			expectFees:   600,
			expectTravel: 0,
			expectSub:    600,
			expectAdmin:  180,
			expectTotal:  780,
		},
		{
			name: "pm hours only add to subtotal",
			sel: func() Selection {
				s := leadOnly(TrainingInPerson, Duration60)
				s.PMHours = 2.5
				return s
			}(),
			expectFees:   500,
			expectTravel: 0,
			expectSub:    812.5,
			expectAdmin:  243.75,
			expectTotal:  1056.25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeBreakdown(tt.sel)
			if !approxEqual(got.TrainerFees, tt.expectFees) {
				t.Errorf("TrainerFees = %v, want %v", got.TrainerFees, tt.expectFees)
			}
			if !approxEqual(got.Travel, tt.expectTravel) {
				t.Errorf("Travel = %v, want %v", got.Travel, tt.expectTravel)
			}
			if !approxEqual(got.Subtotal, tt.expectSub) {
				t.Errorf("Subtotal = %v, want %v", got.Subtotal, tt.expectSub)
			}
			if !approxEqual(got.AdminCost, tt.expectAdmin) {
				t.Errorf("AdminCost = %v, want %v", got.AdminCost, tt.expectAdmin)
			}
			if !approxEqual(got.Total, tt.expectTotal) {
				t.Errorf("Total = %v, want %v", got.Total, tt.expectTotal)
			}
		})
	}
}

func TestComputeBreakdown_ItemizedTravel(t *testing.T) {
	sel := leadOnly(TrainingInPerson, Duration240)
	sel.Trainers = Roster{
		{
			ID: "t1", Role: RoleLead, Count: 2, Location: LocationTraveling,
			Travel: TravelDetails{
				NeedsFlight: true, FlightCost: 400,
				LodgingNights: 2, LodgingCostPerNight: 150,
				MileageCost: 20, MealAllowance: 75, OtherExpenses: 5,
			},
		},
		{
			ID: "t2", Role: RoleTrainer, Count: 1, Location: LocationTraveling,
			Travel: TravelDetails{NeedsFlight: false, FlightCost: 999, LodgingNights: 1, LodgingCostPerNight: 100},
		},
		{
			ID: "t3", Role: RoleApprentice, Count: 4, Location: LocationLocal,
			Travel: TravelDetails{NeedsFlight: true, FlightCost: 400},
		},
	}

	got := ComputeBreakdown(sel)

	// t1: (400 + 300 + 20 + 75 + 5) * 2 = 1600; t2: 100; t3 local.
	if !approxEqual(got.Travel, 1700) {
		t.Errorf("Travel = %v, want 1700", got.Travel)
	}
	if got.TravelingHeadcount != 3 {
		t.Errorf("TravelingHeadcount = %d, want 3", got.TravelingHeadcount)
	}
	line, ok := got.Line("t1")
	if !ok {
		t.Fatal("expected line for t1")
	}
	if !approxEqual(line.TravelPerPerson, 800) || !approxEqual(line.Travel, 1600) {
		t.Errorf("t1 travel = %v per person, %v total", line.TravelPerPerson, line.Travel)
	}
	if local, _ := got.Line("t3"); local.Travel != 0 || local.Traveling {
		t.Errorf("local trainer charged travel: %+v", local)
	}
}

func TestComputeBreakdown_FlatTravelChargesEveryTrainer(t *testing.T) {
	tests := []struct {
		bucket TravelTime
		fee    float64
	}{
		{TravelTimeLocal, 0},
		{TravelTimeHalfDay, 250},
		{TravelTimeFullDay, 500},
		{TravelTimeExtended, 750},
		{TravelTimeNA, 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.bucket), func(t *testing.T) {
			sel := leadOnly(TrainingInPerson, Duration60)
			sel.TravelMode = TravelFlat
			sel.TravelTime = tt.bucket
			sel.Trainers = Roster{
				{ID: "1", Role: RoleLead, Count: 1, Location: LocationLocal},
				{ID: "2", Role: RoleTrainer, Count: 2, Location: LocationTraveling},
			}

			got := ComputeBreakdown(sel)
			if !approxEqual(got.Travel, tt.fee*3) {
				t.Errorf("Travel = %v, want %v", got.Travel, tt.fee*3)
			}
			if got.TravelingHeadcount != 3 {
				t.Errorf("TravelingHeadcount = %d, want 3", got.TravelingHeadcount)
			}
		})
	}
}

func TestComputeBreakdown_VirtualNeverChargesTravel(t *testing.T) {
	traveling := Roster{
		{
			ID: "1", Role: RoleLead, Count: 3, Location: LocationTraveling,
			Travel: TravelDetails{NeedsFlight: true, FlightCost: 900, LodgingNights: 3, LodgingCostPerNight: 200, OtherExpenses: 50},
		},
	}
	for _, mode := range []TravelMode{TravelItemized, TravelFlat} {
		sel := Selection{
			TrainingType: TrainingVirtual,
			Duration:     Duration480,
			TravelMode:   mode,
			TravelTime:   TravelTimeExtended,
			Trainers:     traveling,
		}
		got := ComputeBreakdown(sel)
		if got.Travel != 0 {
			t.Errorf("%s: virtual Travel = %v, want 0", mode, got.Travel)
		}
		if got.TravelingHeadcount != 0 {
			t.Errorf("%s: virtual TravelingHeadcount = %d, want 0", mode, got.TravelingHeadcount)
		}
	}
}

func TestComputeBreakdown_AdminIsThirtyPercentOfSubtotal(t *testing.T) {
	sels := []Selection{
		leadOnly(TrainingInPerson, Duration60),
		leadOnly(TrainingVirtual, Duration480),
		{
			TrainingType: TrainingInPerson,
			Duration:     Duration90,
			TravelMode:   TravelFlat,
			TravelTime:   TravelTimeFullDay,
			PMHours:      7.5,
			Trainers: Roster{
				{ID: "1", Role: RoleLead, Count: 2},
				{ID: "2", Role: RoleApprentice, Count: 5},
			},
		},
	}

	for i, sel := range sels {
		got := ComputeBreakdown(sel)
		wantSub := got.TrainerFees + got.Travel + got.PMCost
		if !approxEqual(got.Subtotal, wantSub) {
			t.Errorf("[%d] Subtotal = %v, want %v", i, got.Subtotal, wantSub)
		}
		if !approxEqual(got.AdminCost, wantSub*0.30) {
			t.Errorf("[%d] AdminCost = %v, want %v", i, got.AdminCost, wantSub*0.30)
		}
		if !approxEqual(got.Total, wantSub*1.30) {
			t.Errorf("[%d] Total = %v, want %v", i, got.Total, wantSub*1.30)
		}
	}
}

func TestCalcPMCost(t *testing.T) {
	tests := []struct {
		name   string
		hours  float64
		expect float64
	}{
		{"zero", 0, 0},
		{"whole hours", 4, 500},
		{"half hour steps", 1.5, 187.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalcPMCost(tt.hours); got != tt.expect {
				t.Errorf("CalcPMCost(%v) = %v, want %v", tt.hours, got, tt.expect)
			}
		})
	}
}
