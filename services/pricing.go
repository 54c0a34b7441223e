// Package services holds the quote pricing engine, roster operations and the
// quote exporters.
package services

// LineCost is the priced view of a single roster row.
type LineCost struct {
	TrainerID       string
	Rate            float64 // fee for one trainer of this role
	TrainingFee     float64 // Rate * Count
	TravelPerPerson float64
	Travel          float64 // TravelPerPerson * Count
	Traveling       bool
}

// Breakdown is the derived cost summary of a Selection.
type Breakdown struct {
	Lines              []LineCost
	TrainerFees        float64
	Travel             float64
	TravelingHeadcount int
	PMCost             float64
	Subtotal           float64
	AdminCost          float64
	Total              float64
}

// CalcTravelPerPerson returns what one person on the row costs to bring on
// site. Virtual training and local trainers cost nothing in itemized mode;
// in flat mode every trainer pays the bucket fee.
func CalcTravelPerPerson(sel Selection, t Trainer) float64 {
	if sel.TrainingType == TrainingVirtual {
		return 0
	}
	switch sel.TravelMode {
	case TravelFlat:
		fee, _ := FlatTravelFee(sel.TravelTime)
		return fee
	default:
		if t.Location != LocationTraveling {
			return 0
		}
		d := t.Travel
		var flight float64
		if d.NeedsFlight {
			flight = d.FlightCost
		}
		lodging := float64(d.LodgingNights) * d.LodgingCostPerNight
		return flight + lodging + d.MileageCost + d.MealAllowance + d.OtherExpenses
	}
}

// IsTraveling reports whether the row is charged travel under sel.
func IsTraveling(sel Selection, t Trainer) bool {
	if sel.TrainingType == TrainingVirtual {
		return false
	}
	if sel.TravelMode == TravelFlat {
		return true
	}
	return t.Location == LocationTraveling
}

// CalcPMCost returns the project-management charge.
func CalcPMCost(hours float64) float64 {
	return hours * PMHourlyRate
}

// CalcAdminCost returns the administrative surcharge on a subtotal.
func CalcAdminCost(subtotal float64) float64 {
	return subtotal * AdminPercent
}

// ComputeBreakdown prices a selection. It is total and side-effect free; the
// caller is expected to pass a normalized selection.
func ComputeBreakdown(sel Selection) Breakdown {
	b := Breakdown{Lines: make([]LineCost, 0, len(sel.Trainers))}

	for _, t := range sel.Trainers {
		rate, _ := TrainerRate(sel.TrainingType, sel.Duration, t.Role)
		perPerson := CalcTravelPerPerson(sel, t)
		line := LineCost{
			TrainerID:       t.ID,
			Rate:            rate,
			TrainingFee:     rate * float64(t.Count),
			TravelPerPerson: perPerson,
			Travel:          perPerson * float64(t.Count),
			Traveling:       IsTraveling(sel, t),
		}
		b.Lines = append(b.Lines, line)
		b.TrainerFees += line.TrainingFee
		b.Travel += line.Travel
		if line.Traveling {
			b.TravelingHeadcount += t.Count
		}
	}

	b.PMCost = CalcPMCost(sel.PMHours)
	b.Subtotal = b.TrainerFees + b.Travel + b.PMCost
	b.AdminCost = CalcAdminCost(b.Subtotal)
	b.Total = b.Subtotal + b.AdminCost
	return b
}

// Line returns the priced line for a trainer id.
func (b Breakdown) Line(trainerID string) (LineCost, bool) {
	for _, l := range b.Lines {
		if l.TrainerID == trainerID {
			return l, true
		}
	}
	return LineCost{}, false
}
