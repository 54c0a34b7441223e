package templates

import (
	"fmt"
	"net/url"
	"strconv"

	"trainingquote/services"
)

type hiddenField struct {
	Name  string
	Value string
}

func isInPerson(sel services.Selection) bool {
	return sel.TrainingType == services.TrainingInPerson
}

// showLocation reports whether trainers pick local/traveling, which only
// matters for in-person itemized quotes.
func showLocation(sel services.Selection) bool {
	return isInPerson(sel) && sel.TravelMode != services.TravelFlat
}

func showTravelPanel(sel services.Selection, t services.Trainer) bool {
	return showLocation(sel) && t.Location == services.LocationTraveling
}

func fieldName(t services.Trainer, field string) string {
	return "trainer_" + t.ID + "_" + field
}

// removeURL builds the remove route for a trainer row. The id is a path
// segment, so it is escaped before the markup escaping templ applies.
func removeURL(id string) string {
	return "/quote/trainers/" + url.PathEscape(id) + "/remove"
}

// formatNumber renders a number for an input value without grouping.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func lineFor(b services.Breakdown, id string) services.LineCost {
	line, _ := b.Line(id)
	return line
}

// hiddenTravelFields keeps a trainer's travel details posted while the panel
// is not shown, so toggling location or training type does not lose them.
func hiddenTravelFields(t services.Trainer) []hiddenField {
	d := t.Travel
	fields := []hiddenField{
		{fieldName(t, "flight_cost"), formatNumber(d.FlightCost)},
		{fieldName(t, "lodging_nights"), strconv.Itoa(d.LodgingNights)},
		{fieldName(t, "lodging_cost"), formatNumber(d.LodgingCostPerNight)},
		{fieldName(t, "mileage_cost"), formatNumber(d.MileageCost)},
		{fieldName(t, "meal_allowance"), formatNumber(d.MealAllowance)},
		{fieldName(t, "other_expenses"), formatNumber(d.OtherExpenses)},
	}
	if d.NeedsFlight {
		fields = append(fields, hiddenField{fieldName(t, "needs_flight"), "on"})
	}
	return fields
}

func flatFeeHint(sel services.Selection) string {
	fee, _ := services.FlatTravelFee(sel.TravelTime)
	return services.FormatUSD(fee) + " per person, charged for every trainer"
}

func travelPreview(t services.Trainer, line services.LineCost) string {
	s := "Travel Cost per Person: " + services.FormatUSD(line.TravelPerPerson)
	if t.Count > 1 {
		s += fmt.Sprintf(" × %d = %s", t.Count, services.FormatUSD(line.Travel))
	}
	return s
}

func withCount(label string, count int) string {
	if count > 1 {
		return fmt.Sprintf("%s (%dx)", label, count)
	}
	return label
}

func feeLabel(sel services.Selection, t services.Trainer) string {
	label := t.Role.Label()
	if showLocation(sel) {
		label += " (" + string(t.Location) + ")"
	}
	return withCount(label, t.Count) + ":"
}

func flatTravelLabel(sel services.Selection, b services.Breakdown) string {
	fee, _ := services.FlatTravelFee(sel.TravelTime)
	return fmt.Sprintf("%s (%d × %s):", sel.TravelTime.Label(), b.TravelingHeadcount, services.FormatUSD(fee))
}

func pmLabel(sel services.Selection) string {
	return fmt.Sprintf("PM Hours (%s × %s):", services.FormatAmount(sel.PMHours), services.FormatUSD(services.PMHourlyRate))
}

func adminLabel() string {
	return fmt.Sprintf("Administrative Cost (%d%%):", int(services.AdminPercent*100))
}
