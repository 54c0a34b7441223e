package services

import (
	"fmt"
	"strings"
	"time"
)

// RowKind tells exporters how a row should be laid out and styled.
type RowKind int

const (
	RowTitle   RowKind = iota // document heading with an empty value cell
	RowBlank                  // spacer
	RowSection                // single-cell section heading
	RowItem                   // label/value pair
	RowTotal                  // grand total line
)

// ExportRow is a single label/value row of the quote export.
type ExportRow struct {
	Kind  RowKind
	Label string
	Value string
}

// Cells returns the row as spreadsheet cells. Blank and section rows are a
// single cell; title, item and total rows are two.
func (r ExportRow) Cells() []string {
	switch r.Kind {
	case RowBlank:
		return []string{""}
	case RowSection:
		return []string{r.Label}
	default:
		return []string{r.Label, r.Value}
	}
}

// ExportData holds everything an exporter needs to render a quote. Title and
// GeneratedAt also go into the document metadata of xlsx and pdf files.
type ExportData struct {
	Title       string
	GeneratedAt time.Time
	Rows        []ExportRow
}

const DefaultQuoteTitle = "Training Price Calculation"

// GeneratedOnLayout mirrors the en-US locale date/time display.
const GeneratedOnLayout = "1/2/2006, 3:04:05 PM"

// BuildExportData flattens a selection and its breakdown into ordered export
// rows: title, parameters, trainers, travel details, PM hours, cost breakdown
// and total. An empty title uses DefaultQuoteTitle.
func BuildExportData(title string, sel Selection, b Breakdown, generatedAt time.Time) ExportData {
	if title == "" {
		title = DefaultQuoteTitle
	}
	generatedOn := generatedAt.Format(GeneratedOnLayout)
	inPerson := sel.TrainingType == TrainingInPerson
	itemized := sel.TravelMode != TravelFlat

	item := func(label, value string) ExportRow { return ExportRow{Kind: RowItem, Label: label, Value: value} }
	section := func(label string) ExportRow { return ExportRow{Kind: RowSection, Label: label} }
	blank := ExportRow{Kind: RowBlank}

	rows := []ExportRow{
		{Kind: RowTitle, Label: title},
		item("Generated on", generatedOn),
		blank,
		section("Parameters"),
		item("Training Type", sel.TrainingType.Label()),
		item("Duration", sel.Duration.Label()),
	}
	if inPerson {
		rows = append(rows, item("Travel Costing", sel.TravelMode.Label()))
		if !itemized {
			fee, _ := FlatTravelFee(sel.TravelTime)
			rows = append(rows,
				item("Travel Time", sel.TravelTime.Label()),
				item("Travel Fee per Person", FormatAmount(fee)),
			)
		}
	}

	rows = append(rows, blank, section("Trainers"))
	for _, t := range sel.Trainers {
		line, _ := b.Line(t.ID)
		rows = append(rows, item(trainerLabel(sel, t), trainerCostValue(line)))
	}

	if inPerson && itemized && b.TravelingHeadcount > 0 {
		rows = append(rows, blank, section("Travel Details"))
		for _, t := range sel.Trainers {
			if t.Location != LocationTraveling {
				continue
			}
			line, _ := b.Line(t.ID)
			label := t.Role.Label()
			if t.Count > 1 {
				label += fmt.Sprintf(" (%dx)", t.Count)
			}
			rows = append(rows, item(label, TravelSummary(t, line)))
		}
	}

	rows = append(rows,
		blank,
		item("Project Management Hours", FormatAmount(sel.PMHours)),
		blank,
		section("Cost Breakdown"),
		item("Total Training Fees", FormatAmount(b.TrainerFees)),
	)
	if inPerson && b.TravelingHeadcount > 0 {
		rows = append(rows, item("Total Travel Fees", FormatAmount(b.Travel)))
	}
	rows = append(rows,
		item("Project Management", FormatAmount(b.PMCost)),
		item("Subtotal", FormatAmount(b.Subtotal)),
		item(fmt.Sprintf("Administrative Cost (%d%%)", int(AdminPercent*100)), FormatAmount(b.AdminCost)),
		blank,
		ExportRow{Kind: RowTotal, Label: "Total", Value: FormatAmount(b.Total)},
	)

	return ExportData{
		Title:       title,
		GeneratedAt: generatedAt,
		Rows:        rows,
	}
}

// trainerLabel renders "Lead Trainer - Traveling (2)"; the location part only
// appears for in-person itemized quotes.
func trainerLabel(sel Selection, t Trainer) string {
	label := t.Role.Label()
	if sel.TrainingType == TrainingInPerson && sel.TravelMode != TravelFlat {
		label += " - " + t.Location.Label()
	}
	return fmt.Sprintf("%s (%d)", label, t.Count)
}

func trainerCostValue(line LineCost) string {
	v := "Training: " + FormatAmount(line.TrainingFee)
	if line.Traveling {
		v += " | Travel: " + FormatAmount(line.Travel)
	}
	return v
}

// TravelSummary itemizes a traveling row's travel cost for the whole row
// (per-person amounts multiplied by Count).
func TravelSummary(t Trainer, line LineCost) string {
	d := t.Travel
	n := float64(t.Count)
	parts := []string{"Per person: " + FormatAmount(line.TravelPerPerson)}
	if d.NeedsFlight {
		parts = append(parts, "Flight: "+FormatAmount(d.FlightCost*n))
	}
	if d.LodgingNights > 0 {
		parts = append(parts, fmt.Sprintf("Lodging: %d nights × %s × %d",
			d.LodgingNights, FormatAmount(d.LodgingCostPerNight), t.Count))
	}
	if d.MileageCost > 0 {
		parts = append(parts, "Mileage: "+FormatAmount(d.MileageCost*n))
	}
	if d.MealAllowance > 0 {
		parts = append(parts, "Meals: "+FormatAmount(d.MealAllowance*n))
	}
	if d.OtherExpenses > 0 {
		parts = append(parts, "Other: "+FormatAmount(d.OtherExpenses*n))
	}
	parts = append(parts, "Total: "+FormatAmount(line.Travel))
	return strings.Join(parts, " | ")
}

// QuoteFilename returns "<prefix>-<timestamp>.<ext>" where the timestamp is
// the UTC ISO-8601 form of t with ':' and '.' replaced by '-'.
func QuoteFilename(prefix string, t time.Time, ext string) string {
	if prefix == "" {
		prefix = "training-quote"
	}
	stamp := t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
	stamp = strings.NewReplacer(":", "-", ".", "-").Replace(stamp)
	return fmt.Sprintf("%s-%s.%s", prefix, stamp, ext)
}
