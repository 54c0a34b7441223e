// Package testhelpers provides utilities for testing the quote handlers.
package testhelpers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"trainingquote/services"
)

// SelectionForm encodes a selection the way the calculator form posts it.
func SelectionForm(sel services.Selection) url.Values {
	form := url.Values{}
	form.Set("training_type", string(sel.TrainingType))
	form.Set("duration", string(sel.Duration))
	form.Set("travel_mode", string(sel.TravelMode))
	form.Set("travel_time", string(sel.TravelTime))
	form.Set("pm_hours", formatFloat(sel.PMHours))

	for _, t := range sel.Trainers {
		form.Add("trainer_id", t.ID)
		prefix := "trainer_" + t.ID + "_"
		form.Set(prefix+"role", string(t.Role))
		form.Set(prefix+"count", strconv.Itoa(t.Count))
		form.Set(prefix+"location", string(t.Location))
		if t.Travel.NeedsFlight {
			form.Set(prefix+"needs_flight", "on")
		}
		form.Set(prefix+"flight_cost", formatFloat(t.Travel.FlightCost))
		form.Set(prefix+"lodging_nights", strconv.Itoa(t.Travel.LodgingNights))
		form.Set(prefix+"lodging_cost", formatFloat(t.Travel.LodgingCostPerNight))
		form.Set(prefix+"mileage_cost", formatFloat(t.Travel.MileageCost))
		form.Set(prefix+"meal_allowance", formatFloat(t.Travel.MealAllowance))
		form.Set(prefix+"other_expenses", formatFloat(t.Travel.OtherExpenses))
	}
	return form
}

// NewFormRequest builds a POST request carrying the form as
// application/x-www-form-urlencoded. When htmx is true the HX-Request header
// is set.
func NewFormRequest(target string, form url.Values, htmx bool) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	return req
}

// AssertHTMLContains checks that the rendered HTML contains every snippet.
func AssertHTMLContains(t *testing.T, html string, snippets ...string) {
	t.Helper()
	for _, s := range snippets {
		if !strings.Contains(html, s) {
			t.Errorf("expected HTML to contain %q\nHTML: %s", s, truncate(html, 500))
		}
	}
}

// AssertHTMLNotContains checks that the rendered HTML contains none of the
// snippets.
func AssertHTMLNotContains(t *testing.T, html string, snippets ...string) {
	t.Helper()
	for _, s := range snippets {
		if strings.Contains(html, s) {
			t.Errorf("expected HTML not to contain %q\nHTML: %s", s, truncate(html, 500))
		}
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
