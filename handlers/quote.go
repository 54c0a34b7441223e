package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"trainingquote/config"
	"trainingquote/logger"
	"trainingquote/metrics"
	"trainingquote/services"
	"trainingquote/templates"
)

// quoteFormData prices a selection for rendering.
func quoteFormData(sel services.Selection) templates.QuoteFormData {
	b := services.ComputeBreakdown(sel)
	metrics.RecordQuote(string(sel.TrainingType), string(sel.TravelMode), b.Total)
	return templates.QuoteFormData{Selection: sel, Breakdown: b}
}

// parseQuoteForm reads the posted calculator form.
func parseQuoteForm(e *core.RequestEvent, cfg config.Config) (services.Selection, error) {
	if err := e.Request.ParseForm(); err != nil {
		return services.Selection{}, err
	}
	return ParseSelection(e.Request.PostForm, services.TravelMode(cfg.DefaultTravelMode)), nil
}

// renderCalculator renders the calculator fragment for HTMX requests and the
// full page otherwise.
func renderCalculator(e *core.RequestEvent, cfg config.Config, sel services.Selection) error {
	form := quoteFormData(sel)
	if e.Request.Header.Get("HX-Request") == "true" {
		return templates.QuoteCalculator(form).Render(e.Request.Context(), e.Response)
	}
	page := templates.QuotePageData{Title: cfg.Title, Company: cfg.Company, Form: form}
	return templates.QuotePage(page).Render(e.Request.Context(), e.Response)
}

// HandleQuotePage returns a handler that renders the calculator with its
// initial selection.
func HandleQuotePage(cfg config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sel := services.DefaultSelection(services.TravelMode(cfg.DefaultTravelMode))
		page := templates.QuotePageData{Title: cfg.Title, Company: cfg.Company, Form: quoteFormData(sel)}
		return templates.QuotePage(page).Render(e.Request.Context(), e.Response)
	}
}

// HandleQuoteCalculate returns a handler that reprices the posted form.
func HandleQuoteCalculate(cfg config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sel, err := parseQuoteForm(e, cfg)
		if err != nil {
			logger.Log.Warn("quote: could not parse form", zap.Error(err))
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}
		return renderCalculator(e, cfg, sel)
	}
}

// HandleTrainerAdd returns a handler that appends a default trainer row to
// the posted roster.
func HandleTrainerAdd(cfg config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sel, err := parseQuoteForm(e, cfg)
		if err != nil {
			logger.Log.Warn("quote: could not parse form", zap.Error(err))
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}
		sel.Trainers = sel.Trainers.Add(services.NewTrainer(""))
		return renderCalculator(e, cfg, sel)
	}
}

// HandleTrainerRemove returns a handler that drops a trainer row. Removing the
// last row leaves the roster unchanged.
func HandleTrainerRemove(cfg config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sel, err := parseQuoteForm(e, cfg)
		if err != nil {
			logger.Log.Warn("quote: could not parse form", zap.Error(err))
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}
		id := e.Request.PathValue("id")
		before := len(sel.Trainers)
		sel.Trainers = sel.Trainers.Remove(id)
		if len(sel.Trainers) == before {
			logger.Log.Debug("quote: trainer not removed", zap.String("trainer_id", id), zap.Int("rows", before))
		}
		return renderCalculator(e, cfg, sel)
	}
}
