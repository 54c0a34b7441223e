package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"trainingquote/config"
	"trainingquote/logger"
	"trainingquote/metrics"
	"trainingquote/services"
)

// HandleQuoteExport returns a handler that prices the posted form and sends
// it back as a downloadable csv, xlsx or pdf file.
func HandleQuoteExport(cfg config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		format := e.Request.PathValue("format")
		exp, ok := services.ExporterFor(format)
		if !ok {
			return exportError(e, http.StatusBadRequest, fmt.Sprintf("Unknown export format %q", format))
		}

		sel, err := parseQuoteForm(e, cfg)
		if err != nil {
			logger.Log.Warn("export: could not parse form", zap.Error(err))
			return exportError(e, http.StatusBadRequest, "Invalid form data")
		}

		now := time.Now()
		breakdown := services.ComputeBreakdown(sel)
		data := services.BuildExportData(cfg.Title, sel, breakdown, now)

		body, err := exp.Generate(data)
		metrics.RecordExport(format, err)
		if err != nil {
			logger.Log.Error("export: failed to generate", zap.String("format", format), zap.Error(err))
			return exportError(e, http.StatusInternalServerError, "Failed to generate export file")
		}

		filename := services.QuoteFilename(cfg.FilePrefix, now, exp.Ext)
		logger.Log.Info("export: quote generated",
			zap.String("format", format),
			zap.String("filename", filename),
			zap.Float64("total", breakdown.Total),
		)

		e.Response.Header().Set("Content-Type", exp.ContentType)
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.WriteHeader(http.StatusOK)
		_, err = e.Response.Write(body)
		return err
	}
}

// exportError answers the export buttons' plain form submits with a plain-text
// error. Only HTMX callers get the toast headers.
func exportError(e *core.RequestEvent, statusCode int, message string) error {
	if e.Request.Header.Get("HX-Request") == "true" {
		return ErrorToast(e, statusCode, message)
	}
	return e.String(statusCode, message)
}
