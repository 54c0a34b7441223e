// Package commands holds the CLI subcommands registered on the app's root
// command.
package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"trainingquote/config"
	"trainingquote/logger"
	"trainingquote/metrics"
	"trainingquote/services"
)

// NewQuoteCmd returns the "quote" command. It prices a selection read from a
// YAML file and writes the export next to it (or into --out).
func NewQuoteCmd(cfg config.Config) *cobra.Command {
	var (
		file   string
		format string
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a training selection and export the quote",
		Example: "  quote --file selection.yaml\n" +
			"  quote --file selection.yaml --format pdf --out ./quotes",
		RunE: func(cmd *cobra.Command, args []string) error {
			exp, ok := services.ExporterFor(format)
			if !ok {
				return fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(services.ExportFormats(), ", "))
			}

			sel, err := LoadSelection(file, services.TravelMode(cfg.DefaultTravelMode))
			if err != nil {
				return err
			}

			now := time.Now()
			b := services.ComputeBreakdown(sel)
			metrics.RecordQuote(string(sel.TrainingType), string(sel.TravelMode), b.Total)

			body, err := exp.Generate(services.BuildExportData(cfg.Title, sel, b, now))
			metrics.RecordExport(format, err)
			if err != nil {
				return fmt.Errorf("generate %s: %w", format, err)
			}

			if outDir == "" {
				outDir = filepath.Dir(file)
			}
			path := filepath.Join(outDir, services.QuoteFilename(cfg.FilePrefix, now, exp.Ext))
			if err := os.WriteFile(path, body, 0o644); err != nil {
				return fmt.Errorf("write quote: %w", err)
			}
			logger.Log.Info("quote: written", zap.String("path", path), zap.Float64("total", b.Total))

			fmt.Fprintf(cmd.OutOrStdout(), "Total: %s\n", services.FormatUSD(b.Total))
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML selection file to price")
	cmd.Flags().StringVar(&format, "format", "csv", "Export format: csv, xlsx or pdf")
	cmd.Flags().StringVar(&outDir, "out", "", "Directory for the export (defaults to the selection file's directory)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// LoadSelection reads a YAML selection file. Fields left out keep the values
// of the calculator's initial form and of a newly added trainer row.
func LoadSelection(path string, defaultMode services.TravelMode) (services.Selection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return services.Selection{}, fmt.Errorf("read selection: %w", err)
	}

	sel := services.DefaultSelection(defaultMode)
	sel.Trainers = nil
	if err := yaml.Unmarshal(data, &sel); err != nil {
		return services.Selection{}, fmt.Errorf("parse selection %s: %w", path, err)
	}
	return sel.Normalize(), nil
}
