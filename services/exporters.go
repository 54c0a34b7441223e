package services

import "sort"

// Exporter renders ExportData into one file format.
type Exporter struct {
	Ext         string
	ContentType string
	Generate    func(ExportData) ([]byte, error)
}

var exporters = map[string]Exporter{
	"csv": {
		Ext:         "csv",
		ContentType: "text/csv;charset=utf-8",
		Generate: func(d ExportData) ([]byte, error) {
			return GenerateCSV(d), nil
		},
	},
	"xlsx": {
		Ext:         "xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Generate:    GenerateExcel,
	},
	"pdf": {
		Ext:         "pdf",
		ContentType: "application/pdf",
		Generate:    GeneratePDF,
	},
}

// ExporterFor returns the exporter registered for format ("csv", "xlsx" or "pdf").
func ExporterFor(format string) (Exporter, bool) {
	e, ok := exporters[format]
	return e, ok
}

// ExportFormats lists the supported formats in sorted order.
func ExportFormats() []string {
	formats := make([]string, 0, len(exporters))
	for f := range exporters {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	return formats
}
