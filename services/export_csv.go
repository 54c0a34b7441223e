package services

import (
	"bytes"
	"strings"
)

// GenerateCSV serializes the export rows as comma-separated text. Every cell
// is wrapped in double quotes (embedded quotes are doubled) and rows are
// joined with "\n" without a trailing newline.
func GenerateCSV(data ExportData) []byte {
	var buf bytes.Buffer
	for i, r := range data.Rows {
		if i > 0 {
			buf.WriteByte('\n')
		}
		for j, cell := range r.Cells() {
			if j > 0 {
				buf.WriteByte(',')
			}
			buf.WriteByte('"')
			buf.WriteString(strings.ReplaceAll(cell, `"`, `""`))
			buf.WriteByte('"')
		}
	}
	return buf.Bytes()
}
