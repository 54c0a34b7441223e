package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// GenerateExcel renders the quote rows into a two-column worksheet and returns
// the workbook bytes.
func GenerateExcel(data ExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Quote"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	props := &excelize.DocProperties{Title: data.Title, Creator: data.Title}
	if !data.GeneratedAt.IsZero() {
		props.Created = data.GeneratedAt.UTC().Format(time.RFC3339)
	}
	if err := f.SetDocProps(props); err != nil {
		return nil, fmt.Errorf("set doc props: %w", err)
	}

	if err := f.SetColWidth(sheetName, "A", "A", 42); err != nil {
		return nil, fmt.Errorf("set col width A: %w", err)
	}
	if err := f.SetColWidth(sheetName, "B", "B", 70); err != nil {
		return nil, fmt.Errorf("set col width B: %w", err)
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	// Section heading: bold, white text on charcoal.
	sectionStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create section style: %w", err)
	}

	itemStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create item style: %w", err)
	}

	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 12},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create total style: %w", err)
	}

	// ── Rows ────────────────────────────────────────────────────────────

	for i, r := range data.Rows {
		rowStr := fmt.Sprintf("%d", i+1)
		a, b := "A"+rowStr, "B"+rowStr

		switch r.Kind {
		case RowBlank:
			continue
		case RowTitle:
			f.SetCellValue(sheetName, a, sanitizeExcelCell(r.Label))
			f.SetCellStyle(sheetName, a, b, titleStyle)
		case RowSection:
			if err := f.MergeCell(sheetName, a, b); err != nil {
				return nil, fmt.Errorf("merge section %q: %w", r.Label, err)
			}
			f.SetCellValue(sheetName, a, sanitizeExcelCell(r.Label))
			f.SetCellStyle(sheetName, a, b, sectionStyle)
		case RowTotal:
			f.SetCellValue(sheetName, a, sanitizeExcelCell(r.Label))
			f.SetCellValue(sheetName, b, sanitizeExcelCell(r.Value))
			f.SetCellStyle(sheetName, a, b, totalStyle)
		default:
			f.SetCellValue(sheetName, a, sanitizeExcelCell(r.Label))
			f.SetCellValue(sheetName, b, sanitizeExcelCell(r.Value))
			f.SetCellStyle(sheetName, a, b, itemStyle)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
