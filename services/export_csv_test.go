package services

import (
	"strings"
	"testing"
)

func TestGenerateCSV_QuotesEveryCell(t *testing.T) {
	data := ExportData{
		Rows: []ExportRow{
			{Kind: RowTitle, Label: "Quote"},
			{Kind: RowBlank},
			{Kind: RowSection, Label: "Parameters"},
			{Kind: RowItem, Label: "Total Training Fees", Value: "1,000"},
			{Kind: RowItem, Label: `The "A" team`, Value: "x"},
		},
	}

	got := string(GenerateCSV(data))
	want := strings.Join([]string{
		`"Quote",""`,
		`""`,
		`"Parameters"`,
		`"Total Training Fees","1,000"`,
		`"The ""A"" team","x"`,
	}, "\n")
	if got != want {
		t.Errorf("GenerateCSV() =\n%s\nwant\n%s", got, want)
	}
}

func TestGenerateCSV_FullQuote(t *testing.T) {
	sel := DefaultSelection(TravelItemized)
	data := BuildExportData("", sel, ComputeBreakdown(sel), fixedTime)
	got := string(GenerateCSV(data))

	if strings.HasSuffix(got, "\n") {
		t.Error("CSV should not end with a newline")
	}
	lines := strings.Split(got, "\n")
	if len(lines) != len(data.Rows) {
		t.Fatalf("line count = %d, want %d", len(lines), len(data.Rows))
	}
	if lines[0] != `"Training Price Calculation",""` {
		t.Errorf("first line = %q", lines[0])
	}
	if last := lines[len(lines)-1]; last != `"Total","650"` {
		t.Errorf("last line = %q", last)
	}
}

func TestGenerateCSV_Empty(t *testing.T) {
	if got := GenerateCSV(ExportData{}); len(got) != 0 {
		t.Errorf("expected empty output, got %q", got)
	}
}
