package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GeneratePDF renders the quote rows as a portrait A4 document using maroto/v2.
func GeneratePDF(data ExportData) ([]byte, error) {
	b := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		})
	if data.Title != "" {
		b = b.WithTitle(data.Title, true)
	}
	if !data.GeneratedAt.IsZero() {
		b = b.WithCreationDate(data.GeneratedAt)
	}
	cfg := b.Build()

	m := maroto.New(cfg)

	for _, r := range data.Rows {
		addQuoteRow(m, r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addQuoteRow adds one export row, styled by its kind.
func addQuoteRow(m core.Maroto, r ExportRow) {
	switch r.Kind {
	case RowBlank:
		m.AddRows(row.New(4))

	case RowTitle:
		m.AddRows(
			row.New(12).Add(
				col.New(12).Add(
					text.New(r.Label, props.Text{
						Size:  16,
						Style: fontstyle.Bold,
						Align: align.Center,
					}),
				),
			),
		)

	case RowSection:
		headerCell := &props.Cell{BackgroundColor: &props.Color{Red: 33, Green: 37, Blue: 41}}
		m.AddRows(
			row.New(8).Add(
				col.New(12).Add(
					text.New(r.Label, props.Text{
						Size:  9,
						Style: fontstyle.Bold,
						Align: align.Left,
						Top:   1.5,
						Left:  2,
						Color: &props.Color{Red: 255, Green: 255, Blue: 255},
					}),
				).WithStyle(headerCell),
			),
		)

	case RowTotal:
		totalCell := &props.Cell{BackgroundColor: &props.Color{Red: 240, Green: 240, Blue: 240}}
		bold := props.Text{Size: 11, Style: fontstyle.Bold, Top: 2}
		labelText := bold
		labelText.Align = align.Left
		labelText.Left = 2
		valueText := bold
		valueText.Align = align.Right
		valueText.Right = 2
		m.AddRows(
			row.New(10).Add(
				col.New(6).Add(text.New(r.Label, labelText)).WithStyle(totalCell),
				col.New(6).Add(text.New(r.Value, valueText)).WithStyle(totalCell),
			),
		)

	default:
		labelText := props.Text{Size: 8, Align: align.Left, Top: 1, Left: 2}
		valueText := props.Text{Size: 8, Align: align.Right, Top: 1, Right: 2}
		m.AddRows(
			row.New(7).Add(
				col.New(5).Add(text.New(r.Label, labelText)),
				col.New(7).Add(text.New(r.Value, valueText)),
			),
		)
	}
}
