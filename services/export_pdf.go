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
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	pdfGrey      = &props.Color{Red: 80, Green: 80, Blue: 80}
	pdfLightGrey = &props.Color{Red: 140, Green: 140, Blue: 140}
	pdfAmber     = &props.Color{Red: 180, Green: 83, Blue: 9}
)

// GeneratePDF renders the printable quotation for data using maroto/v2.
func GeneratePDF(data ExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).
		WithTopMargin(12).
		WithRightMargin(12).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addHeader(m, data)
	addScreenSummary(m, data)

	addTableHeader(m)
	for _, r := range data.Items {
		addTableRow(m, r)
	}

	addCostSummary(m, data)
	addMatrix(m, data)
	addFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addHeader adds the title, quote number, date and client block.
func addHeader(m core.Maroto, data ExportData) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(data.Title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)

	small := props.Text{Size: 9, Align: align.Left, Color: pdfGrey}
	smallRight := small
	smallRight.Align = align.Right

	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New("Quote: "+data.QuoteNumber, small)),
			col.New(6).Add(text.New("Date: "+data.CreatedDate, smallRight)),
		),
		row.New(6).Add(
			col.New(6).Add(text.New("Client: "+data.Client, small)),
			col.New(6).Add(text.New("Project: "+data.Project, smallRight)),
		),
	)

	m.AddRows(row.New(4))
}

// addScreenSummary describes the screen being quoted.
func addScreenSummary(m core.Maroto, data ExportData) {
	label := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Left}
	value := props.Text{Size: 9, Align: align.Left}

	lines := [][2]string{
		{"Screen Size", fmt.Sprintf("%.2f m x %.2f m", data.WidthM, data.HeightM)},
		{"Layout", fmt.Sprintf("%d x %d (%d cabinets, %d modules)", data.Cols, data.Rows, data.TotalCabinets, data.TotalModules)},
		{"Screens", fmt.Sprintf("%d", data.ScreenQty)},
	}
	if data.Module.ID != "" {
		panel := data.Module.Label()
		if data.Module.Pitch > 0 {
			panel += " (P" + FormatPitch(data.Module.Pitch) + ")"
		}
		lines = append(lines, [2]string{"Panel", panel})
	}
	if data.AssemblyMode == AssemblyAssembled && data.Cabinet.ID != "" {
		lines = append(lines, [2]string{"Cabinet", data.Cabinet.Label()})
	}

	for _, l := range lines {
		m.AddRows(
			row.New(6).Add(
				col.New(3).Add(text.New(l[0], label)),
				col.New(9).Add(text.New(l[1], value)),
			),
		)
	}

	m.AddRows(row.New(4))
}

// addTableHeader adds the column header row for the bill of materials.
func addTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 15, Green: 118, Blue: 110}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("#", headerText)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Item", headerTextLeft)).WithStyle(&headerCell),
			col.New(3).Add(text.New("Specification", headerTextLeft)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Qty", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Unit Price", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Total", headerText)).WithStyle(&headerCell),
		),
	)
}

// addTableRow adds one bill-of-materials line. Overridden lines are printed
// in amber.
func addTableRow(m core.Maroto, r ExportRow) {
	baseText := props.Text{Size: 8, Align: align.Center}
	if r.Overridden {
		baseText.Color = pdfAmber
	}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	m.AddRows(
		row.New(7).Add(
			col.New(1).Add(text.New(r.Index, baseText)),
			col.New(3).Add(text.New(r.Name, leftText)),
			col.New(3).Add(text.New(r.Spec, leftText)),
			col.New(1).Add(text.New(FormatQty(r.Qty), rightText)),
			col.New(2).Add(text.New(FormatINR(r.UnitPrice), rightText)),
			col.New(2).Add(text.New(FormatINR(r.Total), rightText)),
		),
	)
}

// addCostSummary adds base cost, extras and the per-screen total.
func addCostSummary(m core.Maroto, data ExportData) {
	m.AddRows(row.New(6))

	summaryCell := &props.Cell{BackgroundColor: &props.Color{Red: 240, Green: 240, Blue: 240}}
	labelStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
	valueStyle := props.Text{Size: 9, Align: align.Right}

	addLine := func(label string, amount float64) {
		m.AddRows(
			row.New(7).Add(
				col.New(8).Add(text.New(label, labelStyle)).WithStyle(summaryCell),
				col.New(4).Add(text.New(FormatINR(amount), valueStyle)).WithStyle(summaryCell),
			),
		)
	}

	addLine("Base Cost / Screen", data.BaseCost)
	for _, ex := range data.Extras {
		addLine(ex.Label, ex.Amount)
	}
	addLine("Cost / Screen", data.BaseCost+data.TotalExtras)
}

// addMatrix adds the cost/margin/sell breakdown and the grand total.
func addMatrix(m core.Maroto, data ExportData) {
	m.AddRows(row.New(6))

	head := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Right}
	headLeft := head
	headLeft.Align = align.Left
	cell := props.Text{Size: 8, Align: align.Right}
	cellLeft := cell
	cellLeft.Align = align.Left

	m.AddRows(
		row.New(7).Add(
			col.New(3).Add(text.New(fmt.Sprintf("Margin %.1f%%", data.MarginPct), headLeft)),
			col.New(3).Add(text.New("Per Sq Ft", head)),
			col.New(3).Add(text.New("Per Screen", head)),
			col.New(3).Add(text.New("Project Total", head)),
		),
	)

	rows := []struct {
		label string
		r     MatrixRow
	}{
		{"Cost", data.Matrix.Cost},
		{"Margin", data.Matrix.Margin},
		{"Sell", data.Matrix.Sell},
	}
	for _, mr := range rows {
		m.AddRows(
			row.New(6).Add(
				col.New(3).Add(text.New(mr.label, cellLeft)),
				col.New(3).Add(text.New(FormatINR(mr.r.PerSqFt), cell)),
				col.New(3).Add(text.New(FormatINR(mr.r.PerUnit), cell)),
				col.New(3).Add(text.New(FormatINR(mr.r.Total), cell)),
			),
		)
	}
	m.AddRows(
		row.New(6).Add(
			col.New(3).Add(text.New("Area", cellLeft)),
			col.New(3),
			col.New(3).Add(text.New(FormatArea(data.Matrix.AreaPerScreen), cell)),
			col.New(3).Add(text.New(FormatArea(data.Matrix.AreaTotal), cell)),
		),
	)

	m.AddRows(row.New(4))
	m.AddRows(
		row.New(9).Add(
			col.New(8).Add(text.New("Grand Total", props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Right})),
			col.New(4).Add(text.New(FormatINR(data.GrandTotal), props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Right})),
		),
	)
	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New(data.AmountWords, props.Text{Size: 8, Style: fontstyle.Italic, Align: align.Right})),
		),
	)
}

// addFooter adds the generated-date line at the bottom.
func addFooter(m core.Maroto, data ExportData) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("Generated on %s", data.CreatedDate),
					props.Text{
						Size:  7,
						Align: align.Left,
						Color: pdfLightGrey,
					},
				),
			),
		),
	)
}
