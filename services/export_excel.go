package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// GenerateExcel creates a quote workbook (BOM, extras, financial matrix) from
// the given ExportData and returns the file contents as a byte slice.
func GenerateExcel(data ExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Quote"
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E", "F"}
	lastCol := columns[len(columns)-1]

	widths := []float64{6, 22, 34, 10, 18, 20}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#0F766E"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	rowStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create row style: %w", err)
	}

	overriddenStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10, Color: "#B45309"},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create overridden style: %w", err)
	}

	labelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create label style: %w", err)
	}

	valueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create value style: %w", err)
	}

	// ── Header Rows ─────────────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", sanitizeExcelCell(data.Title))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	info := []string{
		"Quote: " + data.QuoteNumber,
		"Date: " + data.CreatedDate,
		"Client: " + data.Client,
		"Project: " + data.Project,
		fmt.Sprintf("Screen: %.2f m x %.2f m (%d x %d cabinets), Qty %d",
			data.WidthM, data.HeightM, data.Cols, data.Rows, data.ScreenQty),
	}
	row := 2
	for _, line := range info {
		cell := fmt.Sprintf("A%d", row)
		if err := f.MergeCell(sheetName, cell, fmt.Sprintf("%s%d", lastCol, row)); err != nil {
			return nil, fmt.Errorf("merge info row %d: %w", row, err)
		}
		f.SetCellValue(sheetName, cell, sanitizeExcelCell(line))
		f.SetCellStyle(sheetName, cell, cell, subtitleStyle)
		row++
	}

	// ── Bill of Materials ───────────────────────────────────────────────

	row++
	headers := []string{"#", "Item", "Specification", "Qty", "Unit Price", "Total (per screen)"}
	for i, h := range headers {
		f.SetCellValue(sheetName, fmt.Sprintf("%s%d", columns[i], row), h)
	}
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", lastCol, row), headerStyle)
	row++

	for _, r := range data.Items {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "A"+rowStr, r.Index)
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(r.Name))
		f.SetCellValue(sheetName, "C"+rowStr, sanitizeExcelCell(r.Spec))
		f.SetCellValue(sheetName, "D"+rowStr, r.Qty)
		f.SetCellValue(sheetName, "E"+rowStr, FormatINR(r.UnitPrice))
		f.SetCellValue(sheetName, "F"+rowStr, FormatINR(r.Total))

		style := rowStyle
		if r.Overridden {
			style = overriddenStyle
		}
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, style)
		row++
	}

	// ── Summary ─────────────────────────────────────────────────────────

	row++
	summary := []struct {
		label string
		value float64
	}{
		{"Base Cost / Screen:", data.BaseCost},
	}
	for _, ex := range data.Extras {
		summary = append(summary, struct {
			label string
			value float64
		}{ex.Label + ":", ex.Amount})
	}
	summary = append(summary, struct {
		label string
		value float64
	}{"Total Extras / Screen:", data.TotalExtras})

	for _, s := range summary {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "E"+rowStr, s.label)
		f.SetCellStyle(sheetName, "E"+rowStr, "E"+rowStr, labelStyle)
		f.SetCellValue(sheetName, "F"+rowStr, FormatINR(s.value))
		f.SetCellStyle(sheetName, "F"+rowStr, "F"+rowStr, valueStyle)
		row++
	}

	// ── Financial Matrix ────────────────────────────────────────────────

	row++
	matrixHeaders := []string{"", "", "", "Per Sq Ft", "Per Screen", "Project Total"}
	for i, h := range matrixHeaders {
		f.SetCellValue(sheetName, fmt.Sprintf("%s%d", columns[i], row), h)
	}
	f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), fmt.Sprintf("Margin %.1f%%", data.MarginPct))
	f.SetCellStyle(sheetName, fmt.Sprintf("C%d", row), fmt.Sprintf("%s%d", lastCol, row), headerStyle)
	row++

	matrixRows := []struct {
		label string
		r     MatrixRow
	}{
		{"Cost", data.Matrix.Cost},
		{"Margin", data.Matrix.Margin},
		{"Sell", data.Matrix.Sell},
	}
	for _, m := range matrixRows {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, "C"+rowStr, m.label)
		f.SetCellValue(sheetName, "D"+rowStr, FormatINR(m.r.PerSqFt))
		f.SetCellValue(sheetName, "E"+rowStr, FormatINR(m.r.PerUnit))
		f.SetCellValue(sheetName, "F"+rowStr, FormatINR(m.r.Total))
		f.SetCellStyle(sheetName, "C"+rowStr, lastCol+rowStr, rowStyle)
		row++
	}

	rowStr := fmt.Sprintf("%d", row)
	f.SetCellValue(sheetName, "C"+rowStr, "Area (sq ft)")
	f.SetCellValue(sheetName, "E"+rowStr, round2(data.Matrix.AreaPerScreen))
	f.SetCellValue(sheetName, "F"+rowStr, round2(data.Matrix.AreaTotal))
	f.SetCellStyle(sheetName, "C"+rowStr, lastCol+rowStr, rowStyle)
	row += 2

	rowStr = fmt.Sprintf("%d", row)
	f.SetCellValue(sheetName, "E"+rowStr, "Grand Total:")
	f.SetCellStyle(sheetName, "E"+rowStr, "E"+rowStr, labelStyle)
	f.SetCellValue(sheetName, "F"+rowStr, FormatINR(data.GrandTotal))
	f.SetCellStyle(sheetName, "F"+rowStr, "F"+rowStr, valueStyle)
	row++

	rowStr = fmt.Sprintf("%d", row)
	if err := f.MergeCell(sheetName, "A"+rowStr, lastCol+rowStr); err != nil {
		return nil, fmt.Errorf("merge amount words: %w", err)
	}
	f.SetCellValue(sheetName, "A"+rowStr, data.AmountWords)
	f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, subtitleStyle)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote.
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
