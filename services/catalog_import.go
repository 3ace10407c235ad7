package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// ValidationError represents a single field-level error on one row.
type ValidationError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ImportResult is returned after parsing and validating an uploaded catalog
// file. Items holds only the rows that passed validation.
type ImportResult struct {
	BatchID   string            `json:"batch_id"`
	TotalRows int               `json:"total_rows"`
	ValidRows int               `json:"valid_rows"`
	ErrorRows int               `json:"error_rows"`
	Errors    []ValidationError `json:"errors"`
	Items     []CatalogItem     `json:"-"`
	FileName  string            `json:"-"`
}

// ImportColumns lists the recognised catalog columns in template order.
var ImportColumns = []string{
	"type", "brand", "model", "vendor", "pitch", "width", "height",
	"price", "carriage", "currency", "indoor",
	"brightness", "refresh_rate", "scan_rate", "gray_scale", "stock",
}

// parseCSV reads a CSV file and returns headers + data rows.
func parseCSV(file io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(allRows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}

	return allRows[0], allRows[1:], nil
}

// parseExcel reads an xlsx file and returns headers + data rows from the first sheet.
func parseExcel(file io.Reader) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}

	return rows[0], rows[1:], nil
}

// normalizeHeader folds "Refresh Rate", "refreshRate" and "refresh_rate"
// to the same key.
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.TrimSuffix(h, " *")
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(h)
}

// mapHeaders maps uploaded column headers to ImportColumns keys. Unknown
// columns map to "".
func mapHeaders(headers []string) []string {
	known := make(map[string]string, len(ImportColumns))
	for _, c := range ImportColumns {
		known[normalizeHeader(c)] = c
	}
	mapped := make([]string, len(headers))
	for i, h := range headers {
		mapped[i] = known[normalizeHeader(h)]
	}
	return mapped
}

// ParseCatalogFile parses and validates an uploaded .csv or .xlsx catalog.
// Type, brand and model are required on every row; numbers are coerced.
func ParseCatalogFile(file io.Reader, fileName string) (*ImportResult, error) {
	var headers []string
	var dataRows [][]string
	var err error

	lowerName := strings.ToLower(fileName)
	switch {
	case strings.HasSuffix(lowerName, ".csv"):
		headers, dataRows, err = parseCSV(file)
	case strings.HasSuffix(lowerName, ".xlsx"):
		headers, dataRows, err = parseExcel(file)
	default:
		return nil, fmt.Errorf("unsupported file format: must be .csv or .xlsx")
	}
	if err != nil {
		return nil, err
	}

	columnKeys := mapHeaders(headers)
	result := &ImportResult{
		BatchID:  uuid.NewString(),
		FileName: fileName,
	}

	for rowIdx, row := range dataRows {
		rowNum := rowIdx + 2 // 1-indexed, +1 for header row
		rowData := make(map[string]string, len(columnKeys))
		blank := true
		for colIdx, key := range columnKeys {
			if key == "" || colIdx >= len(row) {
				continue
			}
			v := strings.TrimSpace(row[colIdx])
			rowData[key] = v
			if v != "" {
				blank = false
			}
		}
		if blank {
			continue
		}
		result.TotalRows++

		item, rowErrors := catalogItemFromRow(rowNum, rowData)
		if len(rowErrors) > 0 {
			result.Errors = append(result.Errors, rowErrors...)
			result.ErrorRows++
			continue
		}
		result.Items = append(result.Items, item)
	}
	result.ValidRows = len(result.Items)

	return result, nil
}

func catalogItemFromRow(rowNum int, data map[string]string) (CatalogItem, []ValidationError) {
	var errs []ValidationError

	itemType, ok := ParseItemType(data["type"])
	if !ok {
		msg := "Type is required"
		if data["type"] != "" {
			msg = fmt.Sprintf("Unknown type %q", data["type"])
		}
		errs = append(errs, ValidationError{Row: rowNum, Field: "Type", Message: msg})
	}
	if data["brand"] == "" {
		errs = append(errs, ValidationError{Row: rowNum, Field: "Brand", Message: "Brand is required"})
	}
	if data["model"] == "" {
		errs = append(errs, ValidationError{Row: rowNum, Field: "Model", Message: "Model is required"})
	}
	if len(errs) > 0 {
		return CatalogItem{}, errs
	}

	indoor := true
	if v, ok := data["indoor"]; ok && v != "" {
		indoor = ToFlag(v) || strings.EqualFold(v, "indoor")
	}

	return CatalogItem{
		Type:        itemType,
		Brand:       data["brand"],
		Model:       data["model"],
		Vendor:      data["vendor"],
		Pitch:       ToNumber(data["pitch"]),
		Width:       ToNumber(data["width"]),
		Height:      ToNumber(data["height"]),
		Price:       ToNumber(data["price"]),
		Carriage:    ToNumber(data["carriage"]),
		Currency:    ParseCurrency(data["currency"]),
		Indoor:      indoor,
		Brightness:  data["brightness"],
		RefreshRate: data["refresh_rate"],
		ScanRate:    data["scan_rate"],
		GrayScale:   data["gray_scale"],
		Stock:       ToCount(data["stock"]),
	}, nil
}

// GenerateErrorReport creates a downloadable .xlsx file from validation errors.
func GenerateErrorReport(errors []ValidationError) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Errors"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DC2626"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thinBorders(),
	})

	f.SetCellValue(sheet, "A1", "Row #")
	f.SetCellValue(sheet, "B1", "Field")
	f.SetCellValue(sheet, "C1", "Error")
	f.SetCellStyle(sheet, "A1", "C1", headerStyle)
	f.SetColWidth(sheet, "A", "A", 8)
	f.SetColWidth(sheet, "B", "B", 16)
	f.SetColWidth(sheet, "C", "C", 55)

	for i, e := range errors {
		row := fmt.Sprintf("%d", i+2)
		f.SetCellValue(sheet, "A"+row, e.Row)
		f.SetCellValue(sheet, "B"+row, e.Field)
		f.SetCellValue(sheet, "C"+row, sanitizeExcelCell(e.Message))
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write error report: %w", err)
	}
	return buf.Bytes(), nil
}

// GenerateImportTemplate returns an empty .xlsx with the import header row.
func GenerateImportTemplate() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Catalog"
	f.SetSheetName(f.GetSheetName(0), sheet)
	for i, c := range ImportColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("template header %s: %w", c, err)
		}
		f.SetCellValue(sheet, cell, c)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write import template: %w", err)
	}
	return buf.Bytes(), nil
}
