package services

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func sampleExportData(t *testing.T) ExportData {
	t.Helper()
	cfg := assembledConfig()
	cfg.Client = "Acme Corp"
	cfg.Project = "Lobby Wall"
	cfg.CardID = "card-1"
	cfg.Extras[ExtraLabour] = Extra{Val: 5000, Type: ExtraAbsolute}
	cfg = cfg.WithOverride(LineCards, Override{Rate: ptr(1000)})

	res, ok := ComputeQuote(testCatalog(), cfg, DefaultExchangeRate)
	if !ok {
		t.Fatal("expected a computable quote")
	}
	data := NewExportData(cfg, res)
	data.QuoteNumber = "LED-Q-26-27-001"
	data.CreatedDate = "16 Oct 2026"
	return data
}

func TestNewExportData(t *testing.T) {
	data := sampleExportData(t)

	if data.Title != "LED Video Wall Quotation" {
		t.Errorf("Title = %q", data.Title)
	}
	if len(data.Items) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(data.Items))
	}
	if data.Items[0].Index != "1" || data.Items[3].Index != "4" {
		t.Errorf("rows should be numbered from 1, got %q..%q", data.Items[0].Index, data.Items[3].Index)
	}
	if !data.Items[2].Overridden {
		t.Error("cards row should be flagged as overridden")
	}
	// Zero extras are left off the export.
	if len(data.Extras) != 1 || data.Extras[0].Label != "Labour Cost" {
		t.Errorf("expected only the labour extra, got %+v", data.Extras)
	}
	if data.TotalCabinets != 24 || data.TotalModules != 96 {
		t.Errorf("cabinets/modules = %d/%d, want 24/96", data.TotalCabinets, data.TotalModules)
	}
	if data.GrandTotal <= 0 || data.AmountWords == "" {
		t.Errorf("grand total %v with words %q", data.GrandTotal, data.AmountWords)
	}
}

func TestGenerateExcel_Quote(t *testing.T) {
	data := sampleExportData(t)

	result, err := GenerateExcel(data)
	if err != nil {
		t.Fatalf("GenerateExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateExcel() returned empty bytes")
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 || sheets[0] != "Quote" {
		t.Fatalf("expected sheet 'Quote', got %v", sheets)
	}

	title, _ := f.GetCellValue("Quote", "A1")
	if title != "LED Video Wall Quotation" {
		t.Errorf("title = %q", title)
	}
	client, _ := f.GetCellValue("Quote", "A4")
	if client != "Client: Acme Corp" {
		t.Errorf("client line = %q", client)
	}

	// Row 8 is the BOM header, row 9 the first line.
	header, _ := f.GetCellValue("Quote", "B8")
	if header != "Item" {
		t.Errorf("B8 = %q, want 'Item'", header)
	}
	first, _ := f.GetCellValue("Quote", "B9")
	if first != "Modules" {
		t.Errorf("B9 = %q, want 'Modules'", first)
	}
	cabTotal, _ := f.GetCellValue("Quote", "F10")
	if cabTotal != "₹26,400.00" {
		t.Errorf("F10 = %q, want cabinet total ₹26,400.00", cabTotal)
	}
}

func TestGenerateExcel_EmptyItems(t *testing.T) {
	data := ExportData{Title: "Empty", CreatedDate: "2026-10-16"}

	result, err := GenerateExcel(data)
	if err != nil {
		t.Fatalf("GenerateExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateExcel() returned empty bytes")
	}
}

func TestGenerateExcel_SanitizesClientText(t *testing.T) {
	data := sampleExportData(t)
	data.Items[0].Name = "=HYPERLINK(\"x\")"

	result, err := GenerateExcel(data)
	if err != nil {
		t.Fatalf("GenerateExcel() error = %v", err)
	}
	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	got, _ := f.GetCellValue("Quote", "B9")
	if got != "'=HYPERLINK(\"x\")" {
		t.Errorf("B9 = %q, want a quoted formula", got)
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty string", "", ""},
		{"normal text", "Hello", "Hello"},
		{"starts with equals", "=SUM(A1:A10)", "'=SUM(A1:A10)"},
		{"starts with plus", "+1234", "'+1234"},
		{"starts with minus", "-100", "'-100"},
		{"starts with at", "@import", "'@import"},
		{"starts with tab", "\tdata", "'\tdata"},
		{"starts with pipe", "|command", "'|command"},
		{"starts with carriage return", "\rdata", "'\rdata"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeExcelCell(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestThinBorders(t *testing.T) {
	borders := thinBorders()
	if len(borders) != 4 {
		t.Errorf("thinBorders() returned %d borders, want 4", len(borders))
	}

	sides := map[string]bool{"left": false, "top": false, "bottom": false, "right": false}
	for _, b := range borders {
		sides[b.Type] = true
		if b.Style != 1 {
			t.Errorf("border %s style = %d, want 1 (thin)", b.Type, b.Style)
		}
	}
	for side, found := range sides {
		if !found {
			t.Errorf("missing border side: %s", side)
		}
	}
}
