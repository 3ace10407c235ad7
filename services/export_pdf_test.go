package services

import (
	"testing"
)

func TestGeneratePDF_Quote(t *testing.T) {
	data := sampleExportData(t)

	result, err := GeneratePDF(data)
	if err != nil {
		t.Fatalf("GeneratePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GeneratePDF() returned empty bytes")
	}
	if len(result) > 4 && string(result[:5]) != "%PDF-" {
		t.Errorf("result does not start with PDF header, got %q", string(result[:5]))
	}
}

func TestGeneratePDF_ReadyQuote(t *testing.T) {
	cfg := DefaultQuoteConfig()
	cfg.AssemblyMode = AssemblyReady
	cfg.ReadyID = "ready-186"
	res, ok := ComputeQuote(testCatalog(), cfg, DefaultExchangeRate)
	if !ok {
		t.Fatal("expected a computable ready quote")
	}

	result, err := GeneratePDF(NewExportData(cfg, res))
	if err != nil {
		t.Fatalf("GeneratePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GeneratePDF() returned empty bytes")
	}
}

func TestGeneratePDF_EmptyItems(t *testing.T) {
	data := ExportData{
		Title:       "Empty",
		CreatedDate: "2026-10-16",
	}

	result, err := GeneratePDF(data)
	if err != nil {
		t.Fatalf("GeneratePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GeneratePDF() returned empty bytes")
	}
}
