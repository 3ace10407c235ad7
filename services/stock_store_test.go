package services_test

import (
	"testing"

	"ledquote/services"
	"ledquote/testhelpers"
)

func TestAdjustStock_InAndOut(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	rec := testhelpers.CreateTestInventoryItem(t, app, services.CatalogItem{
		Type: services.TypeModule, Brand: "Absen", Model: "A3", Stock: 10,
	})

	mv, err := services.AdjustStock(app, rec.Id, 5, "")
	if err != nil {
		t.Fatalf("AdjustStock(+5) error: %v", err)
	}
	if mv.NewStock != 15 || mv.Type != services.StockIn || mv.Note != "Restocked" {
		t.Errorf("unexpected stock-in movement: %+v", mv)
	}

	mv, err = services.AdjustStock(app, rec.Id, -20, "Site install")
	if err != nil {
		t.Fatalf("AdjustStock(-20) error: %v", err)
	}
	if mv.NewStock != 0 || mv.Type != services.StockOut || mv.Quantity != 20 || mv.PreviousStock != 15 {
		t.Errorf("unexpected stock-out movement: %+v", mv)
	}

	item, _ := services.GetInventoryItem(app, rec.Id)
	if item.Stock != 0 {
		t.Errorf("stock = %d, want 0", item.Stock)
	}

	history, err := services.StockHistory(app, rec.Id)
	if err != nil {
		t.Fatalf("StockHistory() error: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(history))
	}
	notes := map[string]bool{}
	for _, tx := range history {
		notes[tx.Note] = true
	}
	for _, want := range []string{"Initial Stock", "Restocked", "Site install"} {
		if !notes[want] {
			t.Errorf("missing transaction with note %q", want)
		}
	}
}

func TestAdjustStock_UnknownItem(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if _, err := services.AdjustStock(app, "doesnotexist123", 1, ""); err == nil {
		t.Error("expected error for unknown item")
	}
	txCol, _ := app.FindCollectionByNameOrId(services.TransactionsCollection)
	all, _ := app.FindAllRecords(txCol)
	if len(all) != 0 {
		t.Errorf("expected no transactions, got %d", len(all))
	}
}

func TestStockHistory_Limit(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	rec := testhelpers.CreateTestInventoryItem(t, app, services.CatalogItem{
		Type: services.TypePSU, Brand: "Meanwell", Model: "LRS",
	})

	for i := 0; i < services.StockHistoryLimit+5; i++ {
		if _, err := services.AdjustStock(app, rec.Id, 1, ""); err != nil {
			t.Fatalf("AdjustStock() error: %v", err)
		}
	}

	history, err := services.StockHistory(app, rec.Id)
	if err != nil {
		t.Fatalf("StockHistory() error: %v", err)
	}
	if len(history) != services.StockHistoryLimit {
		t.Errorf("expected %d transactions, got %d", services.StockHistoryLimit, len(history))
	}
}
