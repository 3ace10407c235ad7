package collections_test

import (
	"testing"

	"ledquote/collections"
	"ledquote/services"
	"ledquote/testhelpers"

	"github.com/pocketbase/pocketbase/core"
)

func TestMigrateDefaultSettings_CreatesRate(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.MigrateDefaultSettings(app, 84.5); err != nil {
		t.Fatalf("MigrateDefaultSettings() error: %v", err)
	}
	if got := services.GetExchangeRate(app, 0); got != 84.5 {
		t.Errorf("exchange rate = %v, want 84.5", got)
	}
}

func TestMigrateDefaultSettings_KeepsExisting(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := services.SetSetting(app, services.SettingExchangeRate, "90"); err != nil {
		t.Fatalf("SetSetting() error: %v", err)
	}
	if err := collections.MigrateDefaultSettings(app, 83); err != nil {
		t.Fatalf("MigrateDefaultSettings() error: %v", err)
	}
	if err := collections.MigrateDefaultSettings(app, 83); err != nil {
		t.Fatalf("second run error: %v", err)
	}

	if got := services.GetExchangeRate(app, 0); got != 90 {
		t.Errorf("exchange rate = %v, want 90", got)
	}
	settingsCol, _ := app.FindCollectionByNameOrId("settings")
	all, _ := app.FindAllRecords(settingsCol)
	if len(all) != 1 {
		t.Errorf("expected 1 settings record, got %d", len(all))
	}
}

func TestMigrateInitialStockTransactions(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	// An item whose stock was set without going through the ledger.
	col, _ := app.FindCollectionByNameOrId("inventory")
	rec := core.NewRecord(col)
	rec.Set("type", "psu")
	rec.Set("brand", "Meanwell")
	rec.Set("model", "LRS-200-5")
	rec.Set("stock", 12)
	if err := app.Save(rec); err != nil {
		t.Fatalf("save item: %v", err)
	}
	// One with no stock is left alone.
	testhelpers.CreateTestInventoryItem(t, app, services.CatalogItem{Type: services.TypeCard, Brand: "Novastar", Model: "A5s"})

	if err := collections.MigrateInitialStockTransactions(app); err != nil {
		t.Fatalf("MigrateInitialStockTransactions() error: %v", err)
	}
	if err := collections.MigrateInitialStockTransactions(app); err != nil {
		t.Fatalf("second run error: %v", err)
	}

	history, err := services.StockHistory(app, rec.Id)
	if err != nil {
		t.Fatalf("StockHistory() error: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected 1 backfilled transaction, got %d", len(history))
	}
	if history[0].Quantity != 12 || history[0].NewStock != 12 || history[0].Note != "Initial Stock" {
		t.Errorf("unexpected backfill: %+v", history[0])
	}

	txCol, _ := app.FindCollectionByNameOrId("transactions")
	all, _ := app.FindAllRecords(txCol)
	if len(all) != 1 {
		t.Errorf("expected only one transaction overall, got %d", len(all))
	}
}
