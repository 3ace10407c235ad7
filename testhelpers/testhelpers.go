// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"ledquote/collections"
	"ledquote/services"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestInventoryItem saves a catalog item (with its initial stock
// transaction, if any) and returns the record.
func CreateTestInventoryItem(t *testing.T, app *pocketbase.PocketBase, item services.CatalogItem) *core.Record {
	t.Helper()

	record, err := services.CreateInventoryItem(app, item, "")
	if err != nil {
		t.Fatalf("failed to save test inventory item: %v", err)
	}
	return record
}

// TestCatalog holds the ids of the records created by CreateTestCatalog.
type TestCatalog struct {
	ModuleID    string
	CabinetID   string
	ReadyID     string
	CardID      string
	PSUID       string
	ProcessorID string
}

// CreateTestCatalog saves a minimal priced catalog: a 250x250 module that
// tiles a 500x500 cabinet, a ready unit, a card, a PSU and a USD processor.
func CreateTestCatalog(t *testing.T, app *pocketbase.PocketBase) TestCatalog {
	t.Helper()

	return TestCatalog{
		ModuleID: CreateTestInventoryItem(t, app, services.CatalogItem{
			Type: services.TypeModule, Brand: "Absen", Model: "A3", Pitch: 3.91,
			Width: 250, Height: 250, Price: 1000, Carriage: 100,
			Currency: services.CurrencyINR, Indoor: true, Stock: 50,
		}).Id,
		CabinetID: CreateTestInventoryItem(t, app, services.CatalogItem{
			Type: services.TypeCabinet, Brand: "Generic", Model: "C500",
			Width: 500, Height: 500, Price: 1000, Carriage: 100,
			Currency: services.CurrencyINR,
		}).Id,
		ReadyID: CreateTestInventoryItem(t, app, services.CatalogItem{
			Type: services.TypeReady, Brand: "Unilumin", Model: "UTV", Pitch: 1.86,
			Width: 600, Height: 337.5, Price: 300, Carriage: 20,
			Currency: services.CurrencyUSD, Indoor: true,
		}).Id,
		CardID: CreateTestInventoryItem(t, app, services.CatalogItem{
			Type: services.TypeCard, Brand: "Novastar", Model: "A5s",
			Price: 1200, Currency: services.CurrencyINR,
		}).Id,
		PSUID: CreateTestInventoryItem(t, app, services.CatalogItem{
			Type: services.TypePSU, Brand: "Meanwell", Model: "LRS",
			Price: 800, Currency: services.CurrencyINR,
		}).Id,
		ProcessorID: CreateTestInventoryItem(t, app, services.CatalogItem{
			Type: services.TypeProcessor, Brand: "Novastar", Model: "VX600",
			Price: 450, Carriage: 50, Currency: services.CurrencyUSD,
		}).Id,
	}
}

// CreateTestQuote saves a quote for the given config and returns its record.
func CreateTestQuote(t *testing.T, app *pocketbase.PocketBase, cfg services.QuoteConfig, finalAmount float64) *core.Record {
	t.Helper()

	record, err := services.SaveQuote(app, "", cfg, finalAmount, time.Now())
	if err != nil {
		t.Fatalf("failed to save test quote: %v", err)
	}
	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHXRedirect checks that the response has an HX-Redirect header with the expected URL.
func AssertHXRedirect(t *testing.T, headerVal, expectedURL string) {
	t.Helper()

	if headerVal != expectedURL {
		t.Errorf("expected HX-Redirect %q, got %q", expectedURL, headerVal)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
