package collections_test

import (
	"testing"

	"ledquote/collections"
	"ledquote/services"
	"ledquote/testhelpers"
)

func TestSeed_CreatesCatalog(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	catalog, err := services.LoadCatalog(app)
	if err != nil {
		t.Fatalf("LoadCatalog() error: %v", err)
	}
	if len(catalog.Modules) == 0 || len(catalog.Cabinets) == 0 || len(catalog.Ready) == 0 {
		t.Errorf("expected modules, cabinets and ready units, got %d/%d/%d",
			len(catalog.Modules), len(catalog.Cabinets), len(catalog.Ready))
	}
	if len(catalog.Cards) == 0 || len(catalog.PSUs) == 0 || len(catalog.Processors) == 0 {
		t.Error("expected cards, PSUs and processors to be seeded")
	}

	// Every indoor module has at least one cabinet it tiles exactly.
	for _, m := range catalog.AvailableModules(true) {
		m := m
		if len(catalog.CabinetCandidates(&m)) == 0 {
			t.Errorf("module %s has no matching cabinet", m.Label())
		}
	}

	// Items seeded with stock get an initial ledger entry.
	txCol, _ := app.FindCollectionByNameOrId("transactions")
	txs, _ := app.FindAllRecords(txCol)
	if len(txs) == 0 {
		t.Error("expected initial stock transactions")
	}
	for _, tx := range txs {
		if tx.GetString("note") != "Initial Stock" {
			t.Errorf("unexpected seed transaction note %q", tx.GetString("note"))
		}
	}
}

func TestSeed_ExampleQuoteIsPriced(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	quotes, err := services.ListQuotes(app)
	if err != nil {
		t.Fatalf("ListQuotes() error: %v", err)
	}
	if len(quotes) != 1 {
		t.Fatalf("expected 1 example quote, got %d", len(quotes))
	}
	if quotes[0].FinalAmount <= 0 {
		t.Errorf("example quote should have a positive final amount, got %v", quotes[0].FinalAmount)
	}
	if quotes[0].QuoteNumber == "" {
		t.Error("example quote should have a quote number")
	}
}

func TestSeed_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("first Seed() error: %v", err)
	}
	first, _ := services.ListInventory(app, "")

	if err := collections.Seed(app); err != nil {
		t.Fatalf("second Seed() error: %v", err)
	}
	second, _ := services.ListInventory(app, "")

	if len(first) != len(second) {
		t.Errorf("expected %d items after idempotent seed, got %d", len(first), len(second))
	}
	quotes, _ := services.ListQuotes(app)
	if len(quotes) != 1 {
		t.Errorf("expected 1 quote after idempotent seed, got %d", len(quotes))
	}
}
