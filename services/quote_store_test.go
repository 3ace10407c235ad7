package services_test

import (
	"testing"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"ledquote/services"
	"ledquote/testhelpers"
)

func TestSaveQuote_NewAndUpdate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	now := time.Date(2026, time.May, 10, 12, 0, 0, 0, time.UTC)

	cfg := services.DefaultQuoteConfig()
	cfg.Client = "Acme"
	cfg.Project = "Lobby"
	cfg.Margin = 25

	rec, err := services.SaveQuote(app, "", cfg, 123456.5, now)
	if err != nil {
		t.Fatalf("SaveQuote() error: %v", err)
	}
	if got := rec.GetString("quote_number"); got != "LED-Q-26-27-001" {
		t.Errorf("quote_number = %q, want LED-Q-26-27-001", got)
	}

	cfg.Client = "Acme Ltd"
	if _, err := services.SaveQuote(app, rec.Id, cfg, 99, now); err != nil {
		t.Fatalf("SaveQuote(update) error: %v", err)
	}

	saved, loaded, err := services.LoadQuote(app, rec.Id)
	if err != nil {
		t.Fatalf("LoadQuote() error: %v", err)
	}
	if saved.QuoteNumber != "LED-Q-26-27-001" {
		t.Errorf("update should keep the quote number, got %q", saved.QuoteNumber)
	}
	if saved.Client != "Acme Ltd" || saved.FinalAmount != 99 {
		t.Errorf("unexpected saved quote: %+v", saved)
	}
	if loaded.Client != "Acme Ltd" || loaded.Project != "Lobby" || loaded.Margin != 25 {
		t.Errorf("calculator state not restored: %+v", loaded)
	}
}

func TestSaveQuote_SequencePerFiscalYear(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	cfg := services.DefaultQuoteConfig()

	may := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)

	want := []struct {
		at     time.Time
		number string
	}{
		{may, "LED-Q-26-27-001"},
		{may, "LED-Q-26-27-002"},
		{feb, "LED-Q-25-26-001"},
		{may, "LED-Q-26-27-003"},
	}
	for _, w := range want {
		rec, err := services.SaveQuote(app, "", cfg, 0, w.at)
		if err != nil {
			t.Fatalf("SaveQuote() error: %v", err)
		}
		if got := rec.GetString("quote_number"); got != w.number {
			t.Errorf("quote_number = %q, want %q", got, w.number)
		}
	}
}

func TestLoadQuote_OverridesRoundTrip(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	qty, rate := 12.0, 950.0

	cfg := services.DefaultQuoteConfig().
		WithOverride(services.LineModules, services.Override{Qty: &qty}).
		WithOverride(services.LineCabinets, services.Override{Rate: &rate})
	cfg.Extras[services.ExtraBuffer] = services.Extra{Val: 5, Type: services.ExtraPercent}

	rec := testhelpers.CreateTestQuote(t, app, cfg, 0)

	_, loaded, err := services.LoadQuote(app, rec.Id)
	if err != nil {
		t.Fatalf("LoadQuote() error: %v", err)
	}
	ov := loaded.Overrides[services.LineModules]
	if ov.Qty == nil || *ov.Qty != 12 || ov.Rate != nil {
		t.Errorf("modules override not restored: %+v", ov)
	}
	ov = loaded.Overrides[services.LineCabinets]
	if ov.Rate == nil || *ov.Rate != 950 || ov.Qty != nil {
		t.Errorf("cabinets override not restored: %+v", ov)
	}
	if loaded.Extras[services.ExtraBuffer] != (services.Extra{Val: 5, Type: services.ExtraPercent}) {
		t.Errorf("buffer extra not restored: %+v", loaded.Extras[services.ExtraBuffer])
	}
}

func TestListAndDeleteQuotes(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	cfg := services.DefaultQuoteConfig()

	cfg.Client = "First"
	first := testhelpers.CreateTestQuote(t, app, cfg, 10)
	cfg.Client = "Second"
	testhelpers.CreateTestQuote(t, app, cfg, 20)

	list, err := services.ListQuotes(app)
	if err != nil {
		t.Fatalf("ListQuotes() error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(list))
	}

	if err := services.DeleteQuote(app, first.Id); err != nil {
		t.Fatalf("DeleteQuote() error: %v", err)
	}
	list, _ = services.ListQuotes(app)
	if len(list) != 1 || list[0].Client != "Second" {
		t.Errorf("unexpected quotes after delete: %+v", list)
	}

	if err := services.DeleteQuote(app, first.Id); err == nil {
		t.Error("expected error deleting a missing quote")
	}
}

func TestSaveQuote_NumberNotReusedAfterDelete(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	cfg := services.DefaultQuoteConfig()
	now := time.Date(2026, time.May, 10, 12, 0, 0, 0, time.UTC)

	first, err := services.SaveQuote(app, "", cfg, 0, now)
	if err != nil {
		t.Fatalf("SaveQuote(first) error: %v", err)
	}
	second, err := services.SaveQuote(app, "", cfg, 0, now)
	if err != nil {
		t.Fatalf("SaveQuote(second) error: %v", err)
	}
	if err := services.DeleteQuote(app, first.Id); err != nil {
		t.Fatalf("DeleteQuote() error: %v", err)
	}
	third, err := services.SaveQuote(app, "", cfg, 0, now)
	if err != nil {
		t.Fatalf("SaveQuote(third) error: %v", err)
	}

	if got := third.GetString("quote_number"); got != "LED-Q-26-27-003" {
		t.Errorf("third quote_number = %q, want LED-Q-26-27-003", got)
	}
	if third.GetString("quote_number") == second.GetString("quote_number") {
		t.Errorf("quote number %q issued twice", second.GetString("quote_number"))
	}
}

func TestSaveQuote_DuplicateNumberRejected(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	existing := testhelpers.CreateTestQuote(t, app, services.DefaultQuoteConfig(), 0)

	col, err := app.FindCollectionByNameOrId(services.QuotesCollection)
	if err != nil {
		t.Fatalf("find quotes collection: %v", err)
	}
	dup := core.NewRecord(col)
	dup.Set("quote_number", existing.GetString("quote_number"))
	if err := app.Save(dup); err == nil {
		t.Error("expected the unique quote_number index to reject a duplicate")
	}
}
