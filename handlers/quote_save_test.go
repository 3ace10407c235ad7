package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"ledquote/services"
	"ledquote/testhelpers"
)

func TestHandleQuoteSave_New(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	ids := testhelpers.CreateTestCatalog(t, app)
	handler := HandleQuoteSave(app)

	req := newFormRequest(http.MethodPost, "/quotes", assembledForm(ids))
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	quotes, _ := services.ListQuotes(app)
	if len(quotes) != 1 {
		t.Fatalf("expected 1 saved quote, got %d", len(quotes))
	}
	q := quotes[0]
	if q.FinalAmount != 63000 {
		t.Errorf("final_amount = %v, want 63000", q.FinalAmount)
	}
	if q.Client != "Acme" || q.Project != "Lobby" {
		t.Errorf("unexpected client/project: %q / %q", q.Client, q.Project)
	}
	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), fmt.Sprintf("/quotes/%s/edit", q.ID))
}

func TestHandleQuoteSave_IncompleteStoresZero(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuoteSave(app)

	form := assembledForm(testhelpers.TestCatalog{})
	req := newFormRequest(http.MethodPost, "/quotes", form)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Errorf("expected 302 for non-HTMX save, got %d", rec.Code)
	}
	quotes, _ := services.ListQuotes(app)
	if len(quotes) != 1 || quotes[0].FinalAmount != 0 {
		t.Errorf("expected one quote with final amount 0, got %+v", quotes)
	}
}

func TestHandleQuoteSave_UpdateKeepsNumber(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	ids := testhelpers.CreateTestCatalog(t, app)
	existing := testhelpers.CreateTestQuote(t, app, services.DefaultQuoteConfig(), 0)

	form := assembledForm(ids)
	form.Set("quote_id", existing.Id)
	form.Set("margin", "0")
	req := newFormRequest(http.MethodPost, "/quotes", form)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleQuoteSave(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	saved, cfg, err := services.LoadQuote(app, existing.Id)
	if err != nil {
		t.Fatalf("LoadQuote() error: %v", err)
	}
	if saved.QuoteNumber != existing.GetString("quote_number") {
		t.Errorf("quote number changed: %q -> %q", existing.GetString("quote_number"), saved.QuoteNumber)
	}
	if saved.FinalAmount != 52500 {
		t.Errorf("final_amount = %v, want 52500", saved.FinalAmount)
	}
	if cfg.ModuleID != ids.ModuleID || cfg.Margin != 0 {
		t.Errorf("calculator state not updated: %+v", cfg)
	}
	quotes, _ := services.ListQuotes(app)
	if len(quotes) != 1 {
		t.Errorf("update should not create a new quote, got %d", len(quotes))
	}
}

func TestHandleQuoteSave_UnknownQuote(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	form := assembledForm(testhelpers.TestCatalog{})
	form.Set("quote_id", "missing")
	req := newFormRequest(http.MethodPost, "/quotes", form)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleQuoteSave(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}
