package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ledquote/services"
	"ledquote/testhelpers"
)

func TestHandleQuoteList_Empty(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/quotes", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleQuoteList(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "No saved quotes yet", "Create your first quote")
}

func TestHandleQuoteList_WithData(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	cfg := services.DefaultQuoteConfig()
	cfg.Client = "Sunrise Hotels"
	q := testhelpers.CreateTestQuote(t, app, cfg, 1234567)

	req := httptest.NewRequest(http.MethodGet, "/quotes", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleQuoteList(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Sunrise Hotels", "₹12,34,567.00", q.GetString("quote_number"),
		"/quotes/"+q.Id+"/edit?clone=true", "<time datetime=")
}
