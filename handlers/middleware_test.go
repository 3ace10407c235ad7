package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"ledquote/services"
	"ledquote/testhelpers"
)

func TestGetExchangeRate_FromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(context.WithValue(req.Context(), ExchangeRateKey, 84.5))

	got, ok := GetExchangeRate(req)
	if !ok || got != 84.5 {
		t.Errorf("GetExchangeRate() = %v, %v; want 84.5, true", got, ok)
	}
}

func TestGetExchangeRate_NotInContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := GetExchangeRate(req); ok {
		t.Error("expected no rate in context")
	}
}

func TestExchangeRate_FallsBackToSettings(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	e := newTestRequestEvent(app, req, httptest.NewRecorder())
	if got := exchangeRate(e); got != services.DefaultExchangeRate {
		t.Errorf("exchangeRate() = %v, want default %v", got, services.DefaultExchangeRate)
	}

	if _, err := services.SetExchangeRate(app, "90"); err != nil {
		t.Fatalf("SetExchangeRate() error: %v", err)
	}
	if got := exchangeRate(e); got != 90 {
		t.Errorf("exchangeRate() = %v, want 90", got)
	}
}

func TestSettingsMiddleware_StoresRate(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	if _, err := services.SetExchangeRate(app, "86"); err != nil {
		t.Fatalf("SetExchangeRate() error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/quotes/new", nil)
	e := newTestRequestEvent(app, req, httptest.NewRecorder())

	if err := SettingsMiddleware(app, 83)(e); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	got, ok := GetExchangeRate(e.Request)
	if !ok || got != 86 {
		t.Errorf("rate in context = %v, %v; want 86, true", got, ok)
	}
}

func TestSettingsMiddleware_Fallback(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	e := newTestRequestEvent(app, req, httptest.NewRecorder())

	if err := SettingsMiddleware(app, 81.5)(e); err != nil {
		t.Fatalf("middleware returned error: %v", err)
	}
	if got, _ := GetExchangeRate(e.Request); got != 81.5 {
		t.Errorf("rate in context = %v, want fallback 81.5", got)
	}
}
