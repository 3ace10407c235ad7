package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"ledquote/services"
	"ledquote/testhelpers"
)

func TestHandleSettings_Default(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/settings", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleSettings(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), `name="exchange_rate"`, `value="83"`)
}

func TestHandleSettingsSave(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	form := url.Values{"exchange_rate": {"84.5"}}
	req := newFormRequest(http.MethodPost, "/settings", form)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleSettingsSave(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), `value="84.5"`, "Saved")
	if got := services.GetExchangeRate(app, 0); got != 84.5 {
		t.Errorf("stored rate = %v, want 84.5", got)
	}
}

func TestHandleSettingsSave_CoercesGarbage(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	form := url.Values{"exchange_rate": {"lots"}}
	req := newFormRequest(http.MethodPost, "/settings", form)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleSettingsSave(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if got := services.GetExchangeRate(app, 83); got != 0 {
		t.Errorf("stored rate = %v, want 0", got)
	}
}
