package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ledquote/services"
	"ledquote/testhelpers"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"spaces to hyphens", "Sunrise Hotels", "Sunrise-Hotels"},
		{"slashes to hyphens", "path/to/file", "path-to-file"},
		{"backslashes", "path\\to\\file", "path-to-file"},
		{"colons", "file:name", "file-name"},
		{"quotes dropped", `The "Best" Co`, "The-Best-Co"},
		{"mixed", "A / B \\ C : D", "A---B---C---D"},
		{"no special chars", "simple", "simple"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeFilename(tt.input)
			if got != tt.want {
				t.Errorf("sanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestBuildExportData(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	ids := testhelpers.CreateTestCatalog(t, app)
	q := testhelpers.CreateTestQuote(t, app, savedAssembledQuote(t, ids), 0)

	data, err := buildExportData(app, q.Id, 83)
	if err != nil {
		t.Fatalf("buildExportData error: %v", err)
	}
	if data.QuoteNumber != q.GetString("quote_number") {
		t.Errorf("quote number = %q", data.QuoteNumber)
	}
	if data.Client != "Acme" || data.Cols != 2 || data.Rows != 1 {
		t.Errorf("unexpected export data: client=%q grid=%dx%d", data.Client, data.Cols, data.Rows)
	}
	if len(data.Items) != 4 {
		t.Errorf("expected 4 BOM rows, got %d", len(data.Items))
	}
	// 8800 + 2200 at 20% margin.
	if data.GrandTotal != 13200 {
		t.Errorf("grand total = %v, want 13200", data.GrandTotal)
	}
	if data.CreatedDate == "" || data.CreatedDate == "—" {
		t.Errorf("expected created date, got %q", data.CreatedDate)
	}
}

func TestBuildExportData_Incomplete(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	q := testhelpers.CreateTestQuote(t, app, services.DefaultQuoteConfig(), 0)

	if _, err := buildExportData(app, q.Id, 83); err == nil {
		t.Error("expected error for a quote without a priced result")
	}
}

func TestHandleQuoteExportExcel_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	ids := testhelpers.CreateTestCatalog(t, app)
	q := testhelpers.CreateTestQuote(t, app, savedAssembledQuote(t, ids), 0)

	req := httptest.NewRequest(http.MethodGet, "/quotes/"+q.Id+"/export/excel", nil)
	req.SetPathValue("id", q.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleQuoteExportExcel(app)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("expected Excel content type, got %q", ct)
	}
	cd := rec.Header().Get("Content-Disposition")
	if !strings.Contains(cd, "attachment") || !strings.Contains(cd, "_Acme.xlsx") {
		t.Errorf("unexpected disposition %q", cd)
	}
	if rec.Body.Len() == 0 {
		t.Error("expected non-empty body")
	}
}

func TestHandleQuoteExportPDF_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	ids := testhelpers.CreateTestCatalog(t, app)
	q := testhelpers.CreateTestQuote(t, app, savedAssembledQuote(t, ids), 0)

	req := httptest.NewRequest(http.MethodGet, "/quotes/"+q.Id+"/export/pdf", nil)
	req.SetPathValue("id", q.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleQuoteExportPDF(app)(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("expected application/pdf, got %q", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "%PDF") {
		t.Error("expected PDF body")
	}
}

func TestHandleQuoteExport_Errors(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	incomplete := testhelpers.CreateTestQuote(t, app, services.DefaultQuoteConfig(), 0)

	tests := []struct {
		name string
		id   string
		want int
	}{
		{"missing quote", "nonexistent", http.StatusNotFound},
		{"incomplete quote", incomplete.Id, http.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/quotes/"+tt.id+"/export/excel", nil)
			req.SetPathValue("id", tt.id)
			rec := httptest.NewRecorder()
			e := newTestRequestEvent(app, req, rec)

			if err := HandleQuoteExportExcel(app)(e); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, rec.Code)
			}
		})
	}
}

func TestExportError_StatusCodes(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", fmt.Errorf("%w: find quote x", errQuoteNotFound), http.StatusNotFound},
		{"incomplete", fmt.Errorf("quote x: %w", errNoResult), http.StatusUnprocessableEntity},
		{"catalog failure", errors.New("load catalog: disk I/O error"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/quotes/x/export/pdf", nil)
			rec := httptest.NewRecorder()
			e := newTestRequestEvent(app, req, rec)

			if err := exportError(e, "export_pdf", tt.err); err != nil {
				t.Fatalf("exportError returned error: %v", err)
			}
			if rec.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, rec.Code)
			}
		})
	}
}

func TestBuildExportData_MissingQuote(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	_, err := buildExportData(app, "nonexistent", 83)
	if !errors.Is(err, errQuoteNotFound) {
		t.Errorf("expected errQuoteNotFound, got %v", err)
	}
}
