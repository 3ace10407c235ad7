package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"ledquote/services"
)

var (
	errNoResult      = errors.New("quote has no priced result")
	errQuoteNotFound = errors.New("quote not found")
)

// buildExportData loads a saved quote, reprices it against the current
// catalog and exchange rate, and flattens it for export.
func buildExportData(app *pocketbase.PocketBase, quoteID string, rate float64) (services.ExportData, error) {
	saved, cfg, err := services.LoadQuote(app, quoteID)
	if err != nil {
		return services.ExportData{}, fmt.Errorf("%w: %v", errQuoteNotFound, err)
	}

	cat, err := services.LoadCatalog(app)
	if err != nil {
		return services.ExportData{}, err
	}

	res, ok := services.ComputeQuote(cat, cfg, rate)
	if !ok {
		return services.ExportData{}, fmt.Errorf("quote %s: %w", quoteID, errNoResult)
	}

	data := services.NewExportData(cfg, res)
	data.QuoteNumber = saved.QuoteNumber
	data.CreatedDate = "—"
	if !saved.Created.IsZero() {
		data.CreatedDate = saved.Created.Format("02 Jan 2006")
	}
	return data, nil
}

// exportError maps a buildExportData failure to a response.
func exportError(e *core.RequestEvent, logPrefix string, err error) error {
	log.Printf("%s: %v", logPrefix, err)
	switch {
	case errors.Is(err, errQuoteNotFound):
		return e.String(http.StatusNotFound, "Quote not found")
	case errors.Is(err, errNoResult):
		return e.String(http.StatusUnprocessableEntity, "Quote is incomplete and cannot be exported")
	default:
		return e.String(http.StatusInternalServerError, "Failed to export quote")
	}
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	s = strings.ReplaceAll(s, `"`, "")
	return s
}

func exportFilename(data services.ExportData, ext string) string {
	name := data.QuoteNumber
	if data.Client != "" {
		name += "_" + data.Client
	}
	return fmt.Sprintf("Quote_%s.%s", sanitizeFilename(name), ext)
}

// Route: GET /quotes/{id}/export/excel
func HandleQuoteExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(http.StatusBadRequest, "Missing quote ID")
		}

		data, err := buildExportData(app, quoteID, exchangeRate(e))
		if err != nil {
			return exportError(e, "export_excel", err)
		}

		xlsxBytes, err := services.GenerateExcel(data)
		if err != nil {
			log.Printf("export_excel: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		e.Response.Header().Set("Content-Type", xlsxContentType)
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, exportFilename(data, "xlsx")))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// Route: GET /quotes/{id}/export/pdf
func HandleQuoteExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(http.StatusBadRequest, "Missing quote ID")
		}

		data, err := buildExportData(app, quoteID, exchangeRate(e))
		if err != nil {
			return exportError(e, "export_pdf", err)
		}

		pdfBytes, err := services.GeneratePDF(data)
		if err != nil {
			log.Printf("export_pdf: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, exportFilename(data, "pdf")))
		e.Response.Write(pdfBytes)
		return nil
	}
}
