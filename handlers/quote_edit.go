package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"ledquote/services"
	"ledquote/templates"
)

// HandleQuoteEdit loads a saved quote into the calculator. With
// ?clone=true the state is loaded as a new, unsaved copy.
// Route: GET /quotes/{id}/edit
func HandleQuoteEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(http.StatusBadRequest, "Missing quote ID")
		}

		saved, cfg, err := services.LoadQuote(app, quoteID)
		if err != nil {
			log.Printf("quote_edit: %v", err)
			return e.String(http.StatusNotFound, "Quote not found")
		}

		clone := e.Request.URL.Query().Get("clone") == "true"
		if clone {
			cfg = cfg.Clone()
		}

		cat := loadCatalog(app, "quote_edit")
		data := buildCalculatorData(cat, cfg, exchangeRate(e))
		if !clone {
			data.QuoteID = saved.ID
			data.QuoteNumber = saved.QuoteNumber
		}
		return render(e, templates.CalculatorContent(data), templates.CalculatorPage(data))
	}
}
