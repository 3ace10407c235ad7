package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"ledquote/services"
)

// HandleQuoteSave recomputes the posted calculator state on the server and
// stores it with its final amount. A quote_id updates that quote in place.
// Route: POST /quotes
func HandleQuoteSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		cfg, err := configFromForm(e)
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}
		quoteID := e.Request.FormValue("quote_id")

		if quoteID != "" {
			if _, err := app.FindRecordById(services.QuotesCollection, quoteID); err != nil {
				return ErrorToast(e, http.StatusNotFound, "Quote not found")
			}
		}

		cat := loadCatalog(app, "quote_save")
		var finalAmount float64
		if res, ok := services.ComputeQuote(cat, cfg, exchangeRate(e)); ok {
			finalAmount = res.FinalPrice
		}

		record, err := services.SaveQuote(app, quoteID, cfg, finalAmount, time.Now())
		if err != nil {
			log.Printf("quote_save: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		number := record.GetString("quote_number")
		log.Printf("quote_save: saved %s (%s) final_amount=%.2f\n", number, record.Id, finalAmount)

		SetToast(e, ToastSuccess, fmt.Sprintf("Quote %s saved", number))
		return redirect(e, fmt.Sprintf("/quotes/%s/edit", record.Id))
	}
}
