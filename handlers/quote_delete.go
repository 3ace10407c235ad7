package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"ledquote/services"
)

// Route: DELETE /quotes/{id}
func HandleQuoteDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID := e.Request.PathValue("id")
		if quoteID == "" {
			return e.String(http.StatusBadRequest, "Missing quote ID")
		}

		if _, err := app.FindRecordById(services.QuotesCollection, quoteID); err != nil {
			return ErrorToast(e, http.StatusNotFound, "Quote not found")
		}
		if err := services.DeleteQuote(app, quoteID); err != nil {
			log.Printf("quote_delete: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to delete quote")
		}

		log.Printf("quote_delete: deleted quote %s\n", quoteID)
		SetToast(e, ToastSuccess, "Quote deleted")

		// The list row swaps itself out with the empty body.
		if isHTMX(e) {
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/quotes")
	}
}
