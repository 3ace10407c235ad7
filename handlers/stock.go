package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"ledquote/services"
	"ledquote/templates"
)

// HandleStockUpdate applies a signed stock adjustment and records it in the
// ledger. It returns the new stock count.
// Route: POST /inventory/{id}/stock
func HandleStockUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		itemID := e.Request.PathValue("id")
		if itemID == "" {
			return e.String(http.StatusBadRequest, "Missing item ID")
		}
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		amount := services.ToDelta(e.Request.FormValue("amount"))
		if amount == 0 {
			return ErrorToast(e, http.StatusBadRequest, "Enter a non-zero quantity")
		}
		note := strings.TrimSpace(e.Request.FormValue("note"))

		if _, err := app.FindRecordById(services.InventoryCollection, itemID); err != nil {
			return ErrorToast(e, http.StatusNotFound, "Item not found")
		}

		mv, err := services.AdjustStock(app, itemID, amount, note)
		if err != nil {
			log.Printf("stock_update: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to update stock")
		}

		log.Printf("stock_update: %s %s %d (%d -> %d)\n", itemID, mv.Type, mv.Quantity, mv.PreviousStock, mv.NewStock)
		SetToast(e, ToastSuccess, fmt.Sprintf("Stock %s: %d (now %d)", strings.ToLower(mv.Type), mv.Quantity, mv.NewStock))
		return templates.StockValue(mv.NewStock).Render(e.Request.Context(), e.Response)
	}
}

// Route: GET /inventory/{id}/history
func HandleStockHistory(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		itemID := e.Request.PathValue("id")
		if itemID == "" {
			return e.String(http.StatusBadRequest, "Missing item ID")
		}
		if _, err := app.FindRecordById(services.InventoryCollection, itemID); err != nil {
			return e.String(http.StatusNotFound, "Item not found")
		}

		txs, err := services.StockHistory(app, itemID)
		if err != nil {
			log.Printf("stock_history: %v", err)
			txs = nil
		}

		data := templates.StockHistoryData{
			ItemID:       itemID,
			Transactions: txs,
			Now:          time.Now(),
		}
		return templates.StockHistoryContent(data).Render(e.Request.Context(), e.Response)
	}
}
