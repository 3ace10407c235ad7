package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"ledquote/services"
)

// HandleInventoryDelete removes an item together with its stock history.
// Saved quotes that reference it simply lose the selection.
// Route: DELETE /inventory/{id}
func HandleInventoryDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		itemID := e.Request.PathValue("id")
		if itemID == "" {
			return e.String(http.StatusBadRequest, "Missing item ID")
		}

		if _, err := app.FindRecordById(services.InventoryCollection, itemID); err != nil {
			return ErrorToast(e, http.StatusNotFound, "Item not found")
		}
		if err := services.DeleteInventoryItem(app, itemID); err != nil {
			log.Printf("inventory_delete: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to delete item")
		}

		log.Printf("inventory_delete: deleted item %s\n", itemID)
		SetToast(e, ToastSuccess, "Item deleted")

		if isHTMX(e) {
			return e.String(http.StatusOK, "")
		}
		return e.Redirect(http.StatusFound, "/inventory")
	}
}
