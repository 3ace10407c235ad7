package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"ledquote/services"
	"ledquote/templates"
)

// Route: GET /inventory/{id}/edit
func HandleInventoryEdit(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		itemID := e.Request.PathValue("id")
		if itemID == "" {
			return e.String(http.StatusBadRequest, "Missing item ID")
		}

		item, err := services.GetInventoryItem(app, itemID)
		if err != nil {
			log.Printf("inventory_edit: %v", err)
			return e.String(http.StatusNotFound, "Item not found")
		}

		data := templates.InventoryFormData{
			IsEdit: true,
			ID:     itemID,
			Item:   item,
			Errors: make(map[string]string),
		}
		return render(e, templates.InventoryFormContent(data), templates.InventoryFormPage(data))
	}
}

// Route: POST /inventory/{id}/edit
func HandleInventoryUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		itemID := e.Request.PathValue("id")
		if itemID == "" {
			return e.String(http.StatusBadRequest, "Missing item ID")
		}
		if _, err := app.FindRecordById(services.InventoryCollection, itemID); err != nil {
			return ErrorToast(e, http.StatusNotFound, "Item not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		data := templates.InventoryFormData{
			IsEdit: true,
			ID:     itemID,
			Item:   services.CatalogItemFromForm(e.Request.FormValue),
		}
		data.Errors = services.ValidateCatalogItem(data.Item)

		if len(data.Errors) > 0 {
			SetToast(e, ToastWarning, "Please fix the errors below")
			return render(e, templates.InventoryFormContent(data), templates.InventoryFormPage(data))
		}

		if err := services.UpdateInventoryItem(app, itemID, data.Item); err != nil {
			log.Printf("inventory_edit: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		SetToast(e, ToastSuccess, "Item updated")
		return redirect(e, "/inventory")
	}
}
