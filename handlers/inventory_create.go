package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"ledquote/services"
	"ledquote/templates"
)

// Route: GET /inventory/new
func HandleInventoryCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.InventoryFormData{
			Item:   services.CatalogItem{Indoor: true},
			Errors: make(map[string]string),
		}
		return render(e, templates.InventoryFormContent(data), templates.InventoryFormPage(data))
	}
}

// Route: POST /inventory/new
func HandleInventorySave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		data := templates.InventoryFormData{
			Item: services.CatalogItemFromForm(e.Request.FormValue),
		}
		data.Errors = services.ValidateCatalogItem(data.Item)

		if len(data.Errors) > 0 {
			SetToast(e, ToastWarning, "Please fix the errors below")
			return render(e, templates.InventoryFormContent(data), templates.InventoryFormPage(data))
		}

		record, err := services.CreateInventoryItem(app, data.Item, "")
		if err != nil {
			log.Printf("inventory_create: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		log.Printf("inventory_create: created %s (%s) stock=%d\n", data.Item.Label(), record.Id, record.GetInt("stock"))
		SetToast(e, ToastSuccess, fmt.Sprintf("%s added to inventory", data.Item.Label()))
		return redirect(e, "/inventory")
	}
}
