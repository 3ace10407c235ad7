package handlers

import (
	"log"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"ledquote/services"
	"ledquote/templates"
)

// Route: GET /inventory
func HandleInventoryList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		searchQuery := strings.TrimSpace(e.Request.URL.Query().Get("search"))

		items, err := services.ListInventory(app, searchQuery)
		if err != nil {
			log.Printf("inventory_list: could not query inventory: %v", err)
			items = nil
		}

		data := templates.InventoryListData{
			Items:       items,
			SearchQuery: searchQuery,
			TotalCount:  len(items),
		}
		return render(e, templates.InventoryListContent(data), templates.InventoryListPage(data))
	}
}
