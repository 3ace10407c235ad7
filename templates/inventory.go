package templates

import (
	"time"

	"github.com/spf13/cast"

	"ledquote/services"
)

type InventoryListData struct {
	Items       []services.CatalogItem
	SearchQuery string
	TotalCount  int
}

func itemSpecs(it services.CatalogItem) string {
	var s string
	if it.Type.HasPanelSpecs() && it.Pitch > 0 {
		s = "P" + services.FormatPitch(it.Pitch) + " "
	}
	if it.Type.HasDimensions() {
		s += cast.ToString(it.Width) + "×" + cast.ToString(it.Height) + " mm"
	}
	if it.Type.HasPanelSpecs() {
		if it.Indoor {
			s += " · Indoor"
		} else {
			s += " · Outdoor"
		}
	}
	return s
}

// InventoryFormData backs the create and edit forms.
type InventoryFormData struct {
	IsEdit bool
	ID     string
	Item   services.CatalogItem
	Errors map[string]string
}

func numValue(v float64) string {
	if v == 0 {
		return ""
	}
	return cast.ToString(v)
}

type StockHistoryData struct {
	ItemID       string
	Transactions []services.StockTransaction
	Now          time.Time
}

func formTitle(data InventoryFormData) string {
	if data.IsEdit {
		return "Edit Item"
	}
	return "Add Item"
}

func formAction(data InventoryFormData) string {
	if data.IsEdit {
		return "/inventory/" + data.ID + "/edit"
	}
	return "/inventory/new"
}

func formHeading(data InventoryFormData) string {
	if data.IsEdit {
		return "Edit " + data.Item.Label()
	}
	return "Add Item"
}

// indoorValue preselects indoor for a fresh item.
func indoorValue(data InventoryFormData) string {
	if data.Item.Indoor || !data.IsEdit && data.Item.Type == "" {
		return "true"
	}
	return "false"
}

func stockChange(tx services.StockTransaction) string {
	return cast.ToString(tx.PreviousStock) + " → " + cast.ToString(tx.NewStock)
}

func importSummary(res *services.ImportResult, imported int) string {
	return res.FileName + ": " + cast.ToString(res.TotalRows) + " rows, " +
		cast.ToString(imported) + " imported, " + cast.ToString(res.ErrorRows) + " with errors"
}

func importErrorLine(e services.ValidationError) string {
	return "Row " + cast.ToString(e.Row) + " · " + e.Field + ": " + e.Message
}
