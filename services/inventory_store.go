package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase/core"
)

// Collection names.
const (
	InventoryCollection    = "inventory"
	TransactionsCollection = "transactions"
	QuotesCollection       = "quotes"
	SettingsCollection     = "settings"
)

// CatalogItemFromRecord maps an inventory record onto a CatalogItem.
func CatalogItemFromRecord(r *core.Record) CatalogItem {
	return CatalogItem{
		ID:          r.Id,
		Type:        ItemType(r.GetString("type")),
		Brand:       r.GetString("brand"),
		Model:       r.GetString("model"),
		Vendor:      r.GetString("vendor"),
		Pitch:       r.GetFloat("pitch"),
		Width:       r.GetFloat("width"),
		Height:      r.GetFloat("height"),
		Price:       r.GetFloat("price"),
		Carriage:    r.GetFloat("carriage"),
		Currency:    ParseCurrency(r.GetString("currency")),
		Indoor:      r.GetBool("indoor"),
		Brightness:  r.GetString("brightness"),
		RefreshRate: r.GetString("refresh_rate"),
		ScanRate:    r.GetString("scan_rate"),
		GrayScale:   r.GetString("gray_scale"),
		Stock:       max(0, r.GetInt("stock")),
	}
}

// SetCatalogFields copies the editable fields of item onto r. Stock is left
// alone; it only changes through the stock ledger.
func SetCatalogFields(r *core.Record, item CatalogItem) {
	r.Set("type", string(item.Type))
	r.Set("brand", item.Brand)
	r.Set("model", item.Model)
	r.Set("vendor", item.Vendor)
	r.Set("pitch", item.Pitch)
	r.Set("width", item.Width)
	r.Set("height", item.Height)
	r.Set("price", item.Price)
	r.Set("carriage", item.Carriage)
	r.Set("currency", string(ParseCurrency(string(item.Currency))))
	r.Set("indoor", item.Indoor)
	r.Set("brightness", item.Brightness)
	r.Set("refresh_rate", item.RefreshRate)
	r.Set("scan_rate", item.ScanRate)
	r.Set("gray_scale", item.GrayScale)
}

// ListInventory returns inventory items sorted by type, brand and model. A
// non-empty search matches brand, model, vendor or type.
func ListInventory(app core.App, search string) ([]CatalogItem, error) {
	filter := "1=1"
	params := map[string]any{}
	if search != "" {
		filter = "brand ~ {:q} || model ~ {:q} || vendor ~ {:q} || type ~ {:q}"
		params["q"] = search
	}

	records, err := app.FindRecordsByFilter(InventoryCollection, filter, "type,brand,model", 0, 0, params)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}

	items := make([]CatalogItem, len(records))
	for i, r := range records {
		items[i] = CatalogItemFromRecord(r)
	}
	return items, nil
}

// LoadCatalog reads the whole inventory into a typed catalog snapshot.
func LoadCatalog(app core.App) (Catalog, error) {
	items, err := ListInventory(app, "")
	if err != nil {
		return Catalog{}, err
	}
	return NewCatalog(items), nil
}

// CreateInventoryItem saves a new item. When it arrives with stock on hand
// an "Initial Stock" transaction is written in the same database
// transaction.
func CreateInventoryItem(app core.App, item CatalogItem, importBatch string) (*core.Record, error) {
	var saved *core.Record
	err := app.RunInTransaction(func(txApp core.App) error {
		col, err := txApp.FindCollectionByNameOrId(InventoryCollection)
		if err != nil {
			return fmt.Errorf("find inventory collection: %w", err)
		}

		r := core.NewRecord(col)
		SetCatalogFields(r, item)
		stock := max(0, item.Stock)
		r.Set("stock", stock)
		if importBatch != "" {
			r.Set("import_batch", importBatch)
		}
		if err := txApp.Save(r); err != nil {
			return fmt.Errorf("save inventory item: %w", err)
		}

		if stock > 0 {
			if err := saveTransaction(txApp, r, InitialStockMovement(stock)); err != nil {
				return err
			}
		}
		saved = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// ValidateCatalogItem returns field errors keyed by form field name.
func ValidateCatalogItem(item CatalogItem) map[string]string {
	errs := make(map[string]string)
	if _, ok := ParseItemType(string(item.Type)); !ok {
		errs["type"] = "Type is required"
	}
	if item.Brand == "" {
		errs["brand"] = "Brand is required"
	}
	if item.Model == "" {
		errs["model"] = "Model is required"
	}
	return errs
}

// CatalogItemFromForm reads a submitted inventory form. Numbers are coerced.
func CatalogItemFromForm(get func(string) string) CatalogItem {
	t, _ := ParseItemType(get("type"))
	return CatalogItem{
		Type:        t,
		Brand:       ToText(get("brand")),
		Model:       ToText(get("model")),
		Vendor:      ToText(get("vendor")),
		Pitch:       ToNumber(get("pitch")),
		Width:       ToNumber(get("width")),
		Height:      ToNumber(get("height")),
		Price:       ToNumber(get("price")),
		Carriage:    ToNumber(get("carriage")),
		Currency:    ParseCurrency(get("currency")),
		Indoor:      ToFlag(get("indoor")),
		Brightness:  ToText(get("brightness")),
		RefreshRate: ToText(get("refresh_rate")),
		ScanRate:    ToText(get("scan_rate")),
		GrayScale:   ToText(get("gray_scale")),
		Stock:       ToCount(get("stock")),
	}
}

// GetInventoryItem reads a single inventory item.
func GetInventoryItem(app core.App, id string) (CatalogItem, error) {
	r, err := app.FindRecordById(InventoryCollection, id)
	if err != nil {
		return CatalogItem{}, fmt.Errorf("find inventory item %s: %w", id, err)
	}
	return CatalogItemFromRecord(r), nil
}

// UpdateInventoryItem overwrites the editable fields of an existing item.
func UpdateInventoryItem(app core.App, id string, item CatalogItem) error {
	r, err := app.FindRecordById(InventoryCollection, id)
	if err != nil {
		return fmt.Errorf("find inventory item %s: %w", id, err)
	}
	SetCatalogFields(r, item)
	if err := app.Save(r); err != nil {
		return fmt.Errorf("update inventory item %s: %w", id, err)
	}
	return nil
}

// DeleteInventoryItem removes an item. Its stock transactions go with it.
func DeleteInventoryItem(app core.App, id string) error {
	r, err := app.FindRecordById(InventoryCollection, id)
	if err != nil {
		return fmt.Errorf("find inventory item %s: %w", id, err)
	}
	if err := app.Delete(r); err != nil {
		return fmt.Errorf("delete inventory item %s: %w", id, err)
	}
	return nil
}

// ImportCatalogItems saves every valid row of an import under its batch id
// and returns how many items were created. Nothing is saved if any row
// fails.
func ImportCatalogItems(app core.App, res *ImportResult) (int, error) {
	err := app.RunInTransaction(func(txApp core.App) error {
		for _, item := range res.Items {
			if _, err := CreateInventoryItem(txApp, item, res.BatchID); err != nil {
				return fmt.Errorf("import %s: %w", item.Label(), err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(res.Items), nil
}
