package collections

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"ledquote/services"
)

// Setup programmatically creates/ensures the inventory, transactions,
// quotes and settings collections exist.
func Setup(app *pocketbase.PocketBase) {
	itemTypes := make([]string, len(services.ItemTypes))
	for i, t := range services.ItemTypes {
		itemTypes[i] = string(t)
	}

	inventory := ensureCollection(app, services.InventoryCollection, func(c *core.Collection) {
		c.Fields.Add(&core.SelectField{
			Name:      "type",
			Required:  true,
			Values:    itemTypes,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "brand", Required: true})
		c.Fields.Add(&core.TextField{Name: "model", Required: true})
		c.Fields.Add(&core.TextField{Name: "vendor"})
		c.Fields.Add(&core.NumberField{Name: "pitch"})
		c.Fields.Add(&core.NumberField{Name: "width"})
		c.Fields.Add(&core.NumberField{Name: "height"})
		c.Fields.Add(&core.NumberField{Name: "price"})
		c.Fields.Add(&core.NumberField{Name: "carriage"})
		c.Fields.Add(&core.SelectField{
			Name:      "currency",
			Values:    []string{string(services.CurrencyINR), string(services.CurrencyUSD)},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.BoolField{Name: "indoor"})
		c.Fields.Add(&core.TextField{Name: "brightness"})
		c.Fields.Add(&core.TextField{Name: "refresh_rate"})
		c.Fields.Add(&core.TextField{Name: "scan_rate"})
		c.Fields.Add(&core.TextField{Name: "gray_scale"})
		c.Fields.Add(&core.NumberField{Name: "stock", OnlyInt: true})
		c.Fields.Add(&core.TextField{Name: "import_batch"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, services.TransactionsCollection, func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "item",
			Required:      true,
			CollectionId:  inventory.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "item_details"})
		c.Fields.Add(&core.SelectField{
			Name:      "type",
			Required:  true,
			Values:    []string{services.StockIn, services.StockOut},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "quantity", OnlyInt: true})
		c.Fields.Add(&core.NumberField{Name: "previous_stock", OnlyInt: true})
		c.Fields.Add(&core.NumberField{Name: "new_stock", OnlyInt: true})
		c.Fields.Add(&core.TextField{Name: "note"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})

	ensureCollection(app, services.QuotesCollection, func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "quote_number"})
		c.Fields.Add(&core.TextField{Name: "client"})
		c.Fields.Add(&core.TextField{Name: "project"})
		c.Fields.Add(&core.NumberField{Name: "final_amount"})
		c.Fields.Add(&core.JSONField{Name: "calculator_state"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
		c.AddIndex("idx_quotes_number", true, "quote_number", "")
	})

	ensureCollection(app, services.SettingsCollection, func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "key", Required: true})
		c.Fields.Add(&core.TextField{Name: "value"})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
		c.AddIndex("idx_settings_key", true, "key", "")
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("setup: collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("setup: failed to create collection %q: %v", name, err)
	}

	log.Printf("setup: created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
