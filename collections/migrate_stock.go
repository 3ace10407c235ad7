package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"ledquote/services"
)

// MigrateInitialStockTransactions finds inventory items that hold stock but
// have no ledger entries (e.g. edited directly in the admin UI) and records
// an "Initial Stock" transaction for each one. Safe to call on every
// startup -- returns early if nothing to migrate.
func MigrateInitialStockTransactions(app *pocketbase.PocketBase) error {
	items, err := app.FindRecordsByFilter(services.InventoryCollection, "stock > 0", "", 0, 0)
	if err != nil {
		return fmt.Errorf("migrate_stock: could not query inventory: %w", err)
	}

	txCol, err := app.FindCollectionByNameOrId(services.TransactionsCollection)
	if err != nil {
		return fmt.Errorf("migrate_stock: could not find transactions collection: %w", err)
	}

	migrated := 0
	for _, item := range items {
		existing, err := app.FindRecordsByFilter(txCol, "item = {:itemId}", "", 1, 0, map[string]any{"itemId": item.Id})
		if err != nil {
			log.Printf("migrate_stock: could not query transactions for %s: %v\n", item.Id, err)
			continue
		}
		if len(existing) > 0 {
			continue
		}

		mv := services.InitialStockMovement(item.GetInt("stock"))
		tx := core.NewRecord(txCol)
		tx.Set("item", item.Id)
		tx.Set("item_details", services.CatalogItemFromRecord(item).Label())
		tx.Set("type", mv.Type)
		tx.Set("quantity", mv.Quantity)
		tx.Set("previous_stock", mv.PreviousStock)
		tx.Set("new_stock", mv.NewStock)
		tx.Set("note", mv.Note)
		if err := app.Save(tx); err != nil {
			log.Printf("migrate_stock: failed to backfill stock for %s: %v\n", item.Id, err)
			continue
		}
		migrated++
	}

	if migrated > 0 {
		log.Printf("migrate_stock: backfilled %d initial stock transaction(s)\n", migrated)
	}
	return nil
}
