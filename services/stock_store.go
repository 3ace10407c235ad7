package services

import (
	"fmt"
	"time"

	"github.com/pocketbase/pocketbase/core"
)

// StockHistoryLimit is how many transactions the history view shows.
const StockHistoryLimit = 20

// StockTransaction is one persisted stock ledger entry.
type StockTransaction struct {
	ID            string
	ItemID        string
	ItemDetails   string
	Type          string
	Quantity      int
	PreviousStock int
	NewStock      int
	Note          string
	Created       time.Time
}

// AdjustStock applies amount to the item's stock and records the movement.
// Both writes happen in one database transaction.
func AdjustStock(app core.App, itemID string, amount int, note string) (StockMovement, error) {
	var mv StockMovement
	err := app.RunInTransaction(func(txApp core.App) error {
		item, err := txApp.FindRecordById(InventoryCollection, itemID)
		if err != nil {
			return fmt.Errorf("find item %s: %w", itemID, err)
		}

		mv = ApplyStockMovement(item.GetInt("stock"), amount, note)
		item.Set("stock", mv.NewStock)
		if err := txApp.Save(item); err != nil {
			return fmt.Errorf("update stock: %w", err)
		}
		return saveTransaction(txApp, item, mv)
	})
	return mv, err
}

func saveTransaction(app core.App, item *core.Record, mv StockMovement) error {
	col, err := app.FindCollectionByNameOrId(TransactionsCollection)
	if err != nil {
		return fmt.Errorf("find transactions collection: %w", err)
	}

	tx := core.NewRecord(col)
	tx.Set("item", item.Id)
	tx.Set("item_details", CatalogItemFromRecord(item).Label())
	tx.Set("type", mv.Type)
	tx.Set("quantity", mv.Quantity)
	tx.Set("previous_stock", mv.PreviousStock)
	tx.Set("new_stock", mv.NewStock)
	tx.Set("note", mv.Note)
	if err := app.Save(tx); err != nil {
		return fmt.Errorf("save stock transaction: %w", err)
	}
	return nil
}

// StockHistory returns the latest transactions for an item, newest first.
func StockHistory(app core.App, itemID string) ([]StockTransaction, error) {
	records, err := app.FindRecordsByFilter(
		TransactionsCollection,
		"item = {:itemId}",
		"-created",
		StockHistoryLimit,
		0,
		map[string]any{"itemId": itemID},
	)
	if err != nil {
		return nil, fmt.Errorf("stock history for %s: %w", itemID, err)
	}

	out := make([]StockTransaction, len(records))
	for i, r := range records {
		out[i] = StockTransaction{
			ID:            r.Id,
			ItemID:        r.GetString("item"),
			ItemDetails:   r.GetString("item_details"),
			Type:          r.GetString("type"),
			Quantity:      r.GetInt("quantity"),
			PreviousStock: r.GetInt("previous_stock"),
			NewStock:      r.GetInt("new_stock"),
			Note:          r.GetString("note"),
			Created:       r.GetDateTime("created").Time(),
		}
	}
	return out, nil
}
