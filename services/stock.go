package services

// Stock transaction directions.
const (
	StockIn  = "IN"
	StockOut = "OUT"
)

// StockMovement is the ledger entry produced by a stock adjustment.
type StockMovement struct {
	Type          string
	Quantity      int
	PreviousStock int
	NewStock      int
	Note          string
}

// ApplyStockMovement adjusts current by amount (negative for stock out).
// Stock never goes below zero. When note is empty a default reason is
// used.
func ApplyStockMovement(current, amount int, note string) StockMovement {
	if current < 0 {
		current = 0
	}
	mv := StockMovement{
		Type:          StockIn,
		Quantity:      amount,
		PreviousStock: current,
		NewStock:      max(0, current+amount),
		Note:          note,
	}
	if amount < 0 {
		mv.Type = StockOut
		mv.Quantity = -amount
	}
	if mv.Note == "" {
		if mv.Type == StockIn {
			mv.Note = "Restocked"
		} else {
			mv.Note = "Stock adjustment"
		}
	}
	return mv
}

// InitialStockMovement is the entry recorded when an item is created with
// stock on hand.
func InitialStockMovement(stock int) StockMovement {
	return StockMovement{
		Type:     StockIn,
		Quantity: stock,
		NewStock: stock,
		Note:     "Initial Stock",
	}
}
