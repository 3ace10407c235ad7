package services

import (
	"fmt"
	"time"

	"github.com/pocketbase/pocketbase/core"
)

// SavedQuote is the list view of a persisted quote.
type SavedQuote struct {
	ID          string
	QuoteNumber string
	Client      string
	Project     string
	FinalAmount float64
	Created     time.Time
	Updated     time.Time
}

func savedQuoteFromRecord(r *core.Record) SavedQuote {
	return SavedQuote{
		ID:          r.Id,
		QuoteNumber: r.GetString("quote_number"),
		Client:      r.GetString("client"),
		Project:     r.GetString("project"),
		FinalAmount: r.GetFloat("final_amount"),
		Created:     r.GetDateTime("created").Time(),
		Updated:     r.GetDateTime("updated").Time(),
	}
}

// SaveQuote snapshots cfg with its materialised final amount. An empty id
// creates a new quote with the next quote number; otherwise the existing
// quote is overwritten and keeps its number.
func SaveQuote(app core.App, id string, cfg QuoteConfig, finalAmount float64, now time.Time) (*core.Record, error) {
	var r *core.Record
	if id != "" {
		existing, err := app.FindRecordById(QuotesCollection, id)
		if err != nil {
			return nil, fmt.Errorf("find quote %s: %w", id, err)
		}
		r = existing
	} else {
		col, err := app.FindCollectionByNameOrId(QuotesCollection)
		if err != nil {
			return nil, fmt.Errorf("find quotes collection: %w", err)
		}
		number, err := GenerateQuoteNumber(app, now)
		if err != nil {
			return nil, err
		}
		r = core.NewRecord(col)
		r.Set("quote_number", number)
	}

	r.Set("client", cfg.Client)
	r.Set("project", cfg.Project)
	r.Set("final_amount", finalAmount)
	r.Set("calculator_state", cfg)

	if err := app.Save(r); err != nil {
		return nil, fmt.Errorf("save quote: %w", err)
	}
	return r, nil
}

// ListQuotes returns saved quotes, most recently updated first.
func ListQuotes(app core.App) ([]SavedQuote, error) {
	records, err := app.FindRecordsByFilter(QuotesCollection, "1=1", "-updated", 0, 0)
	if err != nil {
		return nil, fmt.Errorf("list quotes: %w", err)
	}
	out := make([]SavedQuote, len(records))
	for i, r := range records {
		out[i] = savedQuoteFromRecord(r)
	}
	return out, nil
}

// LoadQuote reads a saved quote and its calculator state.
func LoadQuote(app core.App, id string) (SavedQuote, QuoteConfig, error) {
	r, err := app.FindRecordById(QuotesCollection, id)
	if err != nil {
		return SavedQuote{}, QuoteConfig{}, fmt.Errorf("find quote %s: %w", id, err)
	}

	cfg := DefaultQuoteConfig()
	if err := r.UnmarshalJSONField("calculator_state", &cfg); err != nil {
		return SavedQuote{}, QuoteConfig{}, fmt.Errorf("decode calculator state of %s: %w", id, err)
	}
	return savedQuoteFromRecord(r), cfg, nil
}

// DeleteQuote removes a saved quote.
func DeleteQuote(app core.App, id string) error {
	r, err := app.FindRecordById(QuotesCollection, id)
	if err != nil {
		return fmt.Errorf("find quote %s: %w", id, err)
	}
	if err := app.Delete(r); err != nil {
		return fmt.Errorf("delete quote %s: %w", id, err)
	}
	return nil
}
