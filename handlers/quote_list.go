package handlers

import (
	"log"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"ledquote/services"
	"ledquote/templates"
)

// Route: GET /quotes
func HandleQuoteList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotes, err := services.ListQuotes(app)
		if err != nil {
			log.Printf("quote_list: could not query quotes: %v", err)
			quotes = nil
		}

		data := templates.QuoteListData{
			Quotes: quotes,
			Now:    time.Now(),
		}
		return render(e, templates.QuoteListContent(data), templates.QuoteListPage(data))
	}
}
