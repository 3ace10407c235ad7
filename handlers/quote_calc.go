package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"ledquote/services"
	"ledquote/templates"
)

// buildCalculatorData derives the candidate lists for cfg and computes the
// quote against the catalog snapshot.
func buildCalculatorData(cat services.Catalog, cfg services.QuoteConfig, rate float64) templates.CalculatorData {
	data := templates.CalculatorData{
		Config:       cfg,
		ExchangeRate: rate,
		Pitches:      cat.DistinctPitches(cfg.Indoor),
		Modules:      cat.ModulesByPitch(cfg.Indoor, cfg.SelectedPitch),
		ReadyUnits:   cat.ReadyUnits(cfg.Indoor),
		Cards:        cat.Cards,
		PSUs:         cat.PSUs,
		Processors:   cat.Processors,
	}

	var selected *services.Module
	if m, ok := cat.Module(cfg.ModuleID); ok {
		selected = &m
	}
	data.Cabinets = cat.CabinetCandidates(selected)

	if res, ok := services.ComputeQuote(cat, cfg, rate); ok {
		data.Result = &res
	}
	return data
}

// loadCatalog reads the catalog, logging and returning an empty one on
// failure so the calculator still renders.
func loadCatalog(app core.App, logPrefix string) services.Catalog {
	cat, err := services.LoadCatalog(app)
	if err != nil {
		log.Printf("%s: could not load catalog: %v", logPrefix, err)
		return services.NewCatalog(nil)
	}
	return cat
}

// configFromForm decodes the posted calculator form.
func configFromForm(e *core.RequestEvent) (services.QuoteConfig, error) {
	if err := e.Request.ParseForm(); err != nil {
		return services.QuoteConfig{}, err
	}
	return services.DecodeQuoteConfig(services.StateFromForm(e.Request.PostForm)), nil
}

// HandleQuoteNew renders an empty calculator.
// Route: GET /quotes/new
func HandleQuoteNew(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rate := exchangeRate(e)
		cat := loadCatalog(app, "quote_new")

		data := buildCalculatorData(cat, services.DefaultQuoteConfig(), rate)
		return render(e, templates.CalculatorContent(data), templates.CalculatorPage(data))
	}
}

// HandleQuoteCalc recomputes the quote from the posted form and returns the
// calculator partial.
// Route: POST /quotes/calc
func HandleQuoteCalc(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		cfg, err := configFromForm(e)
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		rate := exchangeRate(e)
		cat := loadCatalog(app, "quote_calc")

		data := buildCalculatorData(cat, cfg, rate)
		data.QuoteID = e.Request.FormValue("quote_id")
		data.QuoteNumber = e.Request.FormValue("quote_number")
		return templates.CalculatorContent(data).Render(e.Request.Context(), e.Response)
	}
}
