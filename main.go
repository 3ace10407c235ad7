package main

import (
	"log"
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"ledquote/collections"
	"ledquote/config"
	"ledquote/handlers"
)

func main() {
	cfg := config.Load()

	app := pocketbase.New()
	if cfg.DataDir != "" {
		app = pocketbase.NewWithConfig(pocketbase.Config{DefaultDataDir: cfg.DataDir})
	}

	app.RootCmd.AddCommand(newQuoteCmd(cfg.ExchangeRate))

	// Create collections, backfill and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.MigrateDefaultSettings(app, cfg.ExchangeRate); err != nil {
			log.Printf("Warning: settings migration failed: %v", err)
		}
		if err := collections.MigrateInitialStockTransactions(app); err != nil {
			log.Printf("Warning: stock migration failed: %v", err)
		}
		if cfg.Seed {
			if err := collections.Seed(app); err != nil {
				log.Printf("Warning: seed data failed: %v", err)
			}
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// Resolve the exchange rate once per request
		se.Router.BindFunc(handlers.SettingsMiddleware(app, cfg.ExchangeRate))

		// ── Quote calculator ─────────────────────────────────────
		se.Router.GET("/quotes/new", handlers.HandleQuoteNew(app))
		se.Router.POST("/quotes/calc", handlers.HandleQuoteCalc(app))

		// ── Saved quotes ─────────────────────────────────────────
		se.Router.GET("/quotes", handlers.HandleQuoteList(app))
		se.Router.POST("/quotes", handlers.HandleQuoteSave(app))
		se.Router.GET("/quotes/{id}/edit", handlers.HandleQuoteEdit(app))
		se.Router.DELETE("/quotes/{id}", handlers.HandleQuoteDelete(app))

		// ── Quote export ─────────────────────────────────────────
		se.Router.GET("/quotes/{id}/export/pdf", handlers.HandleQuoteExportPDF(app))
		se.Router.GET("/quotes/{id}/export/excel", handlers.HandleQuoteExportExcel(app))

		// ── Inventory ────────────────────────────────────────────
		se.Router.GET("/inventory", handlers.HandleInventoryList(app))
		se.Router.GET("/inventory/new", handlers.HandleInventoryCreate(app))
		se.Router.POST("/inventory/new", handlers.HandleInventorySave(app))

		// Import (must be before /inventory/{id}/* so "import" is not taken as an ID)
		se.Router.POST("/inventory/import", handlers.HandleInventoryImport(app))
		se.Router.GET("/inventory/import/template", handlers.HandleInventoryImportTemplate(app))
		se.Router.POST("/inventory/import/errors", handlers.HandleInventoryImportErrors(app))

		se.Router.GET("/inventory/{id}/edit", handlers.HandleInventoryEdit(app))
		se.Router.POST("/inventory/{id}/edit", handlers.HandleInventoryUpdate(app))
		se.Router.DELETE("/inventory/{id}", handlers.HandleInventoryDelete(app))

		// ── Stock ledger ─────────────────────────────────────────
		se.Router.POST("/inventory/{id}/stock", handlers.HandleStockUpdate(app))
		se.Router.GET("/inventory/{id}/history", handlers.HandleStockHistory(app))

		// ── Settings ─────────────────────────────────────────────
		se.Router.GET("/settings", handlers.HandleSettings(app))
		se.Router.POST("/settings", handlers.HandleSettingsSave(app))

		// Redirect home to the calculator
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/quotes/new")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
