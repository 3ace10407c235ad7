package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"ledquote/services"
	"ledquote/templates"
)

// Route: GET /settings
func HandleSettings(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		data := templates.SettingsData{ExchangeRate: exchangeRate(e)}
		return render(e, templates.SettingsContent(data), templates.SettingsPage(data))
	}
}

// HandleSettingsSave stores the exchange rate. The value is coerced, so
// anything unparseable is saved as 0.
// Route: POST /settings
func HandleSettingsSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		rate, err := services.SetExchangeRate(app, e.Request.FormValue("exchange_rate"))
		if err != nil {
			log.Printf("settings: %v", err)
			return ErrorToast(e, http.StatusInternalServerError, "Failed to save settings")
		}

		log.Printf("settings: exchange rate set to %v\n", rate)
		SetToast(e, ToastSuccess, "Settings saved")

		data := templates.SettingsData{ExchangeRate: rate, Saved: true}
		return render(e, templates.SettingsContent(data), templates.SettingsPage(data))
	}
}
