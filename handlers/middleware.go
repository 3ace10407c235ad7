package handlers

import (
	"context"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"ledquote/services"
)

type contextKey string

const ExchangeRateKey contextKey = "exchangeRate"

// GetExchangeRate extracts the exchange rate stored by SettingsMiddleware.
// The second value is false when the request did not pass through it.
func GetExchangeRate(r *http.Request) (float64, bool) {
	val, ok := r.Context().Value(ExchangeRateKey).(float64)
	return val, ok
}

// SettingsMiddleware reads the exchange rate once per request from the
// settings collection (fallback when unset) and stores it in the request
// context so every handler prices against the same rate.
func SettingsMiddleware(app *pocketbase.PocketBase, fallback float64) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		rate := services.GetExchangeRate(app, fallback)
		ctx := context.WithValue(e.Request.Context(), ExchangeRateKey, rate)
		e.Request = e.Request.WithContext(ctx)
		return e.Next()
	}
}

// exchangeRate returns the request's exchange rate, reading the settings
// directly when the middleware did not run.
func exchangeRate(e *core.RequestEvent) float64 {
	if rate, ok := GetExchangeRate(e.Request); ok {
		return rate
	}
	return services.GetExchangeRate(e.App, services.DefaultExchangeRate)
}
