package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase/core"
	"github.com/spf13/cast"
)

// SettingExchangeRate is the settings key holding INR per USD.
const SettingExchangeRate = "exchange_rate"

// GetSetting returns the stored value for key and whether it exists.
func GetSetting(app core.App, key string) (string, bool) {
	r, err := app.FindFirstRecordByFilter(SettingsCollection, "key = {:key}", map[string]any{"key": key})
	if err != nil {
		return "", false
	}
	return r.GetString("value"), true
}

// SetSetting creates or updates the value for key.
func SetSetting(app core.App, key, value string) error {
	r, err := app.FindFirstRecordByFilter(SettingsCollection, "key = {:key}", map[string]any{"key": key})
	if err != nil {
		col, err := app.FindCollectionByNameOrId(SettingsCollection)
		if err != nil {
			return fmt.Errorf("find settings collection: %w", err)
		}
		r = core.NewRecord(col)
		r.Set("key", key)
	}
	r.Set("value", value)
	if err := app.Save(r); err != nil {
		return fmt.Errorf("save setting %s: %w", key, err)
	}
	return nil
}

// GetExchangeRate returns the configured exchange rate, or fallback when none
// is stored. A stored value is only coerced, never validated.
func GetExchangeRate(app core.App, fallback float64) float64 {
	v, ok := GetSetting(app, SettingExchangeRate)
	if !ok {
		return fallback
	}
	return ToNumber(v)
}

// SetExchangeRate stores rate after coercion and returns the stored value.
func SetExchangeRate(app core.App, raw any) (float64, error) {
	rate := ToNumber(raw)
	if err := SetSetting(app, SettingExchangeRate, cast.ToString(rate)); err != nil {
		return 0, err
	}
	return rate, nil
}
