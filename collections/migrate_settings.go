package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/spf13/cast"

	"ledquote/services"
)

// MigrateDefaultSettings stores the default exchange rate when none exists
// yet. Safe to call on every startup.
func MigrateDefaultSettings(app *pocketbase.PocketBase, defaultRate float64) error {
	if _, ok := services.GetSetting(app, services.SettingExchangeRate); ok {
		return nil
	}
	if err := services.SetSetting(app, services.SettingExchangeRate, cast.ToString(defaultRate)); err != nil {
		return fmt.Errorf("migrate_settings: %w", err)
	}
	log.Printf("migrate_settings: exchange rate defaulted to %v\n", defaultRate)
	return nil
}
