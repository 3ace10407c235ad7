package templates

type SettingsData struct {
	ExchangeRate float64
	Saved        bool
}
