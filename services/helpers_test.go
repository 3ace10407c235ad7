package services

import "bytes"

// bytesReader wraps a byte slice in a bytes.Reader for use with excelize.OpenReader.
func bytesReader(b []byte) *bytes.Reader {
	return bytes.NewReader(b)
}

func ptr(v float64) *float64 { return &v }

// testCatalogItems is a small catalog covering every item type.
func testCatalogItems() []CatalogItem {
	return []CatalogItem{
		{ID: "mod-p391", Type: TypeModule, Brand: "Absen", Model: "A3", Pitch: 3.91, Width: 250, Height: 250, Price: 1000, Carriage: 100, Currency: CurrencyINR, Indoor: true, Brightness: "900 nits"},
		{ID: "mod-p25", Type: TypeModule, Brand: "Novastar", Model: "N25", Pitch: 2.5, Width: 320, Height: 160, Price: 10, Carriage: 2, Currency: CurrencyUSD, Indoor: true},
		{ID: "mod-p25b", Type: TypeModule, Brand: "Qiangli", Model: "Q25", Pitch: 2.5, Width: 320, Height: 160, Price: 700, Currency: CurrencyINR, Indoor: true},
		{ID: "mod-p10", Type: TypeModule, Brand: "Absen", Model: "O10", Pitch: 10, Width: 320, Height: 160, Price: 1500, Currency: CurrencyINR, Indoor: false},
		{ID: "cab-500", Type: TypeCabinet, Brand: "Generic", Model: "C500", Width: 500, Height: 500, Price: 1000, Carriage: 100, Currency: CurrencyINR},
		{ID: "cab-640", Type: TypeCabinet, Brand: "Generic", Model: "C640", Width: 640, Height: 480, Price: 5000, Currency: CurrencyINR},
		{ID: "cab-odd", Type: TypeCabinet, Brand: "Generic", Model: "C-ODD", Width: 510, Height: 490, Price: 900, Currency: CurrencyINR},
		{ID: "ready-186", Type: TypeReady, Brand: "Unilumin", Model: "UTV", Pitch: 1.86, Width: 600, Height: 337.5, Price: 300, Carriage: 20, Currency: CurrencyUSD, Indoor: true},
		{ID: "ready-out", Type: TypeReady, Brand: "Unilumin", Model: "UMini", Pitch: 6, Width: 960, Height: 960, Price: 90000, Currency: CurrencyINR, Indoor: false},
		{ID: "card-1", Type: TypeCard, Brand: "Novastar", Model: "A5s", Price: 1200, Currency: CurrencyINR},
		{ID: "psu-1", Type: TypePSU, Brand: "Meanwell", Model: "200W", Price: 800, Currency: CurrencyINR},
		{ID: "proc-1", Type: TypeProcessor, Brand: "Novastar", Model: "VX4S", Price: 450, Carriage: 50, Currency: CurrencyUSD},
		{ID: "junk", Type: ItemType("bracket"), Brand: "X", Model: "Y"},
	}
}

func testCatalog() Catalog {
	return NewCatalog(testCatalogItems())
}

// assembledConfig selects the 250 mm module on the 500 mm cabinet at 3 × 2 m.
func assembledConfig() QuoteConfig {
	cfg := DefaultQuoteConfig()
	cfg.SelectedPitch = "3.91"
	cfg.ModuleID = "mod-p391"
	cfg.CabinetID = "cab-500"
	return cfg
}
