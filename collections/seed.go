package collections

import (
	"fmt"
	"log"
	"time"

	"github.com/pocketbase/pocketbase"

	"ledquote/services"
)

// seedItems is a small but complete LED catalog: indoor and outdoor
// modules, matching cabinets, ready panels, control cards, power supplies
// and processors, with a mix of INR and USD pricing.
var seedItems = []services.CatalogItem{
	{Type: services.TypeModule, Brand: "Absen", Model: "A3 Pro", Vendor: "Absen India", Pitch: 3.91, Width: 250, Height: 250, Price: 1450, Carriage: 75, Currency: services.CurrencyINR, Indoor: true, Brightness: "900 nits", RefreshRate: "3840Hz", ScanRate: "1/16", GrayScale: "14 bit", Stock: 240},
	{Type: services.TypeModule, Brand: "Novastar", Model: "P2.5 HD", Vendor: "Shenzhen LED Co", Pitch: 2.5, Width: 320, Height: 160, Price: 14, Carriage: 1.5, Currency: services.CurrencyUSD, Indoor: true, Brightness: "800 nits", RefreshRate: "3840Hz", ScanRate: "1/32", GrayScale: "14 bit", Stock: 500},
	{Type: services.TypeModule, Brand: "Qiangli", Model: "P1.86", Vendor: "Shenzhen LED Co", Pitch: 1.86, Width: 320, Height: 160, Price: 22, Carriage: 1.5, Currency: services.CurrencyUSD, Indoor: true, Brightness: "600 nits", RefreshRate: "3840Hz", ScanRate: "1/43", GrayScale: "16 bit"},
	{Type: services.TypeModule, Brand: "Absen", Model: "O10 Outdoor", Vendor: "Absen India", Pitch: 10, Width: 320, Height: 160, Price: 2100, Carriage: 120, Currency: services.CurrencyINR, Indoor: false, Brightness: "6500 nits", RefreshRate: "1920Hz", ScanRate: "1/2", GrayScale: "14 bit", Stock: 120},
	{Type: services.TypeModule, Brand: "Absen", Model: "O6.67 Outdoor", Vendor: "Absen India", Pitch: 6.67, Width: 320, Height: 160, Price: 2650, Carriage: 120, Currency: services.CurrencyINR, Indoor: false, Brightness: "6000 nits", RefreshRate: "1920Hz", ScanRate: "1/6", GrayScale: "14 bit"},

	{Type: services.TypeCabinet, Brand: "Generic", Model: "Die-cast 500x500", Vendor: "Metalworks Pune", Width: 500, Height: 500, Price: 3200, Carriage: 250, Currency: services.CurrencyINR, Stock: 30},
	{Type: services.TypeCabinet, Brand: "Generic", Model: "Iron 640x480", Vendor: "Metalworks Pune", Width: 640, Height: 480, Price: 2800, Carriage: 250, Currency: services.CurrencyINR, Stock: 24},
	{Type: services.TypeCabinet, Brand: "Generic", Model: "Iron 960x960", Vendor: "Metalworks Pune", Width: 960, Height: 960, Price: 5400, Carriage: 400, Currency: services.CurrencyINR, Stock: 12},

	{Type: services.TypeReady, Brand: "Unilumin", Model: "UTV 1.8", Vendor: "Unilumin India", Pitch: 1.86, Width: 600, Height: 337.5, Price: 410, Carriage: 25, Currency: services.CurrencyUSD, Indoor: true, Brightness: "600 nits", RefreshRate: "3840Hz"},
	{Type: services.TypeReady, Brand: "Unilumin", Model: "UMini 4", Vendor: "Unilumin India", Pitch: 4, Width: 960, Height: 960, Price: 68000, Carriage: 1500, Currency: services.CurrencyINR, Indoor: false, Brightness: "5500 nits", RefreshRate: "3840Hz"},

	{Type: services.TypeCard, Brand: "Novastar", Model: "A5s Plus", Vendor: "Novastar India", Price: 1150, Carriage: 20, Currency: services.CurrencyINR, Stock: 60},
	{Type: services.TypeCard, Brand: "Colorlight", Model: "5A-75B", Vendor: "Colorlight", Price: 9, Carriage: 1, Currency: services.CurrencyUSD},

	{Type: services.TypePSU, Brand: "Meanwell", Model: "LRS-200-5", Vendor: "Meanwell Distributor", Price: 850, Carriage: 30, Currency: services.CurrencyINR, Stock: 80},
	{Type: services.TypePSU, Brand: "G-Energy", Model: "JPS300", Vendor: "Shenzhen LED Co", Price: 11, Carriage: 1, Currency: services.CurrencyUSD},

	{Type: services.TypeProcessor, Brand: "Novastar", Model: "VX600", Vendor: "Novastar India", Price: 1450, Carriage: 60, Currency: services.CurrencyUSD, Stock: 3},
	{Type: services.TypeProcessor, Brand: "Novastar", Model: "TB60", Vendor: "Novastar India", Price: 28500, Carriage: 500, Currency: services.CurrencyINR},
}

// Seed populates the inventory with a sample LED catalog and saves one
// example quote built from it. It is safe to call on every startup because
// it returns early if any inventory records already exist.
func Seed(app *pocketbase.PocketBase) error {
	existing, err := app.FindRecordsByFilter(services.InventoryCollection, "1=1", "", 1, 0)
	if err != nil {
		return fmt.Errorf("seed: could not query inventory: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: inventory collection is empty – inserting seed catalog …")

	ids := make(map[string]string, len(seedItems))
	for _, item := range seedItems {
		r, err := services.CreateInventoryItem(app, item, "")
		if err != nil {
			return fmt.Errorf("seed: create %s: %w", item.Label(), err)
		}
		ids[item.Model] = r.Id
	}

	cfg := services.DefaultQuoteConfig()
	cfg.Client = "Sunrise Hotels"
	cfg.Project = "Lobby Video Wall"
	cfg.SelectedPitch = "3.91"
	cfg.ModuleID = ids["A3 Pro"]
	cfg.CabinetID = ids["Die-cast 500x500"]
	cfg.CardID = ids["A5s Plus"]
	cfg.PSUID = ids["LRS-200-5"]
	cfg.ProcessorID = ids["VX600"]
	cfg.Extras[services.ExtraLabour] = services.Extra{Val: 15000, Type: services.ExtraAbsolute}
	cfg.Extras[services.ExtraBuffer] = services.Extra{Val: 3, Type: services.ExtraPercent}

	catalog, err := services.LoadCatalog(app)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	var finalAmount float64
	if res, ok := services.ComputeQuote(catalog, cfg, services.DefaultExchangeRate); ok {
		finalAmount = res.FinalPrice
	}
	if _, err := services.SaveQuote(app, "", cfg, finalAmount, time.Now()); err != nil {
		return fmt.Errorf("seed: save example quote: %w", err)
	}

	log.Printf("seed: inserted %d catalog items and 1 example quote\n", len(seedItems))
	return nil
}
