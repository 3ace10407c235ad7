package services

// PanelRef describes the module and cabinet a quote was built from. In ready
// mode both refer to the same ready unit.
type PanelRef struct {
	ID     string
	Brand  string
	Model  string
	Pitch  float64
	Width  float64
	Height float64
	Indoor bool
	Specs  DisplaySpecs
}

// Label returns "Brand Model".
func (p PanelRef) Label() string {
	return ItemBase{Brand: p.Brand, Model: p.Model}.Label()
}

// LineItem is one row of the bill of materials, priced in INR per screen.
type LineItem struct {
	ID           LineID
	Name         string
	Spec         string
	Qty          float64
	UnitPrice    float64
	Total        float64
	IsOverridden bool
}

// Cascade holds the cost → margin → sell figures of a quote.
type Cascade struct {
	CostPerScreen    float64
	TotalProjectCost float64
	SellPerScreen    float64
	TotalProjectSell float64
	MarginPerScreen  float64
	MarginTotal      float64
}

// MatrixRow is one row of the financial matrix.
type MatrixRow struct {
	PerSqFt float64
	PerUnit float64
	Total   float64
}

// FinancialMatrix breaks cost, margin and sell down per square foot, per
// screen and for the whole project.
type FinancialMatrix struct {
	Cost          MatrixRow
	Margin        MatrixRow
	Sell          MatrixRow
	AreaPerScreen float64
	AreaTotal     float64
}

// QuoteResult is everything derived from one calculator state.
type QuoteResult struct {
	Grid
	Cascade

	AssemblyMode AssemblyMode
	Unit         Unit
	ScreenQty    int
	Margin       float64

	Module       PanelRef
	Cabinet      PanelRef
	TotalModules int

	Items                []LineItem
	BaseCostPerScreen    float64
	ExtraAmounts         map[ExtraKey]float64
	TotalExtrasPerScreen float64

	// FinalPrice is the project sell total, the amount stored on save.
	FinalPrice float64
	Matrix     FinancialMatrix
}

// LandedCostINR returns price plus carriage converted to INR. USD items are
// multiplied by exchangeRate; a nil component costs nothing.
func LandedCostINR(c Component, exchangeRate float64) float64 {
	if c == nil {
		return 0
	}
	b := c.Base()
	landed := b.Landed()
	if b.Currency == CurrencyUSD {
		return landed * exchangeRate
	}
	return landed
}

// ComputeQuote derives the full quote for cfg against a catalog snapshot.
// It returns false when the selection is incomplete (no module and cabinet
// in assembled mode, no ready unit in ready mode) or the chosen cabinet has
// unusable dimensions. It has no side effects.
func ComputeQuote(cat Catalog, cfg QuoteConfig, exchangeRate float64) (QuoteResult, bool) {
	res := QuoteResult{
		AssemblyMode: cfg.AssemblyMode,
		Unit:         cfg.Unit,
		ScreenQty:    cfg.ScreenQty,
		Margin:       cfg.Margin,
	}

	var items []LineItem
	switch cfg.AssemblyMode {
	case AssemblyReady:
		ready, ok := cat.ReadyUnit(cfg.ReadyID)
		if !ok {
			return QuoteResult{}, false
		}
		grid, ok := FitGrid(cfg.TargetWidth, cfg.TargetHeight, cfg.Unit, ready.Width, ready.Height, cfg.SizingMode)
		if !ok {
			return QuoteResult{}, false
		}
		res.Grid = grid
		res.Module = readyRef(ready)
		res.Cabinet = res.Module
		res.TotalModules = grid.Cabinets()
		items = readyLines(ready, grid.Cabinets(), exchangeRate)

	default:
		module, ok := cat.Module(cfg.ModuleID)
		if !ok {
			return QuoteResult{}, false
		}
		cabinet, ok := cat.Cabinet(cfg.CabinetID)
		if !ok {
			return QuoteResult{}, false
		}
		grid, ok := FitGrid(cfg.TargetWidth, cfg.TargetHeight, cfg.Unit, cabinet.Width, cabinet.Height, cfg.SizingMode)
		if !ok {
			return QuoteResult{}, false
		}
		res.Grid = grid
		res.Module = moduleRef(module)
		res.Cabinet = cabinetRef(cabinet)

		var card, psu Component
		if c, ok := cat.Card(cfg.CardID); ok {
			card = c
		}
		if p, ok := cat.PSU(cfg.PSUID); ok {
			psu = p
		}
		res.TotalModules = ModulesPerCabinet(module, cabinet) * grid.Cabinets()
		items = assembledLines(module, cabinet, card, psu, res.TotalModules, grid.Cabinets(), exchangeRate)
	}

	if proc, ok := cat.Processor(cfg.ProcessorID); ok {
		items = append(items, newLine(LineProcessor, "Processor", proc.Brand, 1, LandedCostINR(proc, exchangeRate)))
	}

	res.Items = ApplyOverrides(items, cfg.Overrides)
	for _, it := range res.Items {
		res.BaseCostPerScreen += it.Total
	}

	res.ExtraAmounts, res.TotalExtrasPerScreen = ExtraCosts(cfg.Extras, res.BaseCostPerScreen)
	res.Cascade = ComputeCascade(res.BaseCostPerScreen+res.TotalExtrasPerScreen, cfg.Margin, cfg.ScreenQty)
	res.FinalPrice = res.TotalProjectSell
	res.Matrix = BuildMatrix(res.Cascade, res.AreaSqFt, cfg.ScreenQty)
	return res, true
}

// ModulesPerCabinet returns how many whole modules fit in one cabinet.
func ModulesPerCabinet(m Module, c Cabinet) int {
	if m.Width <= 0 || m.Height <= 0 {
		return 0
	}
	return int(c.Width/m.Width) * int(c.Height/m.Height)
}

func assembledLines(m Module, cab Cabinet, card, psu Component, totalModules, cabinets int, rate float64) []LineItem {
	perCab := float64(cabinets)
	return []LineItem{
		newLine(LineModules, "Modules", m.Label(), float64(totalModules), LandedCostINR(m, rate)),
		newLine(LineCabinets, "Cabinets", cab.Label(), perCab, LandedCostINR(cab, rate)),
		newLine(LineCards, "Cards", brandOrDash(card), perCab, LandedCostINR(card, rate)),
		newLine(LinePSU, "PSU", brandOrDash(psu), perCab, LandedCostINR(psu, rate)),
	}
}

func readyLines(r ReadyUnit, cabinets int, rate float64) []LineItem {
	return []LineItem{
		newLine(LineReady, "Ready Panels", r.Label(), float64(cabinets), LandedCostINR(r, rate)),
	}
}

func newLine(id LineID, name, spec string, qty, unitPrice float64) LineItem {
	return LineItem{
		ID:        id,
		Name:      name,
		Spec:      spec,
		Qty:       qty,
		UnitPrice: unitPrice,
		Total:     qty * unitPrice,
	}
}

func brandOrDash(c Component) string {
	if c == nil {
		return "-"
	}
	return c.Base().Brand
}

// ApplyOverrides returns a copy of items with any matching override applied.
// Each override field replaces the computed value only when set; the total
// is recomputed and the line is flagged.
func ApplyOverrides(items []LineItem, overrides Overrides) []LineItem {
	out := make([]LineItem, len(items))
	for i, it := range items {
		ov, ok := overrides[it.ID]
		if ok && !ov.IsZero() {
			if ov.Qty != nil {
				it.Qty = *ov.Qty
			}
			if ov.Rate != nil {
				it.UnitPrice = *ov.Rate
			}
			it.Total = it.Qty * it.UnitPrice
			it.IsOverridden = true
		}
		out[i] = it
	}
	return out
}

// ExtraCosts evaluates every extra-cost category against the base cost of
// one screen and returns the per-category amounts and their sum.
func ExtraCosts(extras Extras, baseCost float64) (map[ExtraKey]float64, float64) {
	amounts := make(map[ExtraKey]float64, len(ExtraKeys))
	var total float64
	for _, key := range ExtraKeys {
		amt := extras[key].Amount(baseCost)
		amounts[key] = amt
		total += amt
	}
	return amounts, total
}

// ComputeCascade applies margin to the per-screen cost and scales both by
// the number of screens.
func ComputeCascade(costPerScreen, margin float64, screenQty int) Cascade {
	qty := float64(screenQty)
	c := Cascade{
		CostPerScreen: costPerScreen,
		SellPerScreen: costPerScreen * (1 + margin/100),
	}
	c.TotalProjectCost = c.CostPerScreen * qty
	c.TotalProjectSell = c.SellPerScreen * qty
	c.MarginPerScreen = c.SellPerScreen - c.CostPerScreen
	c.MarginTotal = c.TotalProjectSell - c.TotalProjectCost
	return c
}

// BuildMatrix lays the cascade out per square foot, per screen and in total.
// A non-positive area yields zero per-square-foot figures.
func BuildMatrix(c Cascade, areaPerScreen float64, screenQty int) FinancialMatrix {
	perSqFt := func(v float64) float64 {
		if areaPerScreen <= 0 {
			return 0
		}
		return v / areaPerScreen
	}
	return FinancialMatrix{
		Cost:          MatrixRow{PerSqFt: perSqFt(c.CostPerScreen), PerUnit: c.CostPerScreen, Total: c.TotalProjectCost},
		Margin:        MatrixRow{PerSqFt: perSqFt(c.MarginPerScreen), PerUnit: c.MarginPerScreen, Total: c.MarginTotal},
		Sell:          MatrixRow{PerSqFt: perSqFt(c.SellPerScreen), PerUnit: c.SellPerScreen, Total: c.TotalProjectSell},
		AreaPerScreen: areaPerScreen,
		AreaTotal:     areaPerScreen * float64(screenQty),
	}
}

func moduleRef(m Module) PanelRef {
	return PanelRef{ID: m.ID, Brand: m.Brand, Model: m.Model, Pitch: m.Pitch, Width: m.Width, Height: m.Height, Indoor: m.Indoor, Specs: m.Specs}
}

func cabinetRef(c Cabinet) PanelRef {
	return PanelRef{ID: c.ID, Brand: c.Brand, Model: c.Model, Width: c.Width, Height: c.Height}
}

func readyRef(r ReadyUnit) PanelRef {
	return PanelRef{ID: r.ID, Brand: r.Brand, Model: r.Model, Pitch: r.Pitch, Width: r.Width, Height: r.Height, Indoor: r.Indoor, Specs: r.Specs}
}
