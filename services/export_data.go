package services

// ExportRow is one bill-of-materials line on an exported quote.
type ExportRow struct {
	Index      string
	Name       string
	Spec       string
	Qty        float64
	UnitPrice  float64
	Total      float64
	Overridden bool
}

// ExportData holds all data needed to print or export a quote.
type ExportData struct {
	Title        string
	QuoteNumber  string
	CreatedDate  string
	Client       string
	Project      string
	AssemblyMode AssemblyMode

	ScreenQty     int
	Cols          int
	Rows          int
	TotalCabinets int
	TotalModules  int
	WidthM        float64
	HeightM       float64
	Module        PanelRef
	Cabinet       PanelRef

	Items       []ExportRow
	BaseCost    float64
	Extras      []ExportExtra
	TotalExtras float64
	MarginPct   float64
	Matrix      FinancialMatrix
	GrandTotal  float64
	AmountWords string
}

// ExportExtra is one extra-cost category on an exported quote.
type ExportExtra struct {
	Label  string
	Amount float64
}

// NewExportData flattens a computed quote into export form. Title,
// quote number and date are filled by the caller.
func NewExportData(cfg QuoteConfig, res QuoteResult) ExportData {
	data := ExportData{
		Title:         "LED Video Wall Quotation",
		Client:        cfg.Client,
		Project:       cfg.Project,
		AssemblyMode:  res.AssemblyMode,
		ScreenQty:     res.ScreenQty,
		Cols:          res.Cols,
		Rows:          res.Rows,
		TotalCabinets: res.Cabinets(),
		TotalModules:  res.TotalModules,
		WidthM:        res.WidthM(),
		HeightM:       res.HeightM(),
		Module:        res.Module,
		Cabinet:       res.Cabinet,
		BaseCost:      res.BaseCostPerScreen,
		TotalExtras:   res.TotalExtrasPerScreen,
		MarginPct:     res.Margin,
		Matrix:        res.Matrix,
		GrandTotal:    res.FinalPrice,
		AmountWords:   AmountToWords(res.FinalPrice),
	}
	for i, it := range res.Items {
		data.Items = append(data.Items, ExportRow{
			Index:      FormatQty(float64(i + 1)),
			Name:       it.Name,
			Spec:       it.Spec,
			Qty:        it.Qty,
			UnitPrice:  it.UnitPrice,
			Total:      it.Total,
			Overridden: it.IsOverridden,
		})
	}
	for _, key := range ExtraKeys {
		amt := res.ExtraAmounts[key]
		if amt == 0 {
			continue
		}
		data.Extras = append(data.Extras, ExportExtra{Label: key.Label(), Amount: amt})
	}
	return data
}
