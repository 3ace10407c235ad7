package templates

import (
	"github.com/spf13/cast"

	"ledquote/services"
)

// CalculatorData is everything the calculator view needs: the current
// state, the candidate lists derived from the catalog and the computed
// result (nil when the selection is incomplete).
type CalculatorData struct {
	QuoteID      string
	QuoteNumber  string
	Config       services.QuoteConfig
	ExchangeRate float64

	Pitches    []float64
	Modules    []services.Module
	Cabinets   []services.Cabinet
	ReadyUnits []services.ReadyUnit
	Cards      []services.Card
	PSUs       []services.PSU
	Processors []services.Processor

	Result *services.QuoteResult
}

func calculatorTitle(data CalculatorData) string {
	if data.QuoteNumber != "" {
		return data.QuoteNumber
	}
	return "New Quote"
}

var extraTypeOptions = []services.Option{
	{Value: string(services.ExtraAbsolute), Label: "₹"},
	{Value: string(services.ExtraPercent), Label: "%"},
}

func gridLabel(res *services.QuoteResult) string {
	return cast.ToString(res.Cols) + " × " + cast.ToString(res.Rows)
}

func sizeLabel(res *services.QuoteResult) string {
	return services.FormatLength(res.WidthMM, res.Unit) + " × " + services.FormatLength(res.HeightMM, res.Unit)
}

func panelLabel(res *services.QuoteResult) string {
	return res.Module.Label() + " P" + services.FormatPitch(res.Module.Pitch)
}

// overrideValue is the input value of an override; empty when unset.
func overrideValue(v *float64) string {
	if v == nil {
		return ""
	}
	return cast.ToString(*v)
}

func pitchOptions(pitches []float64) []services.Option {
	opts := make([]services.Option, len(pitches))
	for i, p := range pitches {
		v := services.FormatPitch(p)
		opts[i] = services.Option{Value: v, Label: "P" + v}
	}
	return opts
}

func moduleOptions(mods []services.Module) []services.Option {
	opts := make([]services.Option, len(mods))
	for i, m := range mods {
		opts[i] = services.Option{
			Value: m.ID,
			Label: m.Label() + " (" + cast.ToString(m.Width) + "×" + cast.ToString(m.Height) + ")",
		}
	}
	return opts
}

func readyOptions(units []services.ReadyUnit) []services.Option {
	opts := make([]services.Option, len(units))
	for i, r := range units {
		opts[i] = services.Option{
			Value: r.ID,
			Label: r.Label() + " P" + services.FormatPitch(r.Pitch),
		}
	}
	return opts
}

func componentOptions[T services.Component](items []T) []services.Option {
	opts := make([]services.Option, len(items))
	for i, it := range items {
		b := it.Base()
		opts[i] = services.Option{
			Value: b.ID,
			Label: b.Label() + " · " + services.FormatMoney(b.Price, b.Currency),
		}
	}
	return opts
}
