package services

// Option is a value/label pair for select controls.
type Option struct {
	Value string
	Label string
}

// UnitOptions lists the target size units.
var UnitOptions = []Option{
	{string(UnitMeters), "Meters"},
	{string(UnitFeet), "Feet"},
}

// SizingOptions lists the grid rounding policies.
var SizingOptions = []Option{
	{string(SizingNearest), "Nearest"},
	{string(SizingUp), "Round Up"},
	{string(SizingDown), "Round Down"},
}

// AssemblyOptions lists the build modes.
var AssemblyOptions = []Option{
	{string(AssemblyAssembled), "Module + Cabinet"},
	{string(AssemblyReady), "Ready Unit"},
}

// CurrencyOptions lists the purchase currencies.
var CurrencyOptions = []Option{
	{string(CurrencyINR), "INR (₹)"},
	{string(CurrencyUSD), "USD ($)"},
}

// EnvironmentOptions lists the indoor/outdoor choices.
var EnvironmentOptions = []Option{
	{"true", "Indoor"},
	{"false", "Outdoor"},
}

// ItemTypeOptions returns the catalog item types as select options.
func ItemTypeOptions() []Option {
	opts := make([]Option, len(ItemTypes))
	for i, t := range ItemTypes {
		opts[i] = Option{Value: string(t), Label: t.Label()}
	}
	return opts
}
