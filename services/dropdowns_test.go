package services

import "testing"

func TestSelectOptions_NotEmpty(t *testing.T) {
	groups := map[string][]Option{
		"units":       UnitOptions,
		"sizing":      SizingOptions,
		"assembly":    AssemblyOptions,
		"currency":    CurrencyOptions,
		"environment": EnvironmentOptions,
		"item types":  ItemTypeOptions(),
	}
	for name, opts := range groups {
		if len(opts) == 0 {
			t.Errorf("%s options should not be empty", name)
		}
		for _, o := range opts {
			if o.Value == "" || o.Label == "" {
				t.Errorf("%s has an empty option: %+v", name, o)
			}
		}
	}
}

func TestSelectOptions_ParseBack(t *testing.T) {
	for _, o := range UnitOptions {
		if string(ParseUnit(o.Value)) != o.Value {
			t.Errorf("unit option %q does not parse back", o.Value)
		}
	}
	for _, o := range SizingOptions {
		if string(ParseSizingMode(o.Value)) != o.Value {
			t.Errorf("sizing option %q does not parse back", o.Value)
		}
	}
	for _, o := range AssemblyOptions {
		if string(ParseAssemblyMode(o.Value)) != o.Value {
			t.Errorf("assembly option %q does not parse back", o.Value)
		}
	}
	for _, o := range ItemTypeOptions() {
		if _, ok := ParseItemType(o.Value); !ok {
			t.Errorf("item type option %q does not parse back", o.Value)
		}
	}
}
