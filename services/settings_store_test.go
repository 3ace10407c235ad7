package services_test

import (
	"testing"

	"ledquote/services"
	"ledquote/testhelpers"
)

func TestGetExchangeRate_Fallback(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if got := services.GetExchangeRate(app, 83); got != 83 {
		t.Errorf("GetExchangeRate() = %v, want fallback 83", got)
	}
}

func TestSetExchangeRate_Coerces(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	tests := []struct {
		raw  any
		want float64
	}{
		{"84.25", 84.25},
		{" 90 ", 90},
		{"abc", 0},
		{86.5, 86.5},
	}
	for _, tt := range tests {
		got, err := services.SetExchangeRate(app, tt.raw)
		if err != nil {
			t.Fatalf("SetExchangeRate(%v) error: %v", tt.raw, err)
		}
		if got != tt.want {
			t.Errorf("SetExchangeRate(%v) = %v, want %v", tt.raw, got, tt.want)
		}
		if stored := services.GetExchangeRate(app, -1); stored != tt.want {
			t.Errorf("stored rate = %v, want %v", stored, tt.want)
		}
	}

	col, _ := app.FindCollectionByNameOrId(services.SettingsCollection)
	all, _ := app.FindAllRecords(col)
	if len(all) != 1 {
		t.Errorf("expected a single settings record, got %d", len(all))
	}
}

func TestGetSetting_Missing(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if _, ok := services.GetSetting(app, "nope"); ok {
		t.Error("expected missing setting")
	}
	if err := services.SetSetting(app, "company", "Brightwall"); err != nil {
		t.Fatalf("SetSetting() error: %v", err)
	}
	if v, ok := services.GetSetting(app, "company"); !ok || v != "Brightwall" {
		t.Errorf("GetSetting() = %q, %v", v, ok)
	}
}
