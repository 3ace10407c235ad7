package services

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultQuoteConfig(t *testing.T) {
	cfg := DefaultQuoteConfig()

	assert.Equal(t, 1, cfg.ScreenQty)
	assert.Equal(t, 3.0, cfg.TargetWidth)
	assert.Equal(t, 2.0, cfg.TargetHeight)
	assert.Equal(t, UnitMeters, cfg.Unit)
	assert.True(t, cfg.Indoor)
	assert.Equal(t, AssemblyAssembled, cfg.AssemblyMode)
	assert.Equal(t, SizingNearest, cfg.SizingMode)
	assert.Equal(t, 20.0, cfg.Margin)
	assert.Equal(t, ExtraPercent, cfg.Extras[ExtraBuffer].Type)
	assert.Equal(t, ExtraAbsolute, cfg.Extras[ExtraLabour].Type)
	assert.Empty(t, cfg.Overrides)
}

func TestDecodeQuoteConfig_SavedState(t *testing.T) {
	raw := `{
		"client": "Acme",
		"project": "Lobby",
		"screenQty": "2",
		"targetWidth": 4.5,
		"targetHeight": "2.25",
		"unit": "ft",
		"selectedIndoor": "false",
		"assemblyMode": "ready",
		"selectedPitch": "3.91",
		"selectedModuleId": "m1",
		"selectedCabinetId": "c1",
		"selectedCardId": "k1",
		"selectedPSUId": "p1",
		"selectedProcId": "x1",
		"readyId": "r1",
		"sizingMode": "up",
		"margin": "15",
		"extras": {
			"labour": {"val": "1000", "type": "abs"},
			"buffer": {"val": 5, "type": "pct"}
		},
		"overrides": {
			"modules": {"qty": "10", "rate": ""},
			"cabinets": {"qty": "", "rate": ""},
			"bogus": {"qty": 1}
		}
	}`

	var cfg QuoteConfig
	require.NoError(t, json.Unmarshal([]byte(raw), &cfg))

	assert.Equal(t, "Acme", cfg.Client)
	assert.Equal(t, 2, cfg.ScreenQty)
	assert.Equal(t, 4.5, cfg.TargetWidth)
	assert.Equal(t, 2.25, cfg.TargetHeight)
	assert.Equal(t, UnitFeet, cfg.Unit)
	assert.False(t, cfg.Indoor)
	assert.Equal(t, AssemblyReady, cfg.AssemblyMode)
	assert.Equal(t, "x1", cfg.ProcessorID)
	assert.Equal(t, "r1", cfg.ReadyID)
	assert.Equal(t, SizingUp, cfg.SizingMode)
	assert.Equal(t, 15.0, cfg.Margin)

	assert.Equal(t, Extra{Val: 1000, Type: ExtraAbsolute}, cfg.Extras[ExtraLabour])
	assert.Equal(t, Extra{Val: 5, Type: ExtraPercent}, cfg.Extras[ExtraBuffer])
	assert.Equal(t, Extra{Type: ExtraAbsolute}, cfg.Extras[ExtraTransport])

	require.Len(t, cfg.Overrides, 1)
	ov := cfg.Overrides[LineModules]
	require.NotNil(t, ov.Qty)
	assert.Equal(t, 10.0, *ov.Qty)
	assert.Nil(t, ov.Rate)
}

func TestDecodeQuoteConfig_MalformedNumbers(t *testing.T) {
	cfg := DecodeQuoteConfig(map[string]any{
		"screenQty":   "many",
		"targetWidth": "",
		"margin":      "twenty",
		"extras":      map[string]any{"labour": map[string]any{"val": "n/a"}},
	})

	assert.Equal(t, 0, cfg.ScreenQty)
	assert.Zero(t, cfg.TargetWidth)
	assert.Zero(t, cfg.Margin)
	assert.Zero(t, cfg.Extras[ExtraLabour].Val)
	// Untouched fields keep their defaults.
	assert.Equal(t, 2.0, cfg.TargetHeight)
}

func TestDecodeQuoteConfig_Nil(t *testing.T) {
	assert.Equal(t, DefaultQuoteConfig().State(), DecodeQuoteConfig(nil).State())
}

func TestQuoteConfig_JSONRoundTrip(t *testing.T) {
	cfg := assembledConfig()
	cfg.Client = "Acme"
	cfg.Indoor = false
	cfg.Extras[ExtraStructure] = Extra{Val: 12.5, Type: ExtraPercent}
	cfg = cfg.WithOverride(LineProcessor, Override{Rate: ptr(42000)})

	data, err := json.Marshal(cfg)
	require.NoError(t, err)

	var state map[string]any
	require.NoError(t, json.Unmarshal(data, &state))
	assert.Equal(t, "false", state["selectedIndoor"])
	assert.Equal(t, "mod-p391", state["selectedModuleId"])

	var back QuoteConfig
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, cfg.State(), back.State())
}

func TestQuoteConfig_WithOverrideCopies(t *testing.T) {
	cfg := DefaultQuoteConfig()
	next := cfg.WithOverride(LineCards, Override{Qty: ptr(3)})

	assert.Empty(t, cfg.Overrides)
	assert.Len(t, next.Overrides, 1)

	cleared := next.WithOverride(LineCards, Override{})
	assert.Empty(t, cleared.Overrides)
	assert.Len(t, next.Overrides, 1)
}

func TestQuoteConfig_Clone(t *testing.T) {
	cfg := assembledConfig()
	cfg.Client = "Acme"
	cfg.Project = "Lobby"
	cfg = cfg.WithOverride(LineModules, Override{Qty: ptr(5)})

	clone := cfg.Clone()
	assert.Equal(t, "Acme (Copy)", clone.Client)
	assert.Equal(t, "Lobby (Copy)", clone.Project)
	assert.Equal(t, cfg.ModuleID, clone.ModuleID)

	clone.Extras[ExtraLabour] = Extra{Val: 99}
	delete(clone.Overrides, LineModules)
	assert.Zero(t, cfg.Extras[ExtraLabour].Val)
	assert.Len(t, cfg.Overrides, 1)
}

func TestStateFromForm(t *testing.T) {
	form := url.Values{}
	form.Set("client", "Acme")
	form.Set("selectedIndoor", "true")
	form.Set("screenQty", "3")
	form.Set(ExtraFieldName(ExtraLabour, "val"), "1500")
	form.Set(ExtraFieldName(ExtraLabour, "type"), "abs")
	form.Set(ExtraFieldName(ExtraBuffer, "val"), "8")
	form.Set(OverrideFieldName(LineCabinets, "qty"), "12")
	form.Set(OverrideFieldName(LineCabinets, "rate"), "")
	form.Add("margin", "10")
	form.Add("margin", "25")
	form.Set("a.b", "ignored")
	form.Set("other.x.y", "ignored")

	cfg := DecodeQuoteConfig(StateFromForm(form))

	assert.Equal(t, "Acme", cfg.Client)
	assert.Equal(t, 3, cfg.ScreenQty)
	assert.Equal(t, 25.0, cfg.Margin)
	assert.Equal(t, Extra{Val: 1500, Type: ExtraAbsolute}, cfg.Extras[ExtraLabour])
	assert.Equal(t, Extra{Val: 8, Type: ExtraPercent}, cfg.Extras[ExtraBuffer])

	ov := cfg.Overrides[LineCabinets]
	require.NotNil(t, ov.Qty)
	assert.Equal(t, 12.0, *ov.Qty)
	assert.Nil(t, ov.Rate)
}

func TestParseLineID(t *testing.T) {
	for _, id := range LineIDs {
		got, ok := ParseLineID(string(id))
		assert.True(t, ok)
		assert.Equal(t, id, got)
	}
	_, ok := ParseLineID("brackets")
	assert.False(t, ok)
}

func TestExtraAmount(t *testing.T) {
	assert.Equal(t, 250.0, Extra{Val: 250, Type: ExtraAbsolute}.Amount(10000))
	assert.Equal(t, 1000.0, Extra{Val: 10, Type: ExtraPercent}.Amount(10000))
	assert.Zero(t, Extra{}.Amount(10000))
}
