package services

import (
	"encoding/json"
	"strings"
)

// AssemblyMode selects between separately sourced module+cabinet builds and
// pre-assembled ready panels.
type AssemblyMode string

const (
	AssemblyAssembled AssemblyMode = "assembled"
	AssemblyReady     AssemblyMode = "ready"
)

// ParseAssemblyMode maps s to an assembly mode, defaulting to assembled.
func ParseAssemblyMode(s string) AssemblyMode {
	if strings.EqualFold(strings.TrimSpace(s), string(AssemblyReady)) {
		return AssemblyReady
	}
	return AssemblyAssembled
}

// ExtraKey names one of the project-level additive cost categories.
type ExtraKey string

const (
	ExtraLabour    ExtraKey = "labour"
	ExtraTransport ExtraKey = "transport"
	ExtraStructure ExtraKey = "structure"
	ExtraBuffer    ExtraKey = "buffer"
)

// ExtraKeys lists the extra-cost categories in display order.
var ExtraKeys = []ExtraKey{ExtraLabour, ExtraTransport, ExtraStructure, ExtraBuffer}

// Label returns the display label of the extra-cost category.
func (k ExtraKey) Label() string {
	switch k {
	case ExtraLabour:
		return "Labour Cost"
	case ExtraTransport:
		return "Transport"
	case ExtraStructure:
		return "Structure"
	case ExtraBuffer:
		return "Buffer/Misc"
	}
	return string(k)
}

// ExtraType says whether an extra is an absolute amount or a percentage of
// the base cost.
type ExtraType string

const (
	ExtraAbsolute ExtraType = "abs"
	ExtraPercent  ExtraType = "pct"
)

// ParseExtraType maps s to an extra type, defaulting to absolute.
func ParseExtraType(s string) ExtraType {
	if strings.EqualFold(strings.TrimSpace(s), string(ExtraPercent)) {
		return ExtraPercent
	}
	return ExtraAbsolute
}

// Extra is a single additive cost.
type Extra struct {
	Val  float64
	Type ExtraType
}

// Amount returns the INR value of the extra for one screen.
func (e Extra) Amount(baseCost float64) float64 {
	if e.Type == ExtraPercent {
		return baseCost * (e.Val / 100)
	}
	return e.Val
}

// Extras maps each category to its rule. Missing categories count as zero.
type Extras map[ExtraKey]Extra

// LineID identifies a bill-of-materials line. The set is closed.
type LineID string

const (
	LineModules   LineID = "modules"
	LineCabinets  LineID = "cabinets"
	LineCards     LineID = "cards"
	LinePSU       LineID = "psu"
	LineReady     LineID = "ready"
	LineProcessor LineID = "processor"
)

// LineIDs lists every line id.
var LineIDs = []LineID{LineModules, LineCabinets, LineCards, LinePSU, LineReady, LineProcessor}

// ParseLineID returns the line id for s and whether it is one of LineIDs.
func ParseLineID(s string) (LineID, bool) {
	id := LineID(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range LineIDs {
		if id == known {
			return id, true
		}
	}
	return "", false
}

// Override replaces the computed quantity and/or unit rate of a line.
// A nil field keeps the computed value.
type Override struct {
	Qty  *float64
	Rate *float64
}

// IsZero reports whether the override changes nothing.
func (o Override) IsZero() bool {
	return o.Qty == nil && o.Rate == nil
}

// Overrides holds the manual overrides, keyed by line.
type Overrides map[LineID]Override

// QuoteConfig is the full input state of the calculator.
type QuoteConfig struct {
	Client        string
	Project       string
	ScreenQty     int
	TargetWidth   float64
	TargetHeight  float64
	Unit          Unit
	Indoor        bool
	AssemblyMode  AssemblyMode
	SelectedPitch string
	ModuleID      string
	CabinetID     string
	CardID        string
	PSUID         string
	ProcessorID   string
	ReadyID       string
	SizingMode    SizingMode
	Margin        float64
	Extras        Extras
	Overrides     Overrides
}

// DefaultQuoteConfig returns the state a fresh calculator starts with.
func DefaultQuoteConfig() QuoteConfig {
	return QuoteConfig{
		ScreenQty:    1,
		TargetWidth:  3,
		TargetHeight: 2,
		Unit:         UnitMeters,
		Indoor:       true,
		AssemblyMode: AssemblyAssembled,
		SizingMode:   SizingNearest,
		Margin:       20,
		Extras: Extras{
			ExtraLabour:    {Type: ExtraAbsolute},
			ExtraTransport: {Type: ExtraAbsolute},
			ExtraStructure: {Type: ExtraAbsolute},
			ExtraBuffer:    {Type: ExtraPercent},
		},
		Overrides: Overrides{},
	}
}

// Calculator state keys. These match the persisted calculator_state JSON.
const (
	keyClient       = "client"
	keyProject      = "project"
	keyScreenQty    = "screenQty"
	keyTargetWidth  = "targetWidth"
	keyTargetHeight = "targetHeight"
	keyUnit         = "unit"
	keyIndoor       = "selectedIndoor"
	keyAssemblyMode = "assemblyMode"
	keyPitch        = "selectedPitch"
	keyModuleID     = "selectedModuleId"
	keyCabinetID    = "selectedCabinetId"
	keyCardID       = "selectedCardId"
	keyPSUID        = "selectedPSUId"
	keyProcessorID  = "selectedProcId"
	keyReadyID      = "readyId"
	keySizingMode   = "sizingMode"
	keyMargin       = "margin"
	keyExtras       = "extras"
	keyOverrides    = "overrides"
	keyExtraVal     = "val"
	keyExtraType    = "type"
	keyOverrideQty  = "qty"
	keyOverrideRate = "rate"
)

// DecodeQuoteConfig builds a QuoteConfig from a loosely typed state map such
// as a decoded JSON document or a parsed form. Every numeric field goes
// through ToNumber, so malformed input becomes 0. Keys that are absent keep
// their default value.
func DecodeQuoteConfig(state map[string]any) QuoteConfig {
	cfg := DefaultQuoteConfig()
	if state == nil {
		return cfg
	}

	if v, ok := state[keyClient]; ok {
		cfg.Client = ToText(v)
	}
	if v, ok := state[keyProject]; ok {
		cfg.Project = ToText(v)
	}
	if v, ok := state[keyScreenQty]; ok {
		cfg.ScreenQty = ToCount(v)
	}
	if v, ok := state[keyTargetWidth]; ok {
		cfg.TargetWidth = ToNumber(v)
	}
	if v, ok := state[keyTargetHeight]; ok {
		cfg.TargetHeight = ToNumber(v)
	}
	if v, ok := state[keyUnit]; ok {
		cfg.Unit = ParseUnit(ToText(v))
	}
	if v, ok := state[keyIndoor]; ok {
		cfg.Indoor = ToFlag(v)
	}
	if v, ok := state[keyAssemblyMode]; ok {
		cfg.AssemblyMode = ParseAssemblyMode(ToText(v))
	}
	if v, ok := state[keyPitch]; ok {
		cfg.SelectedPitch = ToText(v)
	}
	if v, ok := state[keyModuleID]; ok {
		cfg.ModuleID = ToText(v)
	}
	if v, ok := state[keyCabinetID]; ok {
		cfg.CabinetID = ToText(v)
	}
	if v, ok := state[keyCardID]; ok {
		cfg.CardID = ToText(v)
	}
	if v, ok := state[keyPSUID]; ok {
		cfg.PSUID = ToText(v)
	}
	if v, ok := state[keyProcessorID]; ok {
		cfg.ProcessorID = ToText(v)
	}
	if v, ok := state[keyReadyID]; ok {
		cfg.ReadyID = ToText(v)
	}
	if v, ok := state[keySizingMode]; ok {
		cfg.SizingMode = ParseSizingMode(ToText(v))
	}
	if v, ok := state[keyMargin]; ok {
		cfg.Margin = ToNumber(v)
	}

	if raw, ok := state[keyExtras].(map[string]any); ok {
		for _, key := range ExtraKeys {
			entry, ok := raw[string(key)].(map[string]any)
			if !ok {
				continue
			}
			extra := cfg.Extras[key]
			if v, ok := entry[keyExtraVal]; ok {
				extra.Val = ToNumber(v)
			}
			if v, ok := entry[keyExtraType]; ok {
				extra.Type = ParseExtraType(ToText(v))
			}
			cfg.Extras[key] = extra
		}
	}

	if raw, ok := state[keyOverrides].(map[string]any); ok {
		for name, v := range raw {
			id, ok := ParseLineID(name)
			if !ok {
				continue
			}
			entry, ok := v.(map[string]any)
			if !ok {
				continue
			}
			ov := Override{
				Qty:  ToOptionalNumber(entry[keyOverrideQty]),
				Rate: ToOptionalNumber(entry[keyOverrideRate]),
			}
			if !ov.IsZero() {
				cfg.Overrides[id] = ov
			}
		}
	}

	return cfg
}

// State returns the config as a calculator-state map, the inverse of
// DecodeQuoteConfig.
func (c QuoteConfig) State() map[string]any {
	extras := make(map[string]any, len(ExtraKeys))
	for _, key := range ExtraKeys {
		e := c.Extras[key]
		if e.Type == "" {
			e.Type = ExtraAbsolute
		}
		extras[string(key)] = map[string]any{keyExtraVal: e.Val, keyExtraType: string(e.Type)}
	}

	overrides := make(map[string]any, len(c.Overrides))
	for id, ov := range c.Overrides {
		if ov.IsZero() {
			continue
		}
		entry := make(map[string]any, 2)
		if ov.Qty != nil {
			entry[keyOverrideQty] = *ov.Qty
		}
		if ov.Rate != nil {
			entry[keyOverrideRate] = *ov.Rate
		}
		overrides[string(id)] = entry
	}

	indoor := "false"
	if c.Indoor {
		indoor = "true"
	}

	return map[string]any{
		keyClient:       c.Client,
		keyProject:      c.Project,
		keyScreenQty:    c.ScreenQty,
		keyTargetWidth:  c.TargetWidth,
		keyTargetHeight: c.TargetHeight,
		keyUnit:         string(c.Unit),
		keyIndoor:       indoor,
		keyAssemblyMode: string(c.AssemblyMode),
		keyPitch:        c.SelectedPitch,
		keyModuleID:     c.ModuleID,
		keyCabinetID:    c.CabinetID,
		keyCardID:       c.CardID,
		keyPSUID:        c.PSUID,
		keyProcessorID:  c.ProcessorID,
		keyReadyID:      c.ReadyID,
		keySizingMode:   string(c.SizingMode),
		keyMargin:       c.Margin,
		keyExtras:       extras,
		keyOverrides:    overrides,
	}
}

// MarshalJSON encodes the config in calculator-state form.
func (c QuoteConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.State())
}

// UnmarshalJSON decodes a calculator-state document, coercing loosely typed
// values.
func (c *QuoteConfig) UnmarshalJSON(data []byte) error {
	var state map[string]any
	if err := json.Unmarshal(data, &state); err != nil {
		return err
	}
	*c = DecodeQuoteConfig(state)
	return nil
}

// WithOverride returns a copy of c with the override for id replaced. A zero
// override clears the line.
func (c QuoteConfig) WithOverride(id LineID, ov Override) QuoteConfig {
	next := make(Overrides, len(c.Overrides)+1)
	for k, v := range c.Overrides {
		next[k] = v
	}
	if ov.IsZero() {
		delete(next, id)
	} else {
		next[id] = ov
	}
	c.Overrides = next
	return c
}

// Clone returns a copy of c marked as a copy, as used when duplicating a
// saved quote.
func (c QuoteConfig) Clone() QuoteConfig {
	c.Client += " (Copy)"
	c.Project += " (Copy)"
	extras := make(Extras, len(c.Extras))
	for k, v := range c.Extras {
		extras[k] = v
	}
	c.Extras = extras
	overrides := make(Overrides, len(c.Overrides))
	for k, v := range c.Overrides {
		overrides[k] = v
	}
	c.Overrides = overrides
	return c
}
