package services

import (
	"math"
	"strings"
)

// Unit is the length unit the target screen size is entered in.
type Unit string

const (
	UnitMeters Unit = "m"
	UnitFeet   Unit = "ft"
)

const (
	mmPerMeter = 1000.0
	mmPerFoot  = 304.8
	// mm² in one square foot, as used on quotes.
	mm2PerSqFt = 92903.0
)

// ParseUnit maps s to a unit, defaulting to metres.
func ParseUnit(s string) Unit {
	if strings.EqualFold(strings.TrimSpace(s), string(UnitFeet)) {
		return UnitFeet
	}
	return UnitMeters
}

// ToMillimeters converts v in unit u to millimetres.
func ToMillimeters(v float64, u Unit) float64 {
	if u == UnitFeet {
		return v * mmPerFoot
	}
	return v * mmPerMeter
}

// FromMillimeters converts mm into unit u.
func FromMillimeters(mm float64, u Unit) float64 {
	if u == UnitFeet {
		return mm / mmPerFoot
	}
	return mm / mmPerMeter
}

// SizingMode selects how a fractional cabinet count is rounded.
type SizingMode string

const (
	SizingNearest SizingMode = "near"
	SizingUp      SizingMode = "up"
	SizingDown    SizingMode = "down"
)

// ParseSizingMode maps s to a sizing mode, defaulting to nearest.
func ParseSizingMode(s string) SizingMode {
	switch SizingMode(strings.ToLower(strings.TrimSpace(s))) {
	case SizingUp:
		return SizingUp
	case SizingDown:
		return SizingDown
	}
	return SizingNearest
}

// Grid is a cabinet layout fitted to a requested screen size.
type Grid struct {
	Cols     int
	Rows     int
	WidthMM  float64
	HeightMM float64
	AreaSqFt float64
}

// Cabinets returns the number of cabinets in one screen.
func (g Grid) Cabinets() int {
	return g.Cols * g.Rows
}

// WidthM returns the built width in metres rounded to 2 decimals.
func (g Grid) WidthM() float64 {
	return round2(g.WidthMM / mmPerMeter)
}

// HeightM returns the built height in metres rounded to 2 decimals.
func (g Grid) HeightM() float64 {
	return round2(g.HeightMM / mmPerMeter)
}

// FitGrid converts the target size into a grid of cabW × cabH cabinets.
// It returns false when the cabinet dimensions cannot be fitted against.
func FitGrid(targetW, targetH float64, unit Unit, cabW, cabH float64, mode SizingMode) (Grid, bool) {
	if !(cabW > 0) || !(cabH > 0) || math.IsInf(cabW, 0) || math.IsInf(cabH, 0) {
		return Grid{}, false
	}

	rawCols := ToMillimeters(targetW, unit) / cabW
	rawRows := ToMillimeters(targetH, unit) / cabH

	g := Grid{
		Cols: fitCount(rawCols, mode),
		Rows: fitCount(rawRows, mode),
	}
	g.WidthMM = float64(g.Cols) * cabW
	g.HeightMM = float64(g.Rows) * cabH
	g.AreaSqFt = (g.WidthMM * g.HeightMM) / mm2PerSqFt
	return g, true
}

// fitCount rounds a raw cabinet count according to mode. Up is a plain
// ceiling; down and nearest never go below one cabinet.
func fitCount(raw float64, mode SizingMode) int {
	if math.IsNaN(raw) || raw < 0 {
		raw = 0
	}
	raw = min(raw, math.MaxInt32)
	switch mode {
	case SizingUp:
		return int(math.Ceil(raw))
	case SizingDown:
		return max(1, int(math.Floor(raw)))
	default:
		return max(1, int(math.Round(raw)))
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
