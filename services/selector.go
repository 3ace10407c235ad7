package services

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// pitchTolerance absorbs float noise when a pitch round-trips through a form.
const pitchTolerance = 1e-9

// AvailableModules returns the modules whose indoor flag equals indoor.
func (c Catalog) AvailableModules(indoor bool) []Module {
	var out []Module
	for _, m := range c.Modules {
		if m.Indoor == indoor {
			out = append(out, m)
		}
	}
	return out
}

// DistinctPitches returns the unique pitches of the available modules in
// ascending numeric order.
func (c Catalog) DistinctPitches(indoor bool) []float64 {
	seen := make(map[float64]bool)
	var out []float64
	for _, m := range c.AvailableModules(indoor) {
		if seen[m.Pitch] {
			continue
		}
		seen[m.Pitch] = true
		out = append(out, m.Pitch)
	}
	sort.Float64s(out)
	return out
}

// ModulesByPitch returns the available modules matching pitch. The pitch
// usually comes straight from a select control, so it is parsed here; a
// blank or unparseable pitch selects nothing.
func (c Catalog) ModulesByPitch(indoor bool, pitch string) []Module {
	p, ok := ParsePitch(pitch)
	if !ok {
		return nil
	}
	var out []Module
	for _, m := range c.AvailableModules(indoor) {
		if math.Abs(m.Pitch-p) <= pitchTolerance {
			out = append(out, m)
		}
	}
	return out
}

// CabinetCandidates returns every cabinet when module is nil, otherwise only
// the cabinets that a whole number of modules tiles exactly in both axes.
func (c Catalog) CabinetCandidates(module *Module) []Cabinet {
	if module == nil {
		return append([]Cabinet(nil), c.Cabinets...)
	}
	var out []Cabinet
	for _, cab := range c.Cabinets {
		if divides(cab.Width, module.Width) && divides(cab.Height, module.Height) {
			out = append(out, cab)
		}
	}
	return out
}

// ReadyUnits returns the ready panels whose indoor flag equals indoor.
func (c Catalog) ReadyUnits(indoor bool) []ReadyUnit {
	var out []ReadyUnit
	for _, r := range c.Ready {
		if r.Indoor == indoor {
			out = append(out, r)
		}
	}
	return out
}

// ParsePitch parses a pitch value from user input.
func ParsePitch(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	p, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, false
	}
	return p, true
}

// FormatPitch renders a pitch without trailing zeros ("3.91", "10").
func FormatPitch(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

// divides reports whether outer is an exact whole multiple of inner.
func divides(outer, inner float64) bool {
	if inner <= 0 || outer <= 0 {
		return false
	}
	return math.Mod(outer, inner) == 0
}
