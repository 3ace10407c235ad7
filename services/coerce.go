package services

import (
	"math"
	"strings"

	"github.com/spf13/cast"
)

// ToNumber converts a loosely typed value (form string, JSON number, bool)
// into a float64. Empty strings, unparseable text, NaN and infinities all
// become 0 so that a stray input can never poison a price.
func ToNumber(v any) float64 {
	if s, ok := v.(string); ok {
		v = strings.TrimSpace(s)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// ToCount converts a loosely typed value into a non-negative whole number.
// Fractions are truncated.
func ToCount(v any) int {
	n := math.Trunc(ToNumber(v))
	if n < 0 {
		return 0
	}
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}

// ToDelta converts a loosely typed value into a signed whole number within
// ±math.MaxInt32. Fractions are truncated.
func ToDelta(v any) int {
	n := math.Trunc(ToNumber(v))
	return int(max(min(n, math.MaxInt32), -math.MaxInt32))
}

// ToOptionalNumber returns nil for absent or blank values and the coerced
// number otherwise. It is used for override fields where "empty" means
// "keep the computed value".
func ToOptionalNumber(v any) *float64 {
	if v == nil {
		return nil
	}
	if s, ok := v.(string); ok && strings.TrimSpace(s) == "" {
		return nil
	}
	n := ToNumber(v)
	return &n
}

// ToFlag reads a boolean that may arrive as "true"/"false", "on", 1/0 or a
// real bool. Anything unrecognised is false.
func ToFlag(v any) bool {
	if s, ok := v.(string); ok {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "on", "yes":
			return true
		}
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false
	}
	return b
}

// ToText trims a loosely typed value into a string.
func ToText(v any) string {
	return strings.TrimSpace(cast.ToString(v))
}
