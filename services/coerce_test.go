package services

import (
	"encoding/json"
	"math"
	"testing"
)

func TestToNumber(t *testing.T) {
	tests := []struct {
		name   string
		input  any
		expect float64
	}{
		{"nil", nil, 0},
		{"empty string", "", 0},
		{"spaces", "   ", 0},
		{"numeric string", "12.5", 12.5},
		{"padded string", " 42 ", 42},
		{"garbage", "abc", 0},
		{"int", 7, 7},
		{"float", 3.25, 3.25},
		{"json number", json.Number("19.99"), 19.99},
		{"bool true", true, 1},
		{"nan", math.NaN(), 0},
		{"inf", math.Inf(1), 0},
		{"nan string", "NaN", 0},
		{"negative", "-3", -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToNumber(tt.input); got != tt.expect {
				t.Errorf("ToNumber(%#v) = %v, want %v", tt.input, got, tt.expect)
			}
		})
	}
}

func TestToCount(t *testing.T) {
	tests := []struct {
		name   string
		input  any
		expect int
	}{
		{"whole", "3", 3},
		{"fraction truncates", 2.9, 2},
		{"negative clamps", -4, 0},
		{"garbage", "x", 0},
		{"huge", 1e12, math.MaxInt32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToCount(tt.input); got != tt.expect {
				t.Errorf("ToCount(%#v) = %d, want %d", tt.input, got, tt.expect)
			}
		})
	}
}

func TestToDelta(t *testing.T) {
	tests := []struct {
		name   string
		input  any
		expect int
	}{
		{"positive", "10", 10},
		{"negative", "-5", -5},
		{"fraction truncates", "-2.9", -2},
		{"garbage", "abc", 0},
		{"huge", "1e20", math.MaxInt32},
		{"huge negative", "-1e20", -math.MaxInt32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToDelta(tt.input); got != tt.expect {
				t.Errorf("ToDelta(%#v) = %d, want %d", tt.input, got, tt.expect)
			}
		})
	}
}

func TestToOptionalNumber(t *testing.T) {
	if ToOptionalNumber(nil) != nil {
		t.Error("nil should stay unset")
	}
	if ToOptionalNumber("  ") != nil {
		t.Error("blank should stay unset")
	}
	got := ToOptionalNumber("0")
	if got == nil || *got != 0 {
		t.Errorf("explicit zero should be set, got %v", got)
	}
	got = ToOptionalNumber("oops")
	if got == nil || *got != 0 {
		t.Errorf("garbage should coerce to a set zero, got %v", got)
	}
}

func TestToFlag(t *testing.T) {
	truthy := []any{true, "true", "on", "YES", "1", 1}
	falsy := []any{false, "false", "", "off", "maybe", nil, 0}
	for _, v := range truthy {
		if !ToFlag(v) {
			t.Errorf("ToFlag(%#v) = false, want true", v)
		}
	}
	for _, v := range falsy {
		if ToFlag(v) {
			t.Errorf("ToFlag(%#v) = true, want false", v)
		}
	}
}
