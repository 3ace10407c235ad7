package services

import (
	"math"
	"testing"
)

func TestRoundOff(t *testing.T) {
	tests := []struct {
		name      string
		amount    float64
		wantRound float64
	}{
		{"exact", 5000.00, 0.00},
		{"round_down", 5000.30, -0.30},
		{"round_up", 5000.70, 0.30},
		{"at_threshold", 5000.50, 0.50}, // math.Round rounds half away from zero
		{"just_below", 5000.49, -0.49},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundOff(tt.amount)
			if !floatClose(got, tt.wantRound) {
				t.Errorf("RoundOff(%f) = %f, want %f", tt.amount, got, tt.wantRound)
			}
		})
	}
}

func TestAmountToWords_IndianFormat(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		expect string
	}{
		{"zero", 0, "Zero Rupees Only/-"},
		{"single_digit", 5, "Five Rupees Only/-"},
		{"teens", 15, "Fifteen Rupees Only/-"},
		{"hundreds", 500, "Five Hundred Rupees Only/-"},
		{"thousands", 5000, "Five Thousand Rupees Only/-"},
		{"lakhs", 913183, "Nine Lakhs Thirteen Thousand One Hundred and Eighty Three Rupees Only/-"},
		{"crores", 12345678, "One Crores Twenty Three Lakhs Forty Five Thousand Six Hundred and Seventy Eight Rupees Only/-"},
		{"hundreds_of_crores", 1500000000, "One Hundred and Fifty Crores Rupees Only/-"},
		{"exact_lakh", 100000, "One Lakhs Rupees Only/-"},
		{"hundred_and", 150, "One Hundred and Fifty Rupees Only/-"},
		{"rounds_paise", 99.6, "One Hundred Rupees Only/-"},
		{"negative", -20, "Negative Twenty Rupees Only/-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AmountToWords(tt.amount)
			if got != tt.expect {
				t.Errorf("AmountToWords(%v) = %q, want %q", tt.amount, got, tt.expect)
			}
		})
	}
}

func floatClose(a, b float64) bool {
	return math.Abs(a-b) < 0.001
}
