package services

import (
	"testing"
	"time"
)

func TestGetFiscalYear(t *testing.T) {
	tests := []struct {
		name   string
		date   time.Time
		expect string
	}{
		{"april_start", time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), "26-27"},
		{"march_end", time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC), "25-26"},
		{"january", time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC), "25-26"},
		{"december", time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC), "25-26"},
		{"year_2000", time.Date(2000, time.June, 1, 0, 0, 0, 0, time.UTC), "00-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetFiscalYear(tt.date)
			if got != tt.expect {
				t.Errorf("GetFiscalYear(%v) = %q, want %q", tt.date, got, tt.expect)
			}
		})
	}
}

func TestQuoteNumberFormat(t *testing.T) {
	tests := []struct {
		fy     string
		seq    int
		expect string
	}{
		{"25-26", 1, "LED-Q-25-26-001"},
		{"25-26", 42, "LED-Q-25-26-042"},
		{"26-27", 1234, "LED-Q-26-27-1234"},
	}
	for _, tt := range tests {
		got := formatQuoteNumber(tt.fy, tt.seq)
		if got != tt.expect {
			t.Errorf("formatQuoteNumber(%q, %d) = %q, want %q", tt.fy, tt.seq, got, tt.expect)
		}
	}
}

func TestMaxSequence(t *testing.T) {
	prefix := "LED-Q-26-27-"
	tests := []struct {
		name    string
		numbers []string
		expect  int
	}{
		{"none", nil, 0},
		{"contiguous", []string{"LED-Q-26-27-001", "LED-Q-26-27-002"}, 2},
		{"gap after delete", []string{"LED-Q-26-27-002"}, 2},
		{"unordered", []string{"LED-Q-26-27-007", "LED-Q-26-27-003"}, 7},
		{"past 999", []string{"LED-Q-26-27-999", "LED-Q-26-27-1000"}, 1000},
		{"other year ignored", []string{"LED-Q-25-26-050", "LED-Q-26-27-004"}, 4},
		{"malformed ignored", []string{"LED-Q-26-27-abc", "LED-Q-26-27-002"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := maxSequence(prefix, tt.numbers); got != tt.expect {
				t.Errorf("maxSequence(%v) = %d, want %d", tt.numbers, got, tt.expect)
			}
		})
	}
}
