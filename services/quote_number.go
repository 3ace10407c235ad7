package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase/core"
)

// GetFiscalYear returns the Indian fiscal year string for a given date.
// Indian fiscal year runs April to March.
// Jan 2026 → "25-26", May 2026 → "26-27"
func GetFiscalYear(t time.Time) string {
	year := t.Year()

	startYear := year
	if t.Month() < time.April {
		startYear = year - 1
	}
	endYear := startYear + 1

	return fmt.Sprintf("%02d-%02d", startYear%100, endYear%100)
}

// formatQuoteNumber constructs the quote number string from components.
func formatQuoteNumber(fiscalYear string, sequence int) string {
	return fmt.Sprintf("LED-Q-%s-%03d", fiscalYear, sequence)
}

// GenerateQuoteNumber creates the next quote number.
// Format: LED-Q-{fiscal_year}-{sequence}
// - fiscal_year: Indian fiscal year (Apr-Mar), e.g., "25-26"
// - sequence: 3-digit zero-padded, one past the highest issued in that year
func GenerateQuoteNumber(app core.App, now time.Time) (string, error) {
	fiscalYear := GetFiscalYear(now)
	prefix := fmt.Sprintf("LED-Q-%s-", fiscalYear)

	existing, err := app.FindRecordsByFilter(
		QuotesCollection,
		"quote_number ~ {:prefix}",
		"",
		0,
		0,
		map[string]any{"prefix": prefix + "%"},
	)
	if err != nil {
		return "", fmt.Errorf("find quotes for %s: %w", fiscalYear, err)
	}

	numbers := make([]string, len(existing))
	for i, r := range existing {
		numbers[i] = r.GetString("quote_number")
	}
	return formatQuoteNumber(fiscalYear, maxSequence(prefix, numbers)+1), nil
}

// maxSequence returns the highest sequence among numbers that carry prefix.
// Deleted quotes leave gaps; their numbers are never reissued while a later
// number exists.
func maxSequence(prefix string, numbers []string) int {
	highest := 0
	for _, n := range numbers {
		if !strings.HasPrefix(n, prefix) {
			continue
		}
		seq, err := strconv.Atoi(n[len(prefix):])
		if err != nil {
			continue
		}
		highest = max(highest, seq)
	}
	return highest
}
