package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalogJSON = `[
  {"id": "m1", "type": "module", "brand": "Absen", "model": "A3", "pitch": 3.91, "width": 250, "height": 250, "price": 1000, "carriage": 100, "currency": "INR", "indoor": true},
  {"id": "c1", "type": "cabinet", "brand": "Generic", "model": "C500", "width": 500, "height": 500, "price": 1000, "carriage": 100, "currency": "INR"},
  {"id": "p1", "type": "processor", "brand": "Novastar", "model": "VX600", "price": 450, "carriage": 50, "currency": "USD"}
]`

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runQuoteCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newQuoteCmd(83)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestQuoteCmd_PricesState(t *testing.T) {
	state := writeTempFile(t, "state.json", `{
		"client": "Acme", "project": "Lobby",
		"targetWidth": 1, "targetHeight": "0.5", "unit": "m",
		"selectedPitch": "3.91", "selectedModuleId": "m1", "selectedCabinetId": "c1",
		"margin": 20
	}`)
	catalog := writeTempFile(t, "catalog.json", testCatalogJSON)

	out, err := runQuoteCmd(t, "--state", state, "--catalog", catalog)
	require.NoError(t, err)

	assert.Contains(t, out, "Acme / Lobby")
	assert.Contains(t, out, "Grid: 2 × 1")
	assert.Contains(t, out, "Modules per screen: 8")
	assert.Contains(t, out, "₹8,800.00")
	assert.Contains(t, out, "Grand Total: ₹13,200.00")
}

func TestQuoteCmd_RateFlag(t *testing.T) {
	state := writeTempFile(t, "state.json", `{
		"targetWidth": 1, "targetHeight": 0.5,
		"selectedPitch": "3.91", "selectedModuleId": "m1", "selectedCabinetId": "c1",
		"selectedProcId": "p1", "margin": 0
	}`)
	catalog := writeTempFile(t, "catalog.json", testCatalogJSON)

	out, err := runQuoteCmd(t, "--state", state, "--catalog", catalog, "--rate", "100")
	require.NoError(t, err)

	// 11,000 hardware plus a 500 USD processor at 100.
	assert.Contains(t, out, "Grand Total: ₹61,000.00")
}

func TestQuoteCmd_NonFiniteRate(t *testing.T) {
	state := writeTempFile(t, "state.json", `{
		"targetWidth": 1, "targetHeight": 0.5,
		"selectedPitch": "3.91", "selectedModuleId": "m1", "selectedCabinetId": "c1",
		"selectedProcId": "p1", "margin": 0
	}`)
	catalog := writeTempFile(t, "catalog.json", testCatalogJSON)

	for _, rate := range []string{"NaN", "Inf", "-Inf"} {
		t.Run(rate, func(t *testing.T) {
			out, err := runQuoteCmd(t, "--state", state, "--catalog", catalog, "--rate", rate)
			require.NoError(t, err)

			// USD lines fall back to zero instead of propagating NaN.
			assert.Contains(t, out, "Grand Total: ₹11,000.00")
			assert.NotContains(t, out, "NaN")
		})
	}
}

func TestQuoteCmd_Incomplete(t *testing.T) {
	state := writeTempFile(t, "state.json", `{"selectedModuleId": "m1"}`)
	catalog := writeTempFile(t, "catalog.json", testCatalogJSON)

	_, err := runQuoteCmd(t, "--state", state, "--catalog", catalog)
	assert.ErrorIs(t, err, errIncompleteQuote)
}

func TestQuoteCmd_BadFiles(t *testing.T) {
	catalog := writeTempFile(t, "catalog.json", testCatalogJSON)
	badState := writeTempFile(t, "state.json", `not json`)

	_, err := runQuoteCmd(t, "--state", badState, "--catalog", catalog)
	assert.ErrorContains(t, err, "parse state")

	_, err = runQuoteCmd(t, "--state", filepath.Join(t.TempDir(), "missing.json"), "--catalog", catalog)
	assert.ErrorContains(t, err, "read state")
}
