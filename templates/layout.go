// Package templates renders the HTML pages and HTMX partials of the app.
// Components live in the .templ files; run `templ generate` after editing
// them.
package templates

// Nav sections highlighted in the header.
const (
	NavCalculator = "calculator"
	NavQuotes     = "quotes"
	NavInventory  = "inventory"
	NavSettings   = "settings"
)

var navLinks = []struct {
	key, href, label string
}{
	{NavCalculator, "/quotes/new", "Calculator"},
	{NavQuotes, "/quotes", "Saved Quotes"},
	{NavInventory, "/inventory", "Inventory"},
	{NavSettings, "/settings", "Settings"},
}
