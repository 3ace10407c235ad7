package templates

import (
	"time"

	"github.com/dustin/go-humanize"

	"ledquote/services"
)

type QuoteListData struct {
	Quotes []services.SavedQuote
	Now    time.Time
}

// relTime renders t relative to now, e.g. "2 hours ago".
func relTime(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}
