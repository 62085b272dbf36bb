package notification

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// currencyPrinter groups numbers by thousands (en-style "1,000,000").
var currencyPrinter = message.NewPrinter(language.English)

// FormatCurrency renders an amount as "$<grouped> <code>": thousands-grouped,
// zero decimal places, rounded half-even.
//
//	FormatCurrency(1000000, "COP") == "$1,000,000 COP"
//	FormatCurrency(0, "USD")       == "$0 USD"
func FormatCurrency(amount float64, currency string) string {
	return currencyPrinter.Sprintf("$%.0f %s", amount, currency)
}

// Layouts tried for values carrying a T separator, in order. time.Parse
// tolerates fractional seconds whenever the layout has seconds.
var dateTimeLayouts = []string{
	"2006-01-02T15:04:05-07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04-07:00",
	"2006-01-02T15:04",
}

// FormatDate renders a date-like string for the email body.
//
// Empty input yields the "N/A" placeholder. Values containing a T separator
// are treated as combined date-times (a trailing Z is accepted as an explicit
// zero offset) and rendered as DD/MM/YYYY HH:MM; bare YYYY-MM-DD dates render
// as DD/MM/YYYY. On any parse failure the input is returned unchanged —
// malformed values are tolerated, never dropped.
func FormatDate(raw string) string {
	if raw == "" {
		return "N/A"
	}

	if strings.Contains(raw, "T") {
		s := raw
		if strings.HasSuffix(s, "Z") {
			s = strings.TrimSuffix(s, "Z") + "+00:00"
		}
		for _, layout := range dateTimeLayouts {
			if dt, err := time.Parse(layout, s); err == nil {
				return dt.Format("02/01/2006 15:04")
			}
		}
		return raw
	}

	dt, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return raw
	}
	return dt.Format("02/01/2006")
}
