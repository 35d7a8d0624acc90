// Package sales defines the transaction model and the feature
// enrichment step that turns raw point-of-sale rows into the records
// every dashboard view is computed from.
package sales

import (
	"strings"
	"time"
)

// Transaction is one raw point-of-sale row as it comes out of the sales
// export. Fields arrive untrusted: dates may be malformed, products and
// weekdays may be unknown. Enrichment never rejects a row for either.
type Transaction struct {
	Date       string
	Time       string
	Weekday    string
	CoffeeName string
	CashType   string
	Money      float64
}

// Record is a Transaction plus every engineered field the views need.
// Categorical fields are always populated thanks to the refdata
// fallbacks; the calendar fields stay zero when the raw date does not
// parse, and HasDate tells the two cases apart.
type Record struct {
	Transaction

	SalesDate  time.Time
	SalesYear  int
	SalesMonth time.Month
	MonthName  string
	Season     string

	ProductCategory string
	StoreName       string
	Region          string

	Units       int
	MarginPct   float64
	MarginValue float64
}

// HasDate reports whether the raw date parsed into a usable calendar day.
func (r Record) HasDate() bool {
	return !r.SalesDate.IsZero()
}

// Accepted date formats, tried in order. The export normally uses plain
// ISO days but some extracts carry a time component or US-style dates.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01/02/2006",
}

// ParseDate parses a raw date cell. It returns the zero time when the
// value matches none of the accepted formats, which downstream code
// treats as "no date" rather than an error.
func ParseDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if day, err := time.Parse(layout, raw); err == nil {
			return day
		}
	}
	return time.Time{}
}
