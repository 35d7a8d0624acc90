// Package datacheck runs the data-quality gate over a raw sales export:
// required columns must be fully populated, and a summary describes the
// numeric columns, calendar coverage and catalog size so a bad extract
// is caught before it reaches the dashboard.
package datacheck

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/QuintoFelipe/Coffee-Shop-Dashboard/ingest"
	"github.com/QuintoFelipe/Coffee-Shop-Dashboard/sales"
)

// RequiredColumns must carry a value in every row of a usable export.
var RequiredColumns = []string{"Date", "Time", "coffee_name", "money"}

// NumericColumns are summarized with min, max and mean.
var NumericColumns = []string{"money", "hour_of_day", "Weekdaysort", "Monthsort"}

// NumericSummary describes the parseable values of one numeric column.
type NumericSummary struct {
	Column string
	Min    float64
	Max    float64
	Mean   float64
}

// Coverage is the parseable calendar span of an export.
type Coverage struct {
	First time.Time
	Last  time.Time
	Days  int
}

// Report is the quality summary of one export.
type Report struct {
	Rows           int
	Numeric        []NumericSummary
	Coverage       *Coverage
	Products       int
	PaymentMethods []string
}

// ValidateRequired fails when any required column carries blank cells,
// with a per-column breakdown of how many rows are affected.
func ValidateRequired(t *ingest.Table) error {
	failures := make(map[string]int)
	for _, row := range t.Rows {
		for _, column := range RequiredColumns {
			if strings.TrimSpace(t.Field(row, column)) == "" {
				failures[column]++
			}
		}
	}
	if len(failures) == 0 {
		return nil
	}

	breakdown := make([]string, 0, len(failures))
	for _, column := range RequiredColumns {
		if count, ok := failures[column]; ok {
			breakdown = append(breakdown, fmt.Sprintf("%s: %d", column, count))
		}
	}
	return fmt.Errorf("missing values detected -> %s", strings.Join(breakdown, ", "))
}

// Summarize computes the quality report for an export. Cells that do
// not parse are skipped per column, never fatal.
func Summarize(t *ingest.Table) *Report {
	report := &Report{Rows: len(t.Rows)}

	for _, column := range NumericColumns {
		if summary, ok := summarizeColumn(t, column); ok {
			report.Numeric = append(report.Numeric, summary)
		}
	}

	var dates []time.Time
	for _, row := range t.Rows {
		if day := sales.ParseDate(t.Field(row, "Date")); !day.IsZero() {
			dates = append(dates, day)
		}
	}
	if len(dates) > 0 {
		sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
		first, last := dates[0], dates[len(dates)-1]
		report.Coverage = &Coverage{
			First: first,
			Last:  last,
			Days:  int(last.Sub(first).Hours() / 24),
		}
	}

	products := make(map[string]struct{})
	methods := make(map[string]struct{})
	for _, row := range t.Rows {
		if name := t.Field(row, "coffee_name"); name != "" {
			products[name] = struct{}{}
		}
		if method := t.Field(row, "cash_type"); method != "" {
			methods[method] = struct{}{}
		}
	}
	report.Products = len(products)
	report.PaymentMethods = make([]string, 0, len(methods))
	for method := range methods {
		report.PaymentMethods = append(report.PaymentMethods, method)
	}
	sort.Strings(report.PaymentMethods)

	return report
}

func summarizeColumn(t *ingest.Table, column string) (NumericSummary, bool) {
	var values []float64
	for _, row := range t.Rows {
		raw := strings.TrimSpace(t.Field(row, column))
		if raw == "" {
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		values = append(values, value)
	}
	if len(values) == 0 {
		return NumericSummary{}, false
	}

	summary := NumericSummary{Column: column, Min: values[0], Max: values[0]}
	var sum float64
	for _, value := range values {
		if value < summary.Min {
			summary.Min = value
		}
		if value > summary.Max {
			summary.Max = value
		}
		sum += value
	}
	summary.Mean = sum / float64(len(values))
	return summary, true
}

// Format renders the report the way the check command prints it.
func (r *Report) Format() string {
	printer := message.NewPrinter(language.English)
	var b strings.Builder

	printer.Fprintf(&b, "Loaded %d rows\n", r.Rows)

	if len(r.Numeric) > 0 {
		b.WriteString("\nNumeric columns:\n")
		for _, summary := range r.Numeric {
			fmt.Fprintf(&b, "  - %s: min=%.2f max=%.2f mean=%.2f\n",
				summary.Column, summary.Min, summary.Max, summary.Mean)
		}
	}

	if r.Coverage != nil {
		fmt.Fprintf(&b, "\nCalendar coverage: %s -> %s (%d days)\n",
			r.Coverage.First.Format("2006-01-02"),
			r.Coverage.Last.Format("2006-01-02"),
			r.Coverage.Days)
	}

	methods := "n/a"
	if len(r.PaymentMethods) > 0 {
		methods = strings.Join(r.PaymentMethods, ", ")
	}
	fmt.Fprintf(&b, "Products tracked: %d | Payment methods observed: %s\n", r.Products, methods)

	return b.String()
}
