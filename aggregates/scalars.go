// Package aggregates computes every metric and grouped view the
// dashboard shows, from headline KPIs down to the store leaderboard.
// All functions are pure reductions over enriched records: they take a
// slice, return values, and degrade to zero instead of failing when the
// slice is empty or a denominator would be zero.
package aggregates

import (
	"sort"

	"github.com/QuintoFelipe/Coffee-Shop-Dashboard/sales"
)

// TotalRevenue sums the sale amount over the record set.
func TotalRevenue(records []sales.Record) float64 {
	var total float64
	for _, r := range records {
		total += r.Money
	}
	return total
}

// AverageTicket is the mean sale amount, zero for an empty set.
func AverageTicket(records []sales.Record) float64 {
	if len(records) == 0 {
		return 0
	}
	return TotalRevenue(records) / float64(len(records))
}

// GrossMargin sums the estimated margin value over the record set.
func GrossMargin(records []sales.Record) float64 {
	var total float64
	for _, r := range records {
		total += r.MarginValue
	}
	return total
}

// YoYGrowth returns the signed percentage change in revenue between the
// two most recent calendar years present in the set. Records without a
// parseable date belong to no year and are ignored. Sets spanning fewer
// than two years report zero growth, as does any comparison against a
// zero-revenue year.
func YoYGrowth(records []sales.Record) float64 {
	totals := make(map[int]float64)
	for _, r := range records {
		if !r.HasDate() {
			continue
		}
		totals[r.SalesYear] += r.Money
	}
	if len(totals) < 2 {
		return 0
	}

	years := make([]int, 0, len(totals))
	for year := range totals {
		years = append(years, year)
	}
	sort.Ints(years)

	latest := totals[years[len(years)-1]]
	previous := totals[years[len(years)-2]]
	if previous == 0 {
		return 0
	}
	return (latest - previous) / previous * 100
}
