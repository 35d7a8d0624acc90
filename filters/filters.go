// Package filters narrows an enriched record set down to the rows a
// dashboard request asked for. Predicates are evaluated into bitmap
// selection vectors over record indexes and intersected, so a request
// combining date, category and region clauses scans the dataset once
// per clause instead of materializing intermediate copies.
//
// The empty-selection convention lives here and only here: a nil or
// empty Categories or Regions slice means "no restriction", never
// "match nothing". Aggregations downstream receive plain record slices
// and never re-interpret filter semantics.
package filters

import (
	"time"

	roaring "github.com/RoaringBitmap/roaring/roaring64"

	"github.com/QuintoFelipe/Coffee-Shop-Dashboard/sales"
)

// DateRange bounds records by calendar day, inclusive on both ends.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether day falls inside the range. Both bounds and
// the probe are compared by calendar day, so a range built from plain
// dates also admits records whose raw date carried a time component.
func (dr DateRange) Contains(day time.Time) bool {
	probe := truncateToDay(day)
	return !probe.Before(truncateToDay(dr.Start)) && !probe.After(truncateToDay(dr.End))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Filter is one request's worth of sidebar selections. A nil Dates
// disables the date clause; empty slices disable theirs.
type Filter struct {
	Dates      *DateRange
	Categories []string
	Regions    []string
}

// IsZero reports whether the filter restricts nothing.
func (f Filter) IsZero() bool {
	return f.Dates == nil && len(f.Categories) == 0 && len(f.Regions) == 0
}

// Selection is the set of record indexes that survived a filter,
// kept as a compressed bitmap over positions in the original slice.
type Selection struct {
	bitmap *roaring.Bitmap
}

// Count returns how many records the selection retains.
func (s Selection) Count() uint64 {
	return s.bitmap.GetCardinality()
}

// Indexes returns the retained record positions in ascending order.
func (s Selection) Indexes() []uint64 {
	return s.bitmap.ToArray()
}

// Select evaluates every active clause of f into its own selection
// vector and intersects them. With no active clauses the selection
// covers the whole record set.
func Select(records []sales.Record, f Filter) Selection {
	selected := roaring.New()
	selected.AddRange(0, uint64(len(records)))

	if f.Dates != nil {
		selected.And(matchingDates(records, *f.Dates))
	}
	if len(f.Categories) > 0 {
		selected.And(matchingValues(records, f.Categories, func(r sales.Record) string {
			return r.ProductCategory
		}))
	}
	if len(f.Regions) > 0 {
		selected.And(matchingValues(records, f.Regions, func(r sales.Record) string {
			return r.Region
		}))
	}
	return Selection{bitmap: selected}
}

// Apply materializes the records selected by f, preserving their
// original order. It always returns a fresh slice, so callers may
// mutate the result without touching the source dataset.
func Apply(records []sales.Record, f Filter) []sales.Record {
	selection := Select(records, f)
	out := make([]sales.Record, 0, selection.Count())
	for _, i := range selection.Indexes() {
		out = append(out, records[i])
	}
	return out
}

// matchingDates selects records whose sales date falls inside dr.
// Records without a parseable date never match a date clause.
func matchingDates(records []sales.Record, dr DateRange) *roaring.Bitmap {
	matched := roaring.New()
	for i, r := range records {
		if r.HasDate() && dr.Contains(r.SalesDate) {
			matched.Add(uint64(i))
		}
	}
	return matched
}

func matchingValues(records []sales.Record, wanted []string, value func(sales.Record) string) *roaring.Bitmap {
	allowed := make(map[string]struct{}, len(wanted))
	for _, w := range wanted {
		allowed[w] = struct{}{}
	}
	matched := roaring.New()
	for i, r := range records {
		if _, ok := allowed[value(r)]; ok {
			matched.Add(uint64(i))
		}
	}
	return matched
}
