package sales_test

import (
	"testing"
	"time"

	"github.com/QuintoFelipe/Coffee-Shop-Dashboard/refdata"
	"github.com/QuintoFelipe/Coffee-Shop-Dashboard/sales"
	"github.com/stretchr/testify/assert"
)

func TestEnrichDerivesCalendarAndCatalogFields(t *testing.T) {
	records := sales.Enrich([]sales.Transaction{{
		Date:       "2024-03-01",
		Time:       "08:15:00",
		Weekday:    "Fri",
		CoffeeName: "Latte",
		CashType:   "card",
		Money:      38.7,
	}})

	assert.Len(t, records, 1)
	r := records[0]

	assert.True(t, r.HasDate())
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), r.SalesDate)
	assert.Equal(t, 2024, r.SalesYear)
	assert.Equal(t, time.March, r.SalesMonth)
	assert.Equal(t, "Mar", r.MonthName)
	assert.Equal(t, "Spring", r.Season)

	assert.Equal(t, "Espresso Classics", r.ProductCategory)
	assert.Equal(t, "Tech Park Flagship", r.StoreName)
	assert.Equal(t, "Northeast", r.Region)

	assert.Equal(t, 1, r.Units)
	assert.Equal(t, 0.72, r.MarginPct)
	assert.InDelta(t, 38.7*0.72, r.MarginValue, 1e-9)
}

func TestEnrichAcceptsAlternateDateFormats(t *testing.T) {
	records := sales.Enrich([]sales.Transaction{
		{Date: "2024-03-01 08:30:00", Weekday: "Mon", CoffeeName: "Latte", Money: 10},
		{Date: "03/01/2024", Weekday: "Mon", CoffeeName: "Latte", Money: 10},
	})

	assert.Equal(t, time.Date(2024, time.March, 1, 8, 30, 0, 0, time.UTC), records[0].SalesDate)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), records[1].SalesDate)
}

func TestEnrichUnparseableDateLeavesCalendarFieldsNull(t *testing.T) {
	for _, raw := range []string{"", "not-a-date", "2024-13-45", "yesterday"} {
		records := sales.Enrich([]sales.Transaction{{
			Date: raw, Weekday: "Tue", CoffeeName: "Cold Brew", Money: 5,
		}})
		r := records[0]

		assert.False(t, r.HasDate(), "raw date %q", raw)
		assert.Equal(t, 0, r.SalesYear)
		assert.Equal(t, time.Month(0), r.SalesMonth)
		assert.Equal(t, "", r.MonthName)
		assert.Equal(t, "", r.Season)

		// everything not derived from the date is still populated
		assert.Equal(t, "Cold Classics", r.ProductCategory)
		assert.Equal(t, "Waterfront Kiosk", r.StoreName)
		assert.Equal(t, 0.68, r.MarginPct)
	}
}

func TestEnrichUnknownKeysLandInFallbackBuckets(t *testing.T) {
	records := sales.Enrich([]sales.Transaction{{
		Date: "2024-07-14", Weekday: "Holiday", CoffeeName: "Mystery Drink", Money: 12,
	}})
	r := records[0]

	assert.Equal(t, refdata.FallbackCategory, r.ProductCategory)
	assert.Equal(t, refdata.FallbackStore, r.StoreName)
	assert.Equal(t, refdata.FallbackRegion, r.Region)
	assert.Equal(t, refdata.DefaultMarginRate, r.MarginPct)
	assert.InDelta(t, 12*refdata.DefaultMarginRate, r.MarginValue, 1e-9)
}

func TestEnrichPreservesOrderAndLength(t *testing.T) {
	transactions := []sales.Transaction{
		{Date: "2024-01-02", Weekday: "Tue", CoffeeName: "Tea", Money: 1},
		{Date: "bad", Weekday: "Wed", CoffeeName: "Latte", Money: 2},
		{Date: "2024-01-04", Weekday: "Thu", CoffeeName: "Cold Brew", Money: 3},
	}

	records := sales.Enrich(transactions)

	assert.Len(t, records, len(transactions))
	for i := range transactions {
		assert.Equal(t, transactions[i], records[i].Transaction, "row %d", i)
	}
}

func TestEnrichIsStableUnderReruns(t *testing.T) {
	transactions := []sales.Transaction{
		{Date: "2024-02-29", Weekday: "Thu", CoffeeName: "Espresso", Money: 3.5},
		{Date: "", Weekday: "???", CoffeeName: "???", Money: 0},
	}

	first := sales.Enrich(transactions)
	second := sales.Enrich(transactions)

	assert.Equal(t, first, second)
}

func TestEnrichEmptyInput(t *testing.T) {
	records := sales.Enrich(nil)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}
