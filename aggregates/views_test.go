package aggregates_test

import (
	"testing"
	"time"

	"github.com/QuintoFelipe/Coffee-Shop-Dashboard/aggregates"
	"github.com/QuintoFelipe/Coffee-Shop-Dashboard/sales"
	"github.com/stretchr/testify/assert"
)

func TestSeasonalityGroupsByDayAscending(t *testing.T) {
	records := enrich(
		sales.Transaction{Date: "2024-02-02", Weekday: "Fri", CoffeeName: "Latte", Money: 30},
		sales.Transaction{Date: "2024-02-01", Weekday: "Thu", CoffeeName: "Latte", Money: 10},
		sales.Transaction{Date: "2024-02-01", Weekday: "Thu", CoffeeName: "Tea", Money: 5},
		sales.Transaction{Date: "broken", Weekday: "Sat", CoffeeName: "Latte", Money: 1000},
	)

	daily := aggregates.Seasonality(records)

	assert.Len(t, daily, 2)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), daily[0].Date)
	assert.InDelta(t, 15.0, daily[0].Revenue, 1e-9)
	assert.Equal(t, time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC), daily[1].Date)
	assert.InDelta(t, 30.0, daily[1].Revenue, 1e-9)
}

func TestSeasonalityEmptyInput(t *testing.T) {
	assert.Empty(t, aggregates.Seasonality(nil))
}

func TestSeasonalAveragesInCalendarOrder(t *testing.T) {
	records := enrich(
		sales.Transaction{Date: "2024-07-10", Weekday: "Wed", CoffeeName: "Cold Brew", Money: 8},  // Summer
		sales.Transaction{Date: "2024-12-20", Weekday: "Fri", CoffeeName: "Latte", Money: 6},      // Winter
		sales.Transaction{Date: "2024-04-02", Weekday: "Tue", CoffeeName: "Latte", Money: 10},     // Spring
		sales.Transaction{Date: "2024-05-03", Weekday: "Fri", CoffeeName: "Tea", Money: 20},       // Spring
		sales.Transaction{Date: "not a date", Weekday: "Mon", CoffeeName: "Latte", Money: 10000},
	)

	seasons := aggregates.SeasonalAverages(records)

	assert.Len(t, seasons, 3)
	assert.Equal(t, "Winter", seasons[0].Season)
	assert.InDelta(t, 6.0, seasons[0].AvgRevenue, 1e-9)
	assert.Equal(t, "Spring", seasons[1].Season)
	assert.InDelta(t, 15.0, seasons[1].AvgRevenue, 1e-9)
	assert.Equal(t, "Summer", seasons[2].Season)
	assert.InDelta(t, 8.0, seasons[2].AvgRevenue, 1e-9)
}

func TestProductMixSharesPartitionRevenue(t *testing.T) {
	records := enrich(
		sales.Transaction{Date: "2024-01-01", Weekday: "Mon", CoffeeName: "Latte", Money: 60},
		sales.Transaction{Date: "2024-01-01", Weekday: "Mon", CoffeeName: "Latte", Money: 20},
		sales.Transaction{Date: "2024-01-02", Weekday: "Tue", CoffeeName: "Cold Brew", Money: 20},
	)

	mix := aggregates.ProductMix(records)

	assert.Len(t, mix, 2)
	// ascending by category: Cold Classics before Espresso Classics
	assert.Equal(t, "Cold Brew", mix[0].Product)
	assert.Equal(t, "Cold Classics", mix[0].Category)
	assert.InDelta(t, 0.2, mix[0].Share, 1e-9)
	assert.Equal(t, "Latte", mix[1].Product)
	assert.InDelta(t, 80.0, mix[1].Revenue, 1e-9)
	assert.InDelta(t, 0.8, mix[1].Share, 1e-9)

	var revenue, share float64
	for _, entry := range mix {
		revenue += entry.Revenue
		share += entry.Share
	}
	assert.InDelta(t, aggregates.TotalRevenue(records), revenue, 1e-9)
	assert.InDelta(t, 1.0, share, 1e-9)
}

func TestProductMixZeroRevenueHasZeroShares(t *testing.T) {
	records := enrich(
		sales.Transaction{Date: "2024-01-01", Weekday: "Mon", CoffeeName: "Latte", Money: 0},
		sales.Transaction{Date: "2024-01-02", Weekday: "Tue", CoffeeName: "Tea", Money: 0},
	)

	for _, entry := range aggregates.ProductMix(records) {
		assert.Equal(t, 0.0, entry.Share)
	}
}

func TestRegionalPerformanceAttachesCoordinates(t *testing.T) {
	records := enrich(
		sales.Transaction{Date: "2024-01-01", Weekday: "Mon", CoffeeName: "Latte", Money: 10}, // West Coast
		sales.Transaction{Date: "2024-01-08", Weekday: "Mon", CoffeeName: "Tea", Money: 30},   // West Coast
		sales.Transaction{Date: "2024-01-02", Weekday: "Thu", CoffeeName: "Latte", Money: 20}, // Midwest
	)

	regional := aggregates.RegionalPerformance(records)

	assert.Len(t, regional, 2)
	// ascending by region name
	assert.Equal(t, "Midwest", regional[0].Region)
	assert.Equal(t, 1, regional[0].Orders)
	assert.InDelta(t, 41.8781, regional[0].Lat, 1e-9)
	assert.InDelta(t, -87.6298, regional[0].Lon, 1e-9)

	assert.Equal(t, "West Coast", regional[1].Region)
	assert.InDelta(t, 40.0, regional[1].Revenue, 1e-9)
	assert.Equal(t, 2, regional[1].Orders)
}

func TestRegionalPerformanceFallbackRegionPlotsAtOrigin(t *testing.T) {
	records := enrich(
		sales.Transaction{Date: "2024-01-01", Weekday: "Someday", CoffeeName: "Latte", Money: 10},
	)

	regional := aggregates.RegionalPerformance(records)

	assert.Len(t, regional, 1)
	assert.Equal(t, "Pop-up Region", regional[0].Region)
	assert.Equal(t, 0.0, regional[0].Lat)
	assert.Equal(t, 0.0, regional[0].Lon)
}

func TestProfitabilityViewDerivedRatios(t *testing.T) {
	records := enrich(
		sales.Transaction{Date: "2024-01-01", Weekday: "Mon", CoffeeName: "Latte", Money: 10},
		sales.Transaction{Date: "2024-01-02", Weekday: "Tue", CoffeeName: "Latte", Money: 14},
		sales.Transaction{Date: "2024-01-03", Weekday: "Wed", CoffeeName: "Cold Brew", Money: 8},
	)

	profit := aggregates.ProfitabilityView(records)

	assert.Len(t, profit, 2)
	// ascending by product name
	coldBrew, latte := profit[0], profit[1]

	assert.Equal(t, "Cold Brew", coldBrew.Product)
	assert.Equal(t, 1, coldBrew.Units)
	assert.InDelta(t, 8.0, coldBrew.AvgPrice, 1e-9)
	assert.InDelta(t, 0.68, coldBrew.MarginPct, 1e-9)

	assert.Equal(t, "Latte", latte.Product)
	assert.InDelta(t, 24.0, latte.Revenue, 1e-9)
	assert.Equal(t, 2, latte.Units)
	assert.InDelta(t, 12.0, latte.AvgPrice, 1e-9)
	assert.InDelta(t, 24*0.72, latte.Margin, 1e-9)
	assert.InDelta(t, 0.72, latte.MarginPct, 1e-9)
}

func TestProfitabilityViewGuardsZeroDenominators(t *testing.T) {
	records := enrich(
		sales.Transaction{Date: "2024-01-01", Weekday: "Mon", CoffeeName: "Latte", Money: 0},
	)

	profit := aggregates.ProfitabilityView(records)

	assert.Len(t, profit, 1)
	assert.Equal(t, 0.0, profit[0].AvgPrice)
	assert.Equal(t, 0.0, profit[0].MarginPct)

	assert.Empty(t, aggregates.ProfitabilityView(nil))
}
