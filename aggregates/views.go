package aggregates

import (
	"sort"
	"time"

	"github.com/QuintoFelipe/Coffee-Shop-Dashboard/refdata"
	"github.com/QuintoFelipe/Coffee-Shop-Dashboard/sales"
)

// DailyRevenue is one point of the revenue-by-day series.
type DailyRevenue struct {
	Date    time.Time
	Revenue float64
}

// Seasonality totals revenue per calendar day, ascending by date.
// Records without a parseable date have no day to land on and are
// excluded.
func Seasonality(records []sales.Record) []DailyRevenue {
	byDay := make(map[time.Time]float64)
	for _, r := range records {
		if !r.HasDate() {
			continue
		}
		byDay[r.SalesDate] += r.Money
	}

	days := make([]time.Time, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	out := make([]DailyRevenue, len(days))
	for i, day := range days {
		out[i] = DailyRevenue{Date: day, Revenue: byDay[day]}
	}
	return out
}

// SeasonRevenue is one season's average transaction value.
type SeasonRevenue struct {
	Season     string  `json:"season"`
	AvgRevenue float64 `json:"avg_revenue"`
}

// SeasonalAverages computes the mean sale amount per season, emitted in
// calendar order starting at Winter. Seasons absent from the data are
// omitted, and undated records belong to no season.
func SeasonalAverages(records []sales.Record) []SeasonRevenue {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range records {
		if !r.HasDate() {
			continue
		}
		sums[r.Season] += r.Money
		counts[r.Season]++
	}

	out := make([]SeasonRevenue, 0, len(sums))
	for _, season := range refdata.Seasons() {
		if counts[season] == 0 {
			continue
		}
		out = append(out, SeasonRevenue{
			Season:     season,
			AvgRevenue: sums[season] / float64(counts[season]),
		})
	}
	return out
}

// MixEntry is one product's slice of the revenue mix.
type MixEntry struct {
	Category string  `json:"product_category"`
	Product  string  `json:"coffee_name"`
	Revenue  float64 `json:"revenue"`
	Share    float64 `json:"share"`
}

type mixKey struct {
	category, product string
}

// ProductMix totals revenue per (category, product) pair and attaches
// each pair's share of the whole set's revenue. Rows come out ascending
// by category then product. With zero total revenue every share is
// zero.
func ProductMix(records []sales.Record) []MixEntry {
	revenue := make(map[mixKey]float64)
	for _, r := range records {
		revenue[mixKey{r.ProductCategory, r.CoffeeName}] += r.Money
	}

	keys := make([]mixKey, 0, len(revenue))
	var total float64
	for key, value := range revenue {
		keys = append(keys, key)
		total += value
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].category != keys[j].category {
			return keys[i].category < keys[j].category
		}
		return keys[i].product < keys[j].product
	})

	out := make([]MixEntry, len(keys))
	for i, key := range keys {
		entry := MixEntry{Category: key.category, Product: key.product, Revenue: revenue[key]}
		if total != 0 {
			entry.Share = entry.Revenue / total
		}
		out[i] = entry
	}
	return out
}

// RegionStats is one region's aggregate row, with the coordinates the
// dashboard plots it at.
type RegionStats struct {
	Region  string  `json:"region"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// RegionalPerformance totals revenue and order counts per region,
// ascending by region name. Every record belongs to a region thanks to
// the enrichment fallbacks, so no row is ever dropped here.
func RegionalPerformance(records []sales.Record) []RegionStats {
	type accumulator struct {
		revenue float64
		orders  int
	}
	byRegion := make(map[string]*accumulator)
	for _, r := range records {
		acc := byRegion[r.Region]
		if acc == nil {
			acc = &accumulator{}
			byRegion[r.Region] = acc
		}
		acc.revenue += r.Money
		acc.orders += r.Units
	}

	regions := make([]string, 0, len(byRegion))
	for region := range byRegion {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	out := make([]RegionStats, len(regions))
	for i, region := range regions {
		lat, lon := refdata.RegionCoordinates(region)
		out[i] = RegionStats{
			Region:  region,
			Revenue: byRegion[region].revenue,
			Orders:  byRegion[region].orders,
			Lat:     lat,
			Lon:     lon,
		}
	}
	return out
}

// ProductProfit is one product's profitability row.
type ProductProfit struct {
	Product   string  `json:"coffee_name"`
	Revenue   float64 `json:"revenue"`
	Units     int     `json:"units"`
	Margin    float64 `json:"margin"`
	AvgPrice  float64 `json:"avg_price"`
	MarginPct float64 `json:"margin_pct"`
}

// ProfitabilityView totals revenue, units and margin per product and
// derives average price and margin percentage, ascending by product
// name. Both derived ratios guard their denominators and report zero
// instead of dividing by zero.
func ProfitabilityView(records []sales.Record) []ProductProfit {
	byProduct := make(map[string]*ProductProfit)
	for _, r := range records {
		row := byProduct[r.CoffeeName]
		if row == nil {
			row = &ProductProfit{Product: r.CoffeeName}
			byProduct[r.CoffeeName] = row
		}
		row.Revenue += r.Money
		row.Units += r.Units
		row.Margin += r.MarginValue
	}

	products := make([]string, 0, len(byProduct))
	for product := range byProduct {
		products = append(products, product)
	}
	sort.Strings(products)

	out := make([]ProductProfit, len(products))
	for i, product := range products {
		row := *byProduct[product]
		if row.Units != 0 {
			row.AvgPrice = row.Revenue / float64(row.Units)
		}
		if row.Revenue != 0 {
			row.MarginPct = row.Margin / row.Revenue
		}
		out[i] = row
	}
	return out
}
