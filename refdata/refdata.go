// Package refdata holds the static reference tables used to enrich raw
// sales rows: product categories, synthetic store identities, regions,
// region coordinates and margin rates. Every lookup has a documented
// fallback, so an unknown key degrades into a catch-all bucket instead
// of failing the pipeline.
package refdata

import "time"

// Fallback values returned when a key has no mapping.
const (
	FallbackCategory = "Seasonal Specials"
	FallbackStore    = "Pop-up Store"
	FallbackRegion   = "Pop-up Region"

	// DefaultMarginRate covers categories without a curated rate,
	// FallbackCategory included.
	DefaultMarginRate = 0.6
)

var productCategories = map[string]string{
	"Latte":         "Espresso Classics",
	"Cappuccino":    "Espresso Classics",
	"Americano":     "Espresso Classics",
	"Espresso":      "Espresso Classics",
	"Flat White":    "Espresso Classics",
	"Cold Brew":     "Cold Classics",
	"Iced Coffee":   "Cold Classics",
	"Frappuccino":   "Cold Classics",
	"Hot Chocolate": "Non Coffee",
	"Matcha Latte":  "Non Coffee",
	"Tea":           "Non Coffee",
}

// storeNames assigns a synthetic store to each weekday. The source data
// carries no store column, so the weekday is used as a stable proxy.
var storeNames = map[string]string{
	"Mon": "Market Street Roastery",
	"Tue": "Waterfront Kiosk",
	"Wed": "Arts District Cart",
	"Thu": "Lakeside Drive Thru",
	"Fri": "Tech Park Flagship",
	"Sat": "Suburban Express",
	"Sun": "Weekend Farmers Market",
}

var storeRegions = map[string]string{
	"Market Street Roastery": "West Coast",
	"Waterfront Kiosk":       "Pacific Northwest",
	"Arts District Cart":     "Mountain",
	"Lakeside Drive Thru":    "Midwest",
	"Tech Park Flagship":     "Northeast",
	"Suburban Express":       "South",
	"Weekend Farmers Market": "Southwest",
}

var regionCoordinates = map[string][2]float64{
	"West Coast":        {37.7749, -122.4194},
	"Pacific Northwest": {47.6062, -122.3321},
	"Mountain":          {39.7392, -104.9903},
	"Midwest":           {41.8781, -87.6298},
	"Northeast":         {40.7128, -74.0060},
	"South":             {29.7604, -95.3698},
	"Southwest":         {33.4484, -112.0740},
}

var marginRates = map[string]float64{
	"Espresso Classics": 0.72,
	"Cold Classics":     0.68,
	"Non Coffee":        0.58,
}

var seasons = map[time.Month]string{
	time.December:  "Winter",
	time.January:   "Winter",
	time.February:  "Winter",
	time.March:     "Spring",
	time.April:     "Spring",
	time.May:       "Spring",
	time.June:      "Summer",
	time.July:      "Summer",
	time.August:    "Summer",
	time.September: "Autumn",
	time.October:   "Autumn",
	time.November:  "Autumn",
}

// ProductCategory maps a product name to its category,
// FallbackCategory when the product is not curated.
func ProductCategory(coffeeName string) string {
	if category, ok := productCategories[coffeeName]; ok {
		return category
	}
	return FallbackCategory
}

// StoreName maps an abbreviated weekday ("Mon".."Sun") to its synthetic
// store, FallbackStore for anything else.
func StoreName(weekday string) string {
	if store, ok := storeNames[weekday]; ok {
		return store
	}
	return FallbackStore
}

// StoreRegion maps a store name to its region, FallbackRegion when the
// store is unknown.
func StoreRegion(storeName string) string {
	if region, ok := storeRegions[storeName]; ok {
		return region
	}
	return FallbackRegion
}

// RegionCoordinates returns the latitude and longitude a region is
// plotted at. Unknown regions land on (0, 0).
func RegionCoordinates(region string) (lat, lon float64) {
	coords := regionCoordinates[region]
	return coords[0], coords[1]
}

// MarginRate returns the assumed margin rate for a product category,
// DefaultMarginRate when the category has no curated rate.
func MarginRate(category string) float64 {
	if rate, ok := marginRates[category]; ok {
		return rate
	}
	return DefaultMarginRate
}

// SeasonOf maps a calendar month to its season. The zero Month maps to
// the empty string.
func SeasonOf(month time.Month) string {
	return seasons[month]
}

// Seasons lists every season in calendar order, Winter first. Grouped
// views use it to emit season rows in a stable order.
func Seasons() [4]string {
	return [4]string{"Winter", "Spring", "Summer", "Autumn"}
}
