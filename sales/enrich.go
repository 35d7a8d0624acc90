package sales

import "github.com/QuintoFelipe/Coffee-Shop-Dashboard/refdata"

// Enrich derives the engineered fields for every transaction and
// returns the records in the same order. It is pure and total: no
// input row can make it fail, rows with unknown products or weekdays
// land in the refdata fallback buckets, and rows with unparseable
// dates keep zero calendar fields.
func Enrich(transactions []Transaction) []Record {
	records := make([]Record, len(transactions))
	for i, transaction := range transactions {
		records[i] = enrichOne(transaction)
	}
	return records
}

func enrichOne(t Transaction) Record {
	r := Record{Transaction: t, Units: 1}

	r.SalesDate = ParseDate(t.Date)
	if r.HasDate() {
		r.SalesYear = r.SalesDate.Year()
		r.SalesMonth = r.SalesDate.Month()
		r.MonthName = r.SalesDate.Format("Jan")
		r.Season = refdata.SeasonOf(r.SalesMonth)
	}

	r.ProductCategory = refdata.ProductCategory(t.CoffeeName)
	r.StoreName = refdata.StoreName(t.Weekday)
	r.Region = refdata.StoreRegion(r.StoreName)

	r.MarginPct = refdata.MarginRate(r.ProductCategory)
	r.MarginValue = t.Money * r.MarginPct
	return r
}
