package aggregates

import "github.com/QuintoFelipe/Coffee-Shop-Dashboard/sales"

// DefaultTopN is the leaderboard depth the dashboard shows when a
// request does not ask for one.
const DefaultTopN = 5

// StoreRevenue is one leaderboard row.
type StoreRevenue struct {
	Store   string  `json:"store_name"`
	Region  string  `json:"region"`
	Revenue float64 `json:"revenue"`
}

type storeKey struct {
	store, region string
}

// RankStores groups records by store and region, totals their revenue
// and returns the topN stores ordered by revenue descending. Revenue
// ties keep the stores' first-appearance order, so identical input
// always yields an identical leaderboard. Asking for more stores than
// exist returns them all; a topN of zero or less returns none.
func RankStores(records []sales.Record, topN int) []StoreRevenue {
	totals := make(map[storeKey]float64)
	arrival := make([]storeKey, 0)
	for _, r := range records {
		key := storeKey{store: r.StoreName, region: r.Region}
		if _, seen := totals[key]; !seen {
			arrival = append(arrival, key)
		}
		totals[key] += r.Money
	}

	top := NewTopN[storeKey, float64](topN)
	for seq, key := range arrival {
		top.Insert(Entry[storeKey, float64]{Key: key, Value: totals[key], Seq: seq})
	}

	entries := top.Values()
	out := make([]StoreRevenue, len(entries))
	for i, e := range entries {
		out[i] = StoreRevenue{Store: e.Key.store, Region: e.Key.region, Revenue: e.Value}
	}
	return out
}
