// Package preview renders a static SVG snapshot of the dashboard
// layout: KPI cards, the seasonality line, the store leaderboard and
// the product mix chips. The asset is checked into docs and embedded in
// readmes, so rendering is deterministic for a given dataset.
package preview

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/QuintoFelipe/Coffee-Shop-Dashboard/aggregates"
	"github.com/QuintoFelipe/Coffee-Shop-Dashboard/sales"
)

const (
	svgWidth  = 1200
	svgHeight = 720

	chartWidth  = 520.0
	chartHeight = 180.0

	leaderboardDepth = 5
	categoryChips    = 4
)

type point struct {
	x, y float64
}

type categoryShare struct {
	category string
	share    float64
}

var currencyPrinter = message.NewPrinter(language.English)

func currency(value float64) string {
	return currencyPrinter.Sprintf("$%.0f", value)
}

// Render builds the SVG preview for an enriched record set.
func Render(records []sales.Record) string {
	points := scalePoints(aggregates.Seasonality(records))
	topStores := aggregates.RankStores(records, leaderboardDepth)
	topCategories := rankCategories(records, categoryChips)

	var b strings.Builder
	fmt.Fprintf(&b,
		"<svg xmlns='http://www.w3.org/2000/svg' width='%d' height='%d' viewBox='0 0 %d %d'>",
		svgWidth, svgHeight, svgWidth, svgHeight)
	b.WriteString("<defs>")
	b.WriteString("<linearGradient id='bgGrad' x1='0%' y1='0%' x2='100%' y2='100%'>")
	b.WriteString("<stop offset='0%' stop-color='#0f172a' />")
	b.WriteString("<stop offset='100%' stop-color='#1e293b' />")
	b.WriteString("</linearGradient>")
	b.WriteString("</defs>")
	b.WriteString("<rect width='100%' height='100%' fill='url(#bgGrad)' rx='32' />")
	b.WriteString("<text x='60' y='70' fill='#f8fafc' font-size='32' font-family='Inter, sans-serif'>Coffee Shop Performance Dashboard</text>")
	b.WriteString("<text x='60' y='105' fill='#94a3b8' font-size='18'>Sample view rendered from the latest sales export</text>")

	writeKPICards(&b, records)
	writeSeasonality(&b, points)
	writeLeaderboard(&b, topStores)
	writeProductMix(&b, topCategories)

	b.WriteString("</svg>")
	return b.String()
}

// WriteFile renders the preview and writes it to path.
func WriteFile(records []sales.Record, path string) error {
	if err := os.WriteFile(path, []byte(Render(records)), 0o644); err != nil {
		return fmt.Errorf("could not write preview: %w", err)
	}
	return nil
}

func writeKPICards(b *strings.Builder, records []sales.Record) {
	cards := []struct {
		label, value, caption string
	}{
		{
			label:   "Total revenue",
			value:   currency(aggregates.TotalRevenue(records)),
			caption: fmt.Sprintf("YoY %+.1f%%", aggregates.YoYGrowth(records)),
		},
		{
			label:   "Average ticket",
			value:   currency(aggregates.AverageTicket(records)),
			caption: "per order",
		},
		{
			label:   "Total orders",
			value:   currencyPrinter.Sprintf("%d", len(records)),
			caption: "transactions",
		},
	}

	for i, card := range cards {
		x := 60 + i*360
		fmt.Fprintf(b, "<g transform='translate(%d,140)'>", x)
		b.WriteString("<rect width='320' height='130' rx='24' fill='rgba(15,23,42,0.8)' stroke='rgba(148,163,184,0.3)' />")
		fmt.Fprintf(b, "<text x='24' y='48' fill='#94a3b8' font-size='16'>%s</text>", card.label)
		fmt.Fprintf(b, "<text x='24' y='92' fill='#f8fafc' font-size='36' font-weight='600'>%s</text>", card.value)
		fmt.Fprintf(b, "<text x='24' y='118' fill='#38bdf8' font-size='14'>%s</text>", card.caption)
		b.WriteString("</g>")
	}
}

func writeSeasonality(b *strings.Builder, points []point) {
	b.WriteString("<g transform='translate(40,310)'>")
	b.WriteString("<rect width='560' height='260' rx='24' fill='rgba(15,23,42,0.8)' stroke='rgba(148,163,184,0.2)' />")
	b.WriteString("<text x='24' y='46' fill='#f8fafc' font-size='20'>Seasonality pulse</text>")
	if len(points) > 0 {
		coords := make([]string, len(points))
		for i, p := range points {
			// the polyline lives inside the panel's translated group
			coords[i] = fmt.Sprintf("%.1f,%.1f", p.x-40, p.y-230)
		}
		fmt.Fprintf(b, "<polyline fill='none' stroke='#f97316' stroke-width='3' points='%s' />",
			strings.Join(coords, " "))
	}
	b.WriteString("</g>")
}

func writeLeaderboard(b *strings.Builder, stores []aggregates.StoreRevenue) {
	b.WriteString("<g transform='translate(640,310)'>")
	b.WriteString("<rect width='520' height='260' rx='24' fill='rgba(15,23,42,0.8)' stroke='rgba(148,163,184,0.2)' />")
	b.WriteString("<text x='24' y='46' fill='#f8fafc' font-size='20'>Store leaderboard</text>")
	if len(stores) > 0 {
		maxRevenue := stores[0].Revenue
		for i, store := range stores {
			barY := 80 + i*36
			barWidth := 0.0
			if maxRevenue != 0 {
				barWidth = store.Revenue / maxRevenue * 420
			}
			fmt.Fprintf(b, "<text x='24' y='%d' fill='#94a3b8' font-size='14'>%s</text>", barY, store.Store)
			fmt.Fprintf(b, "<rect x='220' y='%d' width='%.1f' height='18' fill='#34d399' rx='9' />", barY-14, barWidth)
			fmt.Fprintf(b, "<text x='%.1f' y='%d' fill='#f8fafc' font-size='14'>%s</text>", 220+barWidth+10, barY, currency(store.Revenue))
		}
	}
	b.WriteString("</g>")
}

func writeProductMix(b *strings.Builder, categories []categoryShare) {
	b.WriteString("<g transform='translate(40,600)'>")
	b.WriteString("<rect width='1120' height='90' rx='24' fill='rgba(15,23,42,0.8)' stroke='rgba(148,163,184,0.2)' />")
	b.WriteString("<text x='24' y='46' fill='#f8fafc' font-size='20'>Product mix</text>")
	for i, c := range categories {
		fmt.Fprintf(b, "<g transform='translate(%d,20)'>", 260+i*200)
		b.WriteString("<rect width='180' height='50' rx='16' fill='rgba(56,189,248,0.15)' stroke='rgba(56,189,248,0.4)' />")
		fmt.Fprintf(b, "<text x='16' y='35' fill='#f8fafc' font-size='16'>%s: %.1f%%</text>", c.category, c.share)
		b.WriteString("</g>")
	}
	b.WriteString("</g>")
}

// scalePoints projects the daily revenue series into the seasonality
// panel's chart box. The x axis spans the observed date range and the y
// axis is anchored at zero.
func scalePoints(daily []aggregates.DailyRevenue) []point {
	if len(daily) == 0 {
		return nil
	}

	minDate := daily[0].Date
	maxDate := daily[len(daily)-1].Date
	var maxValue float64
	for _, d := range daily {
		if d.Revenue > maxValue {
			maxValue = d.Revenue
		}
	}
	if maxValue == 0 {
		maxValue = 1
	}
	totalDays := maxDate.Sub(minDate).Hours() / 24
	if totalDays < 1 {
		totalDays = 1
	}

	points := make([]point, len(daily))
	for i, d := range daily {
		days := d.Date.Sub(minDate).Hours() / 24
		points[i] = point{
			x: 60 + days/totalDays*chartWidth,
			y: 320 - d.Revenue/maxValue*chartHeight,
		}
	}
	return points
}

// rankCategories totals revenue per category and keeps the top few for
// the mix chips. Shares are relative to the kept categories, matching
// what the chips visually represent.
func rankCategories(records []sales.Record, depth int) []categoryShare {
	totals := make(map[string]float64)
	arrival := make([]string, 0)
	for _, r := range records {
		if _, seen := totals[r.ProductCategory]; !seen {
			arrival = append(arrival, r.ProductCategory)
		}
		totals[r.ProductCategory] += r.Money
	}

	top := aggregates.NewTopN[string, float64](depth)
	for seq, category := range arrival {
		top.Insert(aggregates.Entry[string, float64]{Key: category, Value: totals[category], Seq: seq})
	}

	entries := top.Values()
	var keptTotal float64
	for _, e := range entries {
		keptTotal += e.Value
	}
	if keptTotal == 0 {
		keptTotal = 1
	}

	out := make([]categoryShare, len(entries))
	for i, e := range entries {
		out[i] = categoryShare{category: e.Key, share: e.Value / keptTotal * 100}
	}
	return out
}
