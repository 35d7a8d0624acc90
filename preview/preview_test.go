package preview_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/QuintoFelipe/Coffee-Shop-Dashboard/preview"
	"github.com/QuintoFelipe/Coffee-Shop-Dashboard/sales"
	"github.com/stretchr/testify/assert"
)

func fixture() []sales.Record {
	return sales.Enrich([]sales.Transaction{
		{Date: "2024-03-01", Weekday: "Fri", CoffeeName: "Latte", Money: 500},
		{Date: "2024-03-02", Weekday: "Sat", CoffeeName: "Cold Brew", Money: 700},
		{Date: "2024-03-03", Weekday: "Sun", CoffeeName: "Tea", Money: 300},
	})
}

func TestRenderContainsEveryPanel(t *testing.T) {
	svg := preview.Render(fixture())

	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
	assert.Contains(t, svg, "Coffee Shop Performance Dashboard")
	assert.Contains(t, svg, "Total revenue")
	assert.Contains(t, svg, "Average ticket")
	assert.Contains(t, svg, "Total orders")
	assert.Contains(t, svg, "Seasonality pulse")
	assert.Contains(t, svg, "Store leaderboard")
	assert.Contains(t, svg, "Product mix")
}

func TestRenderFormatsCurrencyWithSeparators(t *testing.T) {
	svg := preview.Render(fixture())

	// 500 + 700 + 300
	assert.Contains(t, svg, "$1,500")
	// mean ticket stays below the grouping threshold
	assert.Contains(t, svg, "$500")
}

func TestRenderDrawsSeasonalityLine(t *testing.T) {
	svg := preview.Render(fixture())

	assert.Contains(t, svg, "<polyline")
}

func TestRenderListsTopStoresAndCategories(t *testing.T) {
	svg := preview.Render(fixture())

	assert.Contains(t, svg, "Suburban Express")
	assert.Contains(t, svg, "Weekend Farmers Market")
	assert.Contains(t, svg, "Cold Classics:")
	assert.Contains(t, svg, "Espresso Classics:")
}

func TestRenderIsDeterministic(t *testing.T) {
	records := fixture()

	first := preview.Render(records)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, preview.Render(records))
	}
}

func TestRenderEmptyDataset(t *testing.T) {
	svg := preview.Render(nil)

	assert.Contains(t, svg, "Total revenue")
	assert.Contains(t, svg, "$0")
	assert.NotContains(t, svg, "<polyline")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashboard-preview.svg")

	err := preview.WriteFile(fixture(), path)

	assert.NoError(t, err)
	content, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(content), "<svg"))
}

func TestWriteFileBadPath(t *testing.T) {
	err := preview.WriteFile(fixture(), filepath.Join(t.TempDir(), "missing", "preview.svg"))

	assert.Error(t, err)
}
