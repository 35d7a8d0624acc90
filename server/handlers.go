package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/QuintoFelipe/Coffee-Shop-Dashboard/aggregates"
	"github.com/QuintoFelipe/Coffee-Shop-Dashboard/filters"
	"github.com/QuintoFelipe/Coffee-Shop-Dashboard/sales"
)

var (
	errStartEndPair  = errors.New("start and end must be provided together")
	errBadDate       = errors.New("dates must look like 2006-01-02")
	errInvertedRange = errors.New("end must not precede start")
)

// SummaryResponse carries the headline KPIs for the filtered selection.
type SummaryResponse struct {
	TotalRevenue  float64 `json:"total_revenue"`
	AverageTicket float64 `json:"average_ticket"`
	GrossMargin   float64 `json:"gross_margin"`
	YoYGrowth     float64 `json:"yoy_growth"`
	Orders        int     `json:"orders"`
}

// DailyRow is one point of the seasonality series on the wire.
type DailyRow struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// FilterOptions describes the selectable filter values of the loaded
// snapshot, so clients can build their sidebars without guessing.
type FilterOptions struct {
	FirstDate  string   `json:"first_date"`
	LastDate   string   `json:"last_date"`
	Categories []string `json:"categories"`
	Regions    []string `json:"regions"`
}

type healthResponse struct {
	Status   string `json:"status"`
	Snapshot string `json:"snapshot"`
	Records  int    `json:"records"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	selected, ok := s.filtered(w, r)
	if !ok {
		return
	}
	respond(w, http.StatusOK, SummaryResponse{
		TotalRevenue:  aggregates.TotalRevenue(selected),
		AverageTicket: aggregates.AverageTicket(selected),
		GrossMargin:   aggregates.GrossMargin(selected),
		YoYGrowth:     aggregates.YoYGrowth(selected),
		Orders:        len(selected),
	})
}

func (s *Server) handleSeasonality(w http.ResponseWriter, r *http.Request) {
	selected, ok := s.filtered(w, r)
	if !ok {
		return
	}
	daily := aggregates.Seasonality(selected)
	rows := make([]DailyRow, len(daily))
	for i, d := range daily {
		rows[i] = DailyRow{Date: d.Date.Format("2006-01-02"), Revenue: d.Revenue}
	}
	respond(w, http.StatusOK, rows)
}

func (s *Server) handleSeasonalAverages(w http.ResponseWriter, r *http.Request) {
	selected, ok := s.filtered(w, r)
	if !ok {
		return
	}
	respond(w, http.StatusOK, aggregates.SeasonalAverages(selected))
}

func (s *Server) handleProductMix(w http.ResponseWriter, r *http.Request) {
	selected, ok := s.filtered(w, r)
	if !ok {
		return
	}
	respond(w, http.StatusOK, aggregates.ProductMix(selected))
}

func (s *Server) handleRegions(w http.ResponseWriter, r *http.Request) {
	selected, ok := s.filtered(w, r)
	if !ok {
		return
	}
	respond(w, http.StatusOK, aggregates.RegionalPerformance(selected))
}

func (s *Server) handleProfitability(w http.ResponseWriter, r *http.Request) {
	selected, ok := s.filtered(w, r)
	if !ok {
		return
	}
	respond(w, http.StatusOK, aggregates.ProfitabilityView(selected))
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	topN := s.config.DefaultTopN
	if raw := r.URL.Query().Get("top_n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondError(w, http.StatusBadRequest, "top_n must be a non-negative integer")
			return
		}
		topN = parsed
	}

	selected, ok := s.filtered(w, r)
	if !ok {
		return
	}
	respond(w, http.StatusOK, aggregates.RankStores(selected, topN))
}

func (s *Server) handleFilterOptions(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusOK, s.sidebar)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusOK, healthResponse{
		Status:   "ok",
		Snapshot: s.snapshotID.String(),
		Records:  len(s.records),
	})
}

// filtered applies the request's filter to the snapshot. On a bad
// filter it answers 400 itself and reports false.
func (s *Server) filtered(w http.ResponseWriter, r *http.Request) ([]sales.Record, bool) {
	f, err := parseFilter(r.URL.Query())
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return filters.Apply(s.records, f), true
}

// parseFilter extracts the sidebar selections from the query string.
// Absent parameters and empty lists restrict nothing; the date bounds
// must come as a pair.
func parseFilter(query url.Values) (filters.Filter, error) {
	var f filters.Filter

	start := strings.TrimSpace(query.Get("start"))
	end := strings.TrimSpace(query.Get("end"))
	switch {
	case start == "" && end == "":
		// no date clause
	case start == "" || end == "":
		return f, errStartEndPair
	default:
		startDay := sales.ParseDate(start)
		endDay := sales.ParseDate(end)
		if startDay.IsZero() || endDay.IsZero() {
			return f, errBadDate
		}
		if endDay.Before(startDay) {
			return f, errInvertedRange
		}
		f.Dates = &filters.DateRange{Start: startDay, End: endDay}
	}

	f.Categories = multiValues(query, "categories")
	f.Regions = multiValues(query, "regions")
	return f, nil
}

// multiValues collects a repeatable parameter, additionally splitting
// each occurrence on commas. Blank entries are dropped.
func multiValues(query url.Values, name string) []string {
	var out []string
	for _, raw := range query[name] {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// collectFilterOptions precomputes the sidebar values for a snapshot.
func collectFilterOptions(records []sales.Record) FilterOptions {
	options := FilterOptions{
		Categories: []string{},
		Regions:    []string{},
	}

	categories := make(map[string]struct{})
	regions := make(map[string]struct{})
	var first, last time.Time
	for _, r := range records {
		categories[r.ProductCategory] = struct{}{}
		regions[r.Region] = struct{}{}
		if !r.HasDate() {
			continue
		}
		if first.IsZero() || r.SalesDate.Before(first) {
			first = r.SalesDate
		}
		if last.IsZero() || r.SalesDate.After(last) {
			last = r.SalesDate
		}
	}

	for category := range categories {
		options.Categories = append(options.Categories, category)
	}
	sort.Strings(options.Categories)
	for region := range regions {
		options.Regions = append(options.Regions, region)
	}
	sort.Strings(options.Regions)

	if !first.IsZero() {
		options.FirstDate = first.Format("2006-01-02")
		options.LastDate = last.Format("2006-01-02")
	}
	return options
}

func respond(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Errorf("Failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respond(w, status, errorResponse{Error: message})
}

func statusLabel(status int) string {
	if status == 0 {
		status = http.StatusOK
	}
	return strconv.Itoa(status)
}
