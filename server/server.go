// Package server exposes the dashboard views over HTTP. The dataset is
// loaded and enriched once at startup and every endpoint computes its
// view from that in-memory snapshot, filtered per request.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/op/go-logging"

	"github.com/QuintoFelipe/Coffee-Shop-Dashboard/ingest"
	"github.com/QuintoFelipe/Coffee-Shop-Dashboard/sales"
)

var log = logging.MustGetLogger("log")

const shutdownTimeout = 5 * time.Second

// Server owns the enriched record snapshot and serves the dashboard
// API from it.
type Server struct {
	config     *Config
	records    []sales.Record
	snapshotID uuid.UUID
	sidebar    FilterOptions
	metrics    *Metrics

	httpServer *http.Server
}

// New loads the sales export named by the config, enriches it and
// builds a server around the resulting snapshot.
func New(config *Config) (*Server, error) {
	transactions, err := ingest.LoadTransactionsFile(config.DataPath)
	if err != nil {
		return nil, err
	}
	records := sales.Enrich(transactions)

	s := newWithRecords(config, records)
	log.Infof("Loaded %d transactions from %s (snapshot %s)",
		len(records), config.DataPath, s.snapshotID)
	return s, nil
}

// newWithRecords wires a server around an already-enriched snapshot.
func newWithRecords(config *Config, records []sales.Record) *Server {
	s := &Server{
		config:     config,
		records:    records,
		snapshotID: uuid.New(),
		sidebar:    collectFilterOptions(records),
		metrics:    NewMetrics(),
	}
	s.metrics.DatasetRows.Set(float64(len(records)))
	s.httpServer = &http.Server{
		Addr:    config.Address,
		Handler: s.Router(),
	}
	return s
}

// Router assembles the chi router with every endpoint mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestID)
	r.Use(s.accessLog)

	r.Route("/api", func(r chi.Router) {
		r.Get("/summary", s.instrumented("summary", s.handleSummary))
		r.Get("/seasonality", s.instrumented("seasonality", s.handleSeasonality))
		r.Get("/seasonal-averages", s.instrumented("seasonal_averages", s.handleSeasonalAverages))
		r.Get("/product-mix", s.instrumented("product_mix", s.handleProductMix))
		r.Get("/regions", s.instrumented("regions", s.handleRegions))
		r.Get("/profitability", s.instrumented("profitability", s.handleProfitability))
		r.Get("/leaderboard", s.instrumented("leaderboard", s.handleLeaderboard))
		r.Get("/filters", s.instrumented("filters", s.handleFilterOptions))
	})

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", s.metrics.Handler())

	return r
}

// Run blocks serving the API until the listener fails or Close drains
// it.
func (s *Server) Run() error {
	log.Infof("Dashboard API listening on %s", s.config.Address)
	err := s.httpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close drains in-flight requests and stops the listener.
func (s *Server) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Errorf("Failed to shut down http server: %v", err)
	}
}

type requestIDKey struct{}

// requestID tags every request with a fresh id for log correlation and
// echoes it back to the caller.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

func requestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return "-"
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Debugf("%s %s -> %d in %s (request %s)",
			r.Method, r.URL.Path, ww.Status(), time.Since(start), requestIDFrom(r.Context()))
	})
}

// instrumented wraps a handler with the per-view request metrics.
func (s *Server) instrumented(view string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next(ww, r)
		s.metrics.RequestsTotal.WithLabelValues(view, statusLabel(ww.Status())).Inc()
		s.metrics.RequestDuration.WithLabelValues(view).Observe(time.Since(start).Seconds())
	}
}
