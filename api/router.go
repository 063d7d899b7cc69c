// Package api assembles the HTTP surface consumed by the operations dashboard.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/cors"

	"github.com/kilianp07/hybridpark/api/dashboard"
	"github.com/kilianp07/hybridpark/api/dispatch"
	"github.com/kilianp07/hybridpark/api/insight"
	"github.com/kilianp07/hybridpark/api/maintenance"
	"github.com/kilianp07/hybridpark/api/market"
	"github.com/kilianp07/hybridpark/api/stream"
	"github.com/kilianp07/hybridpark/core/logger"
	"github.com/kilianp07/hybridpark/core/model"
	"github.com/kilianp07/hybridpark/core/simulator"
)

// Analyst serves both insight kinds.
type Analyst interface {
	insight.Analyst
	maintenance.Diagnoser
}

// Deps are the collaborators of the HTTP handlers.
type Deps struct {
	Plans              simulator.PlanSource
	Regenerate         func(ctx context.Context) model.DayPlan
	Cells              []model.BESSCell
	Analyst            Analyst
	ArbitrageThreshold float64
	StreamInterval     time.Duration
	AllowedOrigins     []string
	Log                logger.Logger
}

// NewRouter registers every route and wraps the mux with CORS.
func NewRouter(d Deps) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/api/dispatch/day", dispatch.NewDayHandler(d.Plans))
	mux.Handle("/api/dispatch/hour/", dispatch.NewHourHandler(d.Plans))
	if d.Regenerate != nil {
		mux.Handle("/api/dispatch/regenerate", dispatch.NewRegenerateHandler(d.Regenerate))
	}
	mux.Handle("/api/dispatch/export", dispatch.NewExportHandler(d.Plans, d.ArbitrageThreshold))
	mux.Handle("/api/dispatch/stream", stream.NewHandler(d.Plans, d.StreamInterval, d.AllowedOrigins, d.Log))
	mux.Handle("/api/dashboard/kpi", dashboard.NewKPIHandler(d.Plans, d.ArbitrageThreshold))
	mux.Handle("/api/assets", dashboard.NewAssetsHandler())
	mux.Handle("/api/maintenance/cells", maintenance.NewCellsHandler(d.Cells))
	mux.Handle("/api/maintenance/diagnosis", maintenance.NewDiagnosisHandler(d.Cells, d.Analyst))
	mux.Handle("/api/market/bids", market.NewBidsHandler())
	mux.Handle("/api/market/revenue", market.NewRevenueHandler())
	mux.Handle("/api/market/strategies", market.NewStrategyHandler())
	mux.Handle("/api/insight", insight.NewHandler(d.Plans, d.Analyst))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	origins := d.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(mux)
}

// Serve runs the HTTP server until the context is canceled.
func Serve(ctx context.Context, addr string, h http.Handler, log logger.Logger) error {
	srv := &http.Server{Addr: addr, Handler: h, ReadHeaderTimeout: 5 * time.Second}
	errCh := make(chan error, 1)
	go func() {
		log.Infof("http api listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
