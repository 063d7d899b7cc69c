package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/kilianp07/hybridpark/api"
	"github.com/kilianp07/hybridpark/config"
	"github.com/kilianp07/hybridpark/core/assets"
	"github.com/kilianp07/hybridpark/core/dashboard"
	"github.com/kilianp07/hybridpark/core/events"
	"github.com/kilianp07/hybridpark/core/insight"
	coremetrics "github.com/kilianp07/hybridpark/core/metrics"
	"github.com/kilianp07/hybridpark/core/model"
	"github.com/kilianp07/hybridpark/core/simulator"
	infrainsight "github.com/kilianp07/hybridpark/infra/insight"
	"github.com/kilianp07/hybridpark/infra/logger"
	"github.com/kilianp07/hybridpark/infra/metrics"
	"github.com/kilianp07/hybridpark/infra/mqtt"
	"github.com/kilianp07/hybridpark/internal/eventbus"
)

// Service wires the simulator, the insight boundary and the HTTP API.
type Service struct {
	cfg       *config.Config
	store     *simulator.Store
	cells     []model.BESSCell
	Insight   *insight.Service
	sink      coremetrics.MetricsSink
	publisher mqtt.Publisher
	bus       eventbus.EventBus
	log       logger.Logger

	initial    model.DayPlan
	initialDur time.Duration
}

// Option customises a Service.
type Option func(*options)

type options struct {
	gen       insight.Generator
	publisher mqtt.Publisher
}

// WithGenerator replaces the Gemini generator.
func WithGenerator(g insight.Generator) Option { return func(o *options) { o.gen = g } }

// WithPublisher replaces the MQTT publisher. It is used even when mqtt is
// disabled in the configuration.
func WithPublisher(p mqtt.Publisher) Option { return func(o *options) { o.publisher = p } }

// New creates a Service from the configuration and generates the first plan.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*Service, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	logg := logger.New("service")
	if err := logger.SetLevel(cfg.Log.Level); err != nil {
		return nil, err
	}

	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}
	rec, _ := sink.(coremetrics.InsightRecorder)

	gen := o.gen
	if gen == nil {
		g, err := infrainsight.NewGeminiGenerator(ctx, cfg.Insight)
		if err != nil {
			// the service keeps running and every insight is the fallback
			logg.Errorf("insight generator: %v", err)
		} else {
			gen = g
		}
	}

	publisher := o.publisher
	if publisher == nil && cfg.MQTT.Enabled {
		client, err := mqtt.NewPahoClient(cfg.MQTT)
		if err != nil {
			return nil, fmt.Errorf("mqtt client: %w", err)
		}
		publisher = client
	}

	sim, err := simulator.New(cfg.Simulator.Params, simulator.NewSeededSource(cfg.Simulator.Seed))
	if err != nil {
		return nil, fmt.Errorf("simulator: %w", err)
	}
	bus := eventbus.New()
	start := time.Now()
	store := simulator.NewStore(sim, start)

	svc := &Service{
		cfg:        cfg,
		store:      store,
		cells:      assets.Cells(simulator.NewSeededSource(cfg.Simulator.Seed), assets.RackCells),
		Insight:    insight.NewService(gen, cfg.Insight, logger.New("insight"), rec, bus),
		sink:       sink,
		publisher:  publisher,
		bus:        bus,
		log:        logg,
		initial:    store.Plan(),
		initialDur: time.Since(start),
	}
	return svc, nil
}

// Plans exposes the plan store.
func (s *Service) Plans() simulator.PlanSource { return s.store }

// Bus returns the service event bus.
func (s *Service) Bus() eventbus.EventBus { return s.bus }

// Regenerate runs a new simulation and announces the plan.
func (s *Service) Regenerate(ctx context.Context) model.DayPlan {
	start := time.Now()
	plan := s.store.Regenerate(start)
	s.announce(ctx, plan, time.Since(start))
	return plan
}

// announce publishes the simulation event and forwards the plan over MQTT.
func (s *Service) announce(ctx context.Context, plan model.DayPlan, dur time.Duration) {
	kpi := dashboard.Summary(plan, s.cfg.Simulator.Params.ArbitrageThresholdINR)
	s.bus.Publish(events.SimulationEvent{
		PlanID:          plan.ID,
		Records:         plan.Len(),
		TotalSolarMWh:   kpi.TotalSolarMWh,
		TotalHydrogenKg: kpi.TotalHydrogenKg,
		ArbitrageHours:  kpi.ArbitrageHours,
		Duration:        dur,
		Time:            plan.GeneratedAt,
	})
	s.log.Infof("plan %s generated: %.1f MWh solar, %d arbitrage hours", plan.ID, kpi.TotalSolarMWh, kpi.ArbitrageHours)
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishPlan(ctx, plan); err != nil {
		s.log.Errorf("publish plan %s: %v", plan.ID, err)
	}
}

// Handler builds the HTTP API.
func (s *Service) Handler() http.Handler {
	return api.NewRouter(api.Deps{
		Plans:              s.store,
		Regenerate:         s.Regenerate,
		Cells:              s.cells,
		Analyst:            s.Insight,
		ArbitrageThreshold: s.cfg.Simulator.Params.ArbitrageThresholdINR,
		StreamInterval:     s.cfg.HTTP.StreamInterval(),
		AllowedOrigins:     s.cfg.HTTP.AllowedOrigins,
		Log:                logger.New("api"),
	})
}

// Run starts the metrics collection and serves the API until the context is
// cancelled.
func (s *Service) Run(ctx context.Context) error {
	metrics.StartEventCollector(ctx, s.bus, s.sink)
	if addr := s.cfg.Metrics.PrometheusAddr; addr != "" {
		go func() {
			if err := metrics.StartPromServer(ctx, addr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	s.announce(ctx, s.initial, s.initialDur)
	return api.Serve(ctx, s.cfg.HTTP.Addr, s.Handler(), s.log)
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	if s.publisher != nil {
		s.publisher.Disconnect()
	}
	s.bus.Close()
	return nil
}
