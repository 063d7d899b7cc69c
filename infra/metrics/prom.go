package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/kilianp07/hybridpark/core/metrics"
)

// PromSink records simulation runs and insight requests in Prometheus metrics.
type PromSink struct {
	runs           prometheus.Counter
	runDuration    prometheus.Histogram
	solarMWh       prometheus.Gauge
	hydrogenKg     prometheus.Gauge
	arbitrageHours prometheus.Gauge
	insights       *prometheus.CounterVec
	insightLatency *prometheus.HistogramVec
}

// NewPromSink registers metrics on the default Prometheus registerer. The
// HTTP endpoint is started separately with StartPromServer.
func NewPromSink() (*PromSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	s := &PromSink{
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "simulation_runs_total",
			Help: "Total number of generated day plans",
		}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "simulation_run_duration_seconds",
			Help:    "Time spent generating a day plan",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
		}),
		solarMWh: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "simulation_solar_mwh",
			Help: "Solar energy of the latest day plan",
		}),
		hydrogenKg: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "simulation_hydrogen_kg",
			Help: "Hydrogen produced in the latest day plan",
		}),
		arbitrageHours: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "simulation_arbitrage_hours",
			Help: "Hours of the latest day plan priced above the arbitrage threshold",
		}),
		insights: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "insight_requests_total",
			Help: "Insight requests by kind and whether the fallback was served",
		}, []string{"kind", "fallback"}),
		insightLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "insight_latency_seconds",
			Help:    "Time spent waiting for the insight provider",
			Buckets: prometheus.DefBuckets,
		}, []string{"kind"}),
	}

	var err error
	if s.runs, err = register(reg, s.runs); err != nil {
		return nil, err
	}
	if s.runDuration, err = register(reg, s.runDuration); err != nil {
		return nil, err
	}
	if s.solarMWh, err = register(reg, s.solarMWh); err != nil {
		return nil, err
	}
	if s.hydrogenKg, err = register(reg, s.hydrogenKg); err != nil {
		return nil, err
	}
	if s.arbitrageHours, err = register(reg, s.arbitrageHours); err != nil {
		return nil, err
	}
	if s.insights, err = register(reg, s.insights); err != nil {
		return nil, err
	}
	if s.insightLatency, err = register(reg, s.insightLatency); err != nil {
		return nil, err
	}
	return s, nil
}

// register reuses an already registered collector of the same type.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordSimulation updates the run counters and the latest plan gauges.
func (s *PromSink) RecordSimulation(run coremetrics.SimulationRun) error {
	s.runs.Inc()
	s.runDuration.Observe(run.Duration.Seconds())
	s.solarMWh.Set(run.TotalSolarMWh)
	s.hydrogenKg.Set(run.TotalHydrogenKg)
	s.arbitrageHours.Set(float64(run.ArbitrageHours))
	return nil
}

// RecordInsight counts the request and observes its latency.
func (s *PromSink) RecordInsight(call coremetrics.InsightCall) error {
	s.insights.WithLabelValues(call.Kind, strconv.FormatBool(call.Fallback)).Inc()
	s.insightLatency.WithLabelValues(call.Kind).Observe(call.Latency.Seconds())
	return nil
}
